package bank

import (
	"fmt"

	"github.com/Rafi-Luffy/ManaQuiz/internal/quiz"
)

// seedQuestion is a hand-written question before IDs and classification
// labels are attached.
type seedQuestion struct {
	text        string
	options     []string
	correct     string
	difficulty  quiz.Difficulty
	explanation string
}

// build attaches stable IDs and category labels to the seed list, then
// pads with generated filler until the subcategory reaches its target
// size. Filler difficulties cycle easy/medium/hard.
func build(categoryID, subcategoryID string, seeds []seedQuestion, filler seedQuestion) []quiz.Question {
	qs := make([]quiz.Question, 0, targetPerSubcategory)
	for i, s := range seeds {
		expl := s.explanation
		if expl == "" {
			expl = "Correct answer is: " + s.correct
		}
		qs = append(qs, quiz.Question{
			ID:            fmt.Sprintf("%s_%s_%d", categoryID, subcategoryID, i+1),
			Text:          s.text,
			Options:       s.options,
			CorrectAnswer: s.correct,
			Difficulty:    s.difficulty,
			Category:      categoryID,
			Subcategory:   subcategoryID,
			Explanation:   expl,
		})
	}

	cycle := []quiz.Difficulty{quiz.DifficultyEasy, quiz.DifficultyMedium, quiz.DifficultyHard}
	for i, n := len(qs), 0; i < targetPerSubcategory; i, n = i+1, n+1 {
		qs = append(qs, quiz.Question{
			ID:            fmt.Sprintf("%s_%s_%d", categoryID, subcategoryID, i+1),
			Text:          fmt.Sprintf("%s (practice %d)", filler.text, i+1),
			Options:       filler.options,
			CorrectAnswer: filler.correct,
			Difficulty:    cycle[n%3],
			Category:      categoryID,
			Subcategory:   subcategoryID,
			Explanation:   filler.explanation,
		})
	}
	return qs
}

var catalog = []Category{
	{
		ID:          "dsa",
		Name:        "Data Structures & Algorithms",
		Description: "Comprehensive questions covering fundamental data structures and algorithms",
		Subcategories: []Subcategory{
			{
				ID:          "arrays",
				Name:        "Arrays & Strings",
				Description: "Array operations, string manipulation, and related algorithms",
				Questions: build("dsa", "arrays", []seedQuestion{
					{
						text:        "What is the time complexity of accessing an element in an array by index?",
						options:     []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
						correct:     "O(1)",
						difficulty:  quiz.DifficultyEasy,
						explanation: "Array elements can be accessed directly using their index in constant time.",
					},
					{
						text:       "Which operation is most efficient on a dynamic array when adding elements?",
						options:    []string{"Adding at the beginning", "Adding at the middle", "Adding at the end", "All are equally efficient"},
						correct:    "Adding at the end",
						difficulty: quiz.DifficultyMedium,
					},
					{
						text:       "What is the worst-case time complexity for searching an element in an unsorted array?",
						options:    []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
						correct:    "O(n)",
						difficulty: quiz.DifficultyEasy,
					},
					{
						text: "Which of the following best describes a jagged array?",
						options: []string{
							"An array with uneven elements",
							"An array of arrays where sub-arrays can have different lengths",
							"A 3D array",
							"An array with negative indices",
						},
						correct:    "An array of arrays where sub-arrays can have different lengths",
						difficulty: quiz.DifficultyMedium,
					},
				}, seedQuestion{
					text:        "What is the space complexity of storing n elements in an array?",
					options:     []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
					correct:     "O(n)",
					explanation: "Arrays require O(n) space to store n elements.",
				}),
			},
			{
				ID:          "linkedlists",
				Name:        "Linked Lists",
				Description: "Singly, doubly, and circular linked lists with operations",
				Questions: build("dsa", "linkedlists", []seedQuestion{
					{
						text: "What is the main advantage of a linked list over an array?",
						options: []string{
							"Faster access to elements",
							"Dynamic size allocation",
							"Better cache performance",
							"Lower memory usage",
						},
						correct:    "Dynamic size allocation",
						difficulty: quiz.DifficultyEasy,
					},
					{
						text:       "What is the time complexity of inserting a node at the beginning of a linked list?",
						options:    []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
						correct:    "O(1)",
						difficulty: quiz.DifficultyMedium,
					},
					{
						text: "How do you detect a cycle in a linked list efficiently?",
						options: []string{
							"Use a hash table to store visited nodes",
							"Use Floyd's Cycle Detection Algorithm (Tortoise and Hare)",
							"Traverse the list twice",
							"Sort the list first",
						},
						correct:    "Use Floyd's Cycle Detection Algorithm (Tortoise and Hare)",
						difficulty: quiz.DifficultyHard,
					},
				}, seedQuestion{
					text:        "What is the advantage of doubly linked lists over singly linked lists?",
					options:     []string{"Faster insertion", "Bidirectional traversal", "Less memory usage", "Better cache performance"},
					correct:     "Bidirectional traversal",
					explanation: "Doubly linked lists allow traversal in both directions.",
				}),
			},
			{
				ID:          "stacks",
				Name:        "Stacks & Queues",
				Description: "Stack and queue implementations with applications",
				Questions: build("dsa", "stacks", []seedQuestion{
					{
						text:        "Which data structure follows the Last In First Out (LIFO) principle?",
						options:     []string{"Queue", "Stack", "Array", "Linked List"},
						correct:     "Stack",
						difficulty:  quiz.DifficultyEasy,
						explanation: "A stack follows LIFO principle where the last element added is the first one to be removed.",
					},
					{
						text:       "Which data structure is used in Breadth-First Search (BFS)?",
						options:    []string{"Stack", "Queue", "Priority Queue", "Deque"},
						correct:    "Queue",
						difficulty: quiz.DifficultyMedium,
					},
					{
						text:        "Which data structure would be most efficient for implementing undo functionality?",
						options:     []string{"Array", "Queue", "Stack", "Hash Table"},
						correct:     "Stack",
						difficulty:  quiz.DifficultyMedium,
						explanation: "Stack's LIFO property makes it perfect for undo operations - last action is undone first.",
					},
				}, seedQuestion{
					text:        "What is the time complexity of enqueue operation in a queue?",
					options:     []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
					correct:     "O(1)",
					explanation: "Enqueue operation in a properly implemented queue takes constant time.",
				}),
			},
			{
				ID:          "trees",
				Name:        "Trees & Graphs",
				Description: "Binary trees, BST, graph traversal algorithms",
				Questions: build("dsa", "trees", nil, seedQuestion{
					text:        "What is the height of a balanced binary tree with n nodes?",
					options:     []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
					correct:     "O(log n)",
					explanation: "A balanced binary tree has height O(log n).",
				}),
			},
		},
	},
	{
		ID:          "cloud",
		Name:        "Cloud Computing",
		Description: "Cloud platforms, services, and deployment models",
		Subcategories: []Subcategory{
			{
				ID:          "basics",
				Name:        "Cloud Fundamentals",
				Description: "Basic concepts, service models, and deployment models",
				Questions: build("cloud", "basics", []seedQuestion{
					{
						text: "What is cloud computing?",
						options: []string{
							"Weather prediction",
							"On-demand computing services over internet",
							"Local network computing",
							"Desktop applications",
						},
						correct:    "On-demand computing services over internet",
						difficulty: quiz.DifficultyEasy,
					},
					{
						text:       "What does SaaS stand for?",
						options:    []string{"Software as a Service", "System as a Service", "Storage as a Service", "Security as a Service"},
						correct:    "Software as a Service",
						difficulty: quiz.DifficultyEasy,
					},
				}, seedQuestion{
					text:        "What is the main benefit of cloud computing scalability?",
					options:     []string{"Fixed costs", "Manual resource management", "Automatic resource adjustment", "Limited availability"},
					correct:     "Automatic resource adjustment",
					explanation: "Cloud scalability allows automatic adjustment of resources based on demand.",
				}),
			},
			{
				ID:          "aws",
				Name:        "Amazon Web Services",
				Description: "AWS services, EC2, S3, RDS, and more",
				Questions: build("cloud", "aws", []seedQuestion{
					{
						text:       "Which is an example of Infrastructure as a Service (IaaS)?",
						options:    []string{"Gmail", "Netflix", "Amazon EC2", "Spotify"},
						correct:    "Amazon EC2",
						difficulty: quiz.DifficultyMedium,
					},
				}, seedQuestion{
					text:        "Which AWS service is used for content delivery?",
					options:     []string{"CloudFront", "Route 53", "VPC", "IAM"},
					correct:     "CloudFront",
					explanation: "CloudFront is AWS's content delivery network (CDN) service.",
				}),
			},
			{
				ID:          "azure",
				Name:        "Microsoft Azure",
				Description: "Azure services, virtual machines, and cloud solutions",
				Questions: build("cloud", "azure", nil, seedQuestion{
					text:        "What is Azure Resource Manager?",
					options:     []string{"A monitoring tool", "A deployment and management service", "A storage service", "A networking service"},
					correct:     "A deployment and management service",
					explanation: "Azure Resource Manager is the deployment and management service for Azure.",
				}),
			},
			{
				ID:          "devops",
				Name:        "DevOps & CI/CD",
				Description: "Continuous integration, deployment, and DevOps practices",
				Questions: build("cloud", "devops", nil, seedQuestion{
					text: "What does CI/CD stand for?",
					options: []string{
						"Continuous Integration/Continuous Deployment",
						"Cloud Integration/Cloud Deployment",
						"Code Integration/Code Deployment",
						"Container Integration/Container Deployment",
					},
					correct:     "Continuous Integration/Continuous Deployment",
					explanation: "CI/CD stands for Continuous Integration and Continuous Deployment.",
				}),
			},
		},
	},
	{
		ID:          "programming",
		Name:        "Programming Concepts",
		Description: "Core programming principles and paradigms",
		Subcategories: []Subcategory{
			{
				ID:          "basics",
				Name:        "Programming Fundamentals",
				Description: "Variables, data types, control structures, and functions",
				Questions: build("programming", "basics", []seedQuestion{
					{
						text:        "What does the 'break' statement do in a loop?",
						options:     []string{"Skips current iteration", "Exits the loop", "Restarts the loop", "Does nothing"},
						correct:     "Exits the loop",
						difficulty:  quiz.DifficultyEasy,
						explanation: "The 'break' statement immediately exits the current loop.",
					},
					{
						text: "What is the difference between compiled and interpreted languages?",
						options: []string{
							"No difference",
							"Compiled languages are translated before execution, interpreted during execution",
							"Interpreted languages are faster",
							"Compiled languages use more memory",
						},
						correct:    "Compiled languages are translated before execution, interpreted during execution",
						difficulty: quiz.DifficultyEasy,
					},
				}, seedQuestion{
					text:        "What is the purpose of a loop in programming?",
					options:     []string{"To declare variables", "To repeat code execution", "To define functions", "To handle errors"},
					correct:     "To repeat code execution",
					explanation: "Loops are used to repeat code execution multiple times.",
				}),
			},
			{
				ID:          "oop",
				Name:        "Object-Oriented Programming",
				Description: "Classes, objects, inheritance, polymorphism, and encapsulation",
				Questions: build("programming", "oop", []seedQuestion{
					{
						text:        "What is encapsulation in object-oriented programming?",
						options:     []string{"Creating objects", "Hiding implementation details", "Inheriting from classes", "Method overriding"},
						correct:     "Hiding implementation details",
						difficulty:  quiz.DifficultyMedium,
						explanation: "Encapsulation is the principle of hiding internal implementation details and exposing only necessary interfaces.",
					},
					{
						text:       "What is inheritance in OOP?",
						options:    []string{"Creating new objects", "Acquiring properties from parent class", "Hiding implementation", "Method overloading"},
						correct:    "Acquiring properties from parent class",
						difficulty: quiz.DifficultyEasy,
					},
					{
						text:       "What is polymorphism in OOP?",
						options:    []string{"Having multiple forms", "Creating objects", "Hiding data", "Inheriting properties"},
						correct:    "Having multiple forms",
						difficulty: quiz.DifficultyMedium,
					},
				}, seedQuestion{
					text: "What is a constructor in object-oriented programming?",
					options: []string{
						"A method to destroy objects",
						"A special method to initialize objects",
						"A method to copy objects",
						"A method to compare objects",
					},
					correct:     "A special method to initialize objects",
					explanation: "A constructor is a special method used to initialize objects when they are created.",
				}),
			},
			{
				ID:          "functional",
				Name:        "Functional Programming",
				Description: "Pure functions, immutability, and functional concepts",
				Questions: build("programming", "functional", nil, seedQuestion{
					text: "What is a pure function?",
					options: []string{
						"A function with no bugs",
						"A function that always returns the same output for the same input and has no side effects",
						"A function written in a pure language",
						"A function that uses only primitive data types",
					},
					correct:     "A function that always returns the same output for the same input and has no side effects",
					explanation: "A pure function is deterministic and has no side effects.",
				}),
			},
			{
				ID:          "design-patterns",
				Name:        "Design Patterns",
				Description: "Common software design patterns and architectural principles",
				Questions: build("programming", "design-patterns", nil, seedQuestion{
					text: "What is the Singleton pattern?",
					options: []string{
						"A pattern that creates multiple instances",
						"A pattern that ensures only one instance of a class exists",
						"A pattern for database connections",
						"A pattern for user interfaces",
					},
					correct:     "A pattern that ensures only one instance of a class exists",
					explanation: "The Singleton pattern restricts a class to have only one instance.",
				}),
			},
		},
	},
	{
		ID:          "algorithms",
		Name:        "Algorithms",
		Description: "Searching, sorting, and algorithmic problem-solving techniques",
		Subcategories: []Subcategory{
			{
				ID:          "searching",
				Name:        "Searching Algorithms",
				Description: "Linear search, binary search, and advanced searching techniques",
				Questions: build("algorithms", "searching", []seedQuestion{
					{
						text: "What is the primary requirement for binary search?",
						options: []string{
							"Array must be sorted",
							"Array must be large",
							"Array must contain integers",
							"No prerequisites",
						},
						correct:    "Array must be sorted",
						difficulty: quiz.DifficultyEasy,
					},
					{
						text:       "What is the time complexity of binary search?",
						options:    []string{"O(1)", "O(log n)", "O(n)", "O(n log n)"},
						correct:    "O(log n)",
						difficulty: quiz.DifficultyMedium,
					},
				}, seedQuestion{
					text:        "What is the space complexity of binary search?",
					options:     []string{"O(1)", "O(log n)", "O(n)", "O(n²)"},
					correct:     "O(1)",
					explanation: "Binary search uses constant extra space.",
				}),
			},
			{
				ID:          "sorting",
				Name:        "Sorting Algorithms",
				Description: "Bubble sort, merge sort, quick sort, and comparison of sorting techniques",
				Questions: build("algorithms", "sorting", []seedQuestion{
					{
						text:       "What is the average time complexity of Quick Sort?",
						options:    []string{"O(n)", "O(n log n)", "O(n²)", "O(log n)"},
						correct:    "O(n log n)",
						difficulty: quiz.DifficultyMedium,
					},
					{
						text:       "Which sorting algorithm is considered stable?",
						options:    []string{"Quick Sort", "Heap Sort", "Merge Sort", "Selection Sort"},
						correct:    "Merge Sort",
						difficulty: quiz.DifficultyMedium,
					},
					{
						text:       "What is the worst-case time complexity of Bubble Sort?",
						options:    []string{"O(n)", "O(n log n)", "O(n²)", "O(2^n)"},
						correct:    "O(n²)",
						difficulty: quiz.DifficultyEasy,
					},
				}, seedQuestion{
					text:        "Which sorting algorithm is best for small datasets?",
					options:     []string{"Merge Sort", "Quick Sort", "Insertion Sort", "Heap Sort"},
					correct:     "Insertion Sort",
					explanation: "Insertion sort performs well on small datasets due to its simplicity and low overhead.",
				}),
			},
			{
				ID:          "dynamic-programming",
				Name:        "Dynamic Programming",
				Description: "Memoization, tabulation, and classic DP problems",
				Questions: build("algorithms", "dynamic-programming", nil, seedQuestion{
					text: "What is the key principle of dynamic programming?",
					options: []string{
						"Divide and conquer",
						"Optimal substructure and overlapping subproblems",
						"Greedy choice",
						"Randomization",
					},
					correct:     "Optimal substructure and overlapping subproblems",
					explanation: "Dynamic programming relies on optimal substructure and overlapping subproblems.",
				}),
			},
			{
				ID:          "graph-algorithms",
				Name:        "Graph Algorithms",
				Description: "BFS, DFS, shortest path, and network algorithms",
				Questions: build("algorithms", "graph-algorithms", nil, seedQuestion{
					text:        "What is the time complexity of DFS in a graph with V vertices and E edges?",
					options:     []string{"O(V)", "O(E)", "O(V + E)", "O(V * E)"},
					correct:     "O(V + E)",
					explanation: "DFS visits each vertex once and explores each edge once, resulting in O(V + E) time complexity.",
				}),
			},
		},
	},
}
