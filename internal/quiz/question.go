package quiz

// OptionCount is the fixed number of options a multiple-choice question carries.
const OptionCount = 4

// Question represents a single multiple-choice question ready for display.
// A Question is immutable once created.
type Question struct {
	// ID uniquely identifies the question.
	ID string

	// Text is the question prompt shown to the user.
	Text string

	// Options holds exactly four answer choices in display order.
	Options []string

	// CorrectAnswer is the text of the correct option. It always equals
	// one of the entries in Options.
	CorrectAnswer string

	// Difficulty is the assigned difficulty level.
	Difficulty Difficulty

	// Category is the topical classification label.
	Category string

	// Subcategory refines Category for bank questions. Empty for
	// questions extracted from uploaded files.
	Subcategory string

	// Explanation is a short rationale shown after answering.
	Explanation string
}

// CorrectIndex returns the index of the correct option, or -1 if the
// question is malformed.
func (q Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}
