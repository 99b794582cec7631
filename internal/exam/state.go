package exam

import "time"

// State is the mutable run-time record of an exam. Lifecycle:
// initialized empty, IsStarted set by Start, mutated by answer/mark/
// navigation operations, IsCompleted set once by Submit or by timer
// exhaustion. Completed is terminal.
type State struct {
	CurrentQuestionIndex int               `json:"currentQuestionIndex"`
	Answers              map[string]string `json:"answers"` // question ID -> selected option text
	Marked               map[string]bool   `json:"marked"`  // question IDs flagged for review
	TimeRemaining        int               `json:"timeRemaining"` // seconds, timed mode only
	IsStarted            bool              `json:"isStarted"`
	IsCompleted          bool              `json:"isCompleted"`
	StartTime            time.Time         `json:"startTime,omitempty"`
	EndTime              time.Time         `json:"endTime,omitempty"`
}

// newState returns the initial (NotStarted) state shape.
func newState() State {
	return State{
		Answers: make(map[string]string),
		Marked:  make(map[string]bool),
	}
}
