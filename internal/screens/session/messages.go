package session

import "time"

// timerTickMsg is sent every second to drive the exam countdown.
type timerTickMsg time.Time

// examEndMsg triggers the completion flow. timeExpired distinguishes
// clock exhaustion from an explicit submit.
type examEndMsg struct {
	timeExpired bool
}
