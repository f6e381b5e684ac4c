package chat

import "time"

// replyMsg delivers the guide's answer to a submitted question.
type replyMsg struct {
	Text string
}

// failMsg delivers a guidance request failure.
type failMsg struct {
	Err error
}

// thinkTickMsg drives the "reflecting" animation while a request is in flight.
type thinkTickMsg time.Time
