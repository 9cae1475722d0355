package session

import (
	"time"

	sess "github.com/jmsone/JeopardyTrainer-sub000/internal/session"
)

// sessionInitMsg is sent when session initialization (plan building) is complete.
type sessionInitMsg struct {
	State *sess.State
	Err   error
}

// timerTickMsg is sent every second to update the per-question countdown.
type timerTickMsg time.Time

// sessionEndMsg is sent to trigger the session end flow. Action is
// "completed" or "abandoned".
type sessionEndMsg struct {
	Action string
}
