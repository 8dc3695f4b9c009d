package interview

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("candidate not found")
	ErrSessionActive = errors.New("another interview is already in progress")
	ErrNoSession     = errors.New("no interview in progress")
	ErrStaleQuestion = errors.New("question is no longer current")
	ErrInvalidStatus = errors.New("candidate interview status does not allow this action")
	ErrSessionPaused = errors.New("interview is paused")
	ErrBusy          = errors.New("interview is processing a previous action")
	ErrNotReady      = errors.New("interview still has unanswered questions")
	ErrNoQuestions   = errors.New("interview needs at least one question")
	ErrDiscarded     = errors.New("state was reset while the action was in flight")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
