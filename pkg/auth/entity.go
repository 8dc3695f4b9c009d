package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an interviewer account. Admins may reset the whole application state.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
