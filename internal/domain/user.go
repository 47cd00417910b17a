package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Users are immutable after
// creation: there is no profile editing or deletion in this service.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
