package db

import (
	"time"

	"github.com/google/uuid"
)

// Document is one generated LaTeX document kept in a user's history
type Document struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	Valid     bool      `json:"valid"`
	Errors    []string  `json:"errors"`
	CreatedAt time.Time `json:"created_at"`
}
