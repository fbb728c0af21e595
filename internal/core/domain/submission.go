package domain

import (
	"errors"
	"time"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrRateLimited        = errors.New("too many submissions")
)

// ContactSubmission is a stored contact-form entry. Submissions are immutable
// once created; admins may only list, export, or delete them.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
