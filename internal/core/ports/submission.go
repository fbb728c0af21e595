package ports

import (
	"context"

	"github.com/securecargo/website-api/internal/core/domain"
)

// SubmissionRepository persists contact-form submissions. Submissions are
// append-only; the only mutation is deletion by an admin.
type SubmissionRepository interface {
	Create(ctx context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error)
	List(ctx context.Context) ([]domain.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}

// ContactInput is a validated but not yet sanitized contact-form submission.
// SourceIP keys the rate limiter and is never persisted.
type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Message  string
	SourceIP string
}

// IntakeService runs the contact-form pipeline: rate limit, sanitize,
// persist, then best-effort email relay. It also backs the admin views over
// stored submissions.
type IntakeService interface {
	Submit(ctx context.Context, input ContactInput) (*domain.ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]domain.ContactSubmission, error)
	DeleteSubmission(ctx context.Context, id string) error
}

// RateLimiter bounds accepted submissions per source key within a sliding
// window. Allow checks without consuming; Record counts one accepted
// submission. Implementations: process-local in-memory (single instance) and
// Redis-backed (shared across instances).
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Record(ctx context.Context, key string) error
}

// Mailer delivers a stored submission as an email notification. Relay is
// best-effort: callers log failures and never surface them to the submitter.
type Mailer interface {
	Send(ctx context.Context, sub *domain.ContactSubmission) error
}
