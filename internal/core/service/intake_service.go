package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/securecargo/website-api/internal/api/metrics"
	"github.com/securecargo/website-api/internal/core/domain"
	"github.com/securecargo/website-api/internal/core/ports"
	"github.com/securecargo/website-api/internal/pkg/sanitize"
)

// IntakeService runs the contact-form pipeline. Field validation happens at
// the transport edge; this service owns rate limiting, sanitization,
// persistence and the best-effort email relay.
type IntakeService struct {
	repo    ports.SubmissionRepository
	limiter ports.RateLimiter
	mailer  ports.Mailer // nil when outbound mail is not configured
	logger  zerolog.Logger
}

func NewIntakeService(repo ports.SubmissionRepository, limiter ports.RateLimiter, mailer ports.Mailer, logger zerolog.Logger) *IntakeService {
	return &IntakeService{repo: repo, limiter: limiter, mailer: mailer, logger: logger}
}

// Submit stores one sanitized submission. The rate limiter counts accepted
// submissions only, so a rejected or failed request never burns quota.
func (s *IntakeService) Submit(ctx context.Context, input ports.ContactInput) (*domain.ContactSubmission, error) {
	ok, err := s.limiter.Allow(ctx, input.SourceIP)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.ContactRateLimitedTotal.Inc()
		s.logger.Warn().Str("source_ip", input.SourceIP).Msg("contact submission rate limited")
		return nil, domain.ErrRateLimited
	}

	// Sanitization runs exactly once, immediately before persistence.
	sub := &domain.ContactSubmission{
		Name:      sanitize.Text(input.Name),
		Email:     sanitize.Email(input.Email),
		Phone:     sanitize.Text(input.Phone),
		Message:   sanitize.Text(input.Message),
		CreatedAt: time.Now().UTC(),
	}

	stored, err := s.repo.Create(ctx, sub)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to store contact submission")
		return nil, err
	}

	if err := s.limiter.Record(ctx, input.SourceIP); err != nil {
		// The submission is already durable; a limiter hiccup is not worth a 500.
		s.logger.Error().Err(err).Str("source_ip", input.SourceIP).Msg("failed to record rate-limit entry")
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
	s.logger.Info().
		Str("submission_id", stored.ID).
		Str("email", stored.Email).
		Msg("contact submission stored")

	if s.mailer != nil {
		// Relay is notification only; the caller already has durability.
		if err := s.mailer.Send(ctx, stored); err != nil {
			s.logger.Error().Err(err).Str("submission_id", stored.ID).Msg("contact email relay failed")
		}
	}

	return stored, nil
}

func (s *IntakeService) ListSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	return s.repo.List(ctx)
}

func (s *IntakeService) DeleteSubmission(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
