package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/securecargo/website-api/internal/core/domain"
	"github.com/securecargo/website-api/internal/core/ports"
)

type stubSubmissionRepo struct {
	subs      []domain.ContactSubmission
	createErr error
}

func (r *stubSubmissionRepo) Create(_ context.Context, sub *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	stored := *sub
	stored.ID = "s" + strconv.Itoa(len(r.subs)+1)
	r.subs = append(r.subs, stored)
	return &stored, nil
}

func (r *stubSubmissionRepo) List(_ context.Context) ([]domain.ContactSubmission, error) {
	out := make([]domain.ContactSubmission, len(r.subs))
	copy(out, r.subs)
	return out, nil
}

func (r *stubSubmissionRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.subs {
		if s.ID == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return domain.ErrSubmissionNotFound
}

type stubLimiter struct {
	allow    bool
	allowErr error
	recorded []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.allow, l.allowErr
}

func (l *stubLimiter) Record(_ context.Context, key string) error {
	l.recorded = append(l.recorded, key)
	return nil
}

type stubMailer struct {
	sent    []*domain.ContactSubmission
	sendErr error
}

func (m *stubMailer) Send(_ context.Context, sub *domain.ContactSubmission) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sub)
	return nil
}

func validContactInput() ports.ContactInput {
	return ports.ContactInput{
		Name:     "John Doe",
		Email:    "John@Example.com",
		Phone:    "+1 555 0100",
		Message:  "I need a quote for a full container load.",
		SourceIP: "203.0.113.9",
	}
}

func TestIntakeService_SubmitStoresSanitized(t *testing.T) {
	repo := &stubSubmissionRepo{}
	limiter := &stubLimiter{allow: true}
	mailer := &stubMailer{}
	svc := NewIntakeService(repo, limiter, mailer, zerolog.Nop())

	input := validContactInput()
	input.Name = "  John <b>Doe</b>  "
	input.Message = "Hello javascript:alert onload= world"

	stored, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if stored.ID == "" {
		t.Fatalf("expected stored submission to carry an id")
	}
	if stored.Name != "John bDoe/b" {
		t.Fatalf("name not sanitized: %q", stored.Name)
	}
	if stored.Email != "john@example.com" {
		t.Fatalf("email not normalized: %q", stored.Email)
	}
	if stored.Message != "Hello alert  world" {
		t.Fatalf("message not sanitized: %q", stored.Message)
	}
	if stored.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one relay email, got %d", len(mailer.sent))
	}
}

func TestIntakeService_SubmitRateLimited(t *testing.T) {
	repo := &stubSubmissionRepo{}
	limiter := &stubLimiter{allow: false}
	svc := NewIntakeService(repo, limiter, nil, zerolog.Nop())

	_, err := svc.Submit(context.Background(), validContactInput())
	if !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if len(repo.subs) != 0 {
		t.Fatalf("rate-limited submission must not be persisted")
	}
	if len(limiter.recorded) != 0 {
		t.Fatalf("rejected submission must not burn quota")
	}
}

func TestIntakeService_SubmitRecordsOnlyOnSuccess(t *testing.T) {
	repo := &stubSubmissionRepo{createErr: errors.New("write failed")}
	limiter := &stubLimiter{allow: true}
	svc := NewIntakeService(repo, limiter, nil, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validContactInput()); err == nil {
		t.Fatalf("expected persistence error to propagate")
	}
	if len(limiter.recorded) != 0 {
		t.Fatalf("failed submission must not burn quota")
	}

	repo.createErr = nil
	if _, err := svc.Submit(context.Background(), validContactInput()); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if len(limiter.recorded) != 1 || limiter.recorded[0] != "203.0.113.9" {
		t.Fatalf("expected one recorded entry for the source ip, got %v", limiter.recorded)
	}
}

func TestIntakeService_SubmitSurvivesMailFailure(t *testing.T) {
	repo := &stubSubmissionRepo{}
	limiter := &stubLimiter{allow: true}
	mailer := &stubMailer{sendErr: errors.New("smtp down")}
	svc := NewIntakeService(repo, limiter, mailer, zerolog.Nop())

	stored, err := svc.Submit(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("mail failure must not fail the submission: %v", err)
	}
	if stored == nil || len(repo.subs) != 1 {
		t.Fatalf("submission should be persisted despite mail failure")
	}
}

func TestIntakeService_SubmitWithoutMailer(t *testing.T) {
	repo := &stubSubmissionRepo{}
	limiter := &stubLimiter{allow: true}
	svc := NewIntakeService(repo, limiter, nil, zerolog.Nop())

	if _, err := svc.Submit(context.Background(), validContactInput()); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
}

func TestIntakeService_DeleteSubmission(t *testing.T) {
	repo := &stubSubmissionRepo{}
	limiter := &stubLimiter{allow: true}
	svc := NewIntakeService(repo, limiter, nil, zerolog.Nop())

	stored, err := svc.Submit(context.Background(), validContactInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if err := svc.DeleteSubmission(context.Background(), stored.ID); err != nil {
		t.Fatalf("DeleteSubmission returned error: %v", err)
	}
	if err := svc.DeleteSubmission(context.Background(), stored.ID); !errors.Is(err, domain.ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}
