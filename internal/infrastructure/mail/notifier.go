package mail

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/securecargo/website-api/internal/core/domain"
	"github.com/securecargo/website-api/internal/core/ports"
)

const queueBuffer = 64

var errQueueFull = errors.New("notification queue full")

// Notifier decouples the request path from SMTP latency: Send enqueues and
// returns immediately while a single worker drains the queue. Delivery
// failures are logged by the worker and never reach the submitter.
type Notifier struct {
	queue  chan *domain.ContactSubmission
	mailer ports.Mailer
	log    zerolog.Logger
}

func NewNotifier(mailer ports.Mailer, log zerolog.Logger) *Notifier {
	return &Notifier{
		queue:  make(chan *domain.ContactSubmission, queueBuffer),
		mailer: mailer,
		log:    log,
	}
}

// Start launches the worker goroutine. The worker stops when ctx is
// cancelled; queued notifications are dropped at shutdown, which is
// acceptable for a best-effort relay.
func (n *Notifier) Start(ctx context.Context) {
	go n.run(ctx)
}

// Send enqueues a notification. A full queue is reported to the caller for
// logging but intentionally does not block the request.
func (n *Notifier) Send(_ context.Context, sub *domain.ContactSubmission) error {
	select {
	case n.queue <- sub:
		return nil
	default:
		return errQueueFull
	}
}

func (n *Notifier) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case sub, ok := <-n.queue:
			if !ok {
				return
			}
			if err := n.mailer.Send(ctx, sub); err != nil {
				n.log.Error().Err(err).
					Str("submission_id", sub.ID).
					Msg("notification delivery failed")
			}
		}
	}
}
