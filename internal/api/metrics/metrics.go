// Package metrics defines and registers all custom Prometheus metrics for the
// SecureCargo website API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "securecargo"

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ContactSubmissionsTotal counts contact-form submissions that passed
// validation and rate limiting.
// Label:
//   - result: currently always "accepted"; kept as a label so new outcomes
//     do not rename the series
var ContactSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact-form submissions stored.",
	},
	[]string{"result"},
)

// ContactRateLimitedTotal counts submissions rejected by the rate limiter.
var ContactRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_rate_limited_total",
		Help:      "Total number of contact-form submissions rejected by rate limiting.",
	},
)

// MailRelayTotal counts outbound notification emails.
// Label:
//   - result: "ok" or "error" (relay failures never fail the request)
var MailRelayTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_relay_total",
		Help:      "Total number of contact notification emails attempted, by result.",
	},
	[]string{"result"},
)
