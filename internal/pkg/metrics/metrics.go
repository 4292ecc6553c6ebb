// Package metrics defines and registers the custom Prometheus metrics of the
// civic portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "civic"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts sign-in and registration attempts.
// Labels:
//   - action: "login", "register", "partner_login", "logout", "reset",
//     "reset_confirm"
//   - role: the role of the screen used (e.g. "citizen")
//   - result: "ok", "invalid", "rejected" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action, role and result.",
	},
	[]string{"action", "role", "result"},
)

// GuardRedirectsTotal counts requests bounced from a protected area.
// Label:
//   - area: the required role of the area (e.g. "authority")
var GuardRedirectsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_redirects_total",
		Help:      "Total number of requests redirected to a login screen by the route guard.",
	},
	[]string{"area"},
)

// SessionsResolvedTotal counts session resolutions by resulting state.
var SessionsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_resolved_total",
		Help:      "Total number of session resolutions, by resulting state.",
	},
	[]string{"state"},
)

// ── Chat metrics ──────────────────────────────────────────────────────────────

// ChatRepliesTotal counts bot replies.
// Label:
//   - topic: the keyword branch that answered, "fallback", or "error"
var ChatRepliesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_replies_total",
		Help:      "Total number of chatbot replies, by topic.",
	},
	[]string{"topic"},
)

// ChatQueueDepth tracks the number of replies waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ChatQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chat_queue_depth",
		Help:      "Current number of chat replies pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ChatJobsRejectedTotal counts reply jobs refused because a worker channel
// was full.
var ChatJobsRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_jobs_rejected_total",
		Help:      "Total number of chat reply jobs rejected by a full dispatcher worker channel.",
	},
)

// ChatReplyDuration measures the time from dequeue to the reply being recorded,
// including the simulated typing delay.
var ChatReplyDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chat_reply_duration_seconds",
		Help:      "Duration of chat reply processing from dequeue to append.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"topic"},
)

// ── Location metrics ──────────────────────────────────────────────────────────

// GeocodeRequestsTotal counts reverse geocoding calls.
// Label:
//   - result: "ok", "empty" or "error"
var GeocodeRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_requests_total",
		Help:      "Total number of reverse geocoding requests, by result.",
	},
	[]string{"result"},
)
