// Package metrics defines and registers all custom Prometheus metrics for the
// accommodation portal API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "housing"

// AccommodationsCreatedTotal counts newly created listings.
// Label:
//   - type: "Apartment", "House", "Room", "Studio", or "Shared"
var AccommodationsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accommodations_created_total",
		Help:      "Total number of accommodation listings created, by type.",
	},
	[]string{"type"},
)

// ApplicationsSubmittedTotal counts tenancy applications submitted by users.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of tenancy applications submitted.",
	},
)

// ApplicationDecisionsTotal counts admin review decisions.
// Label:
//   - status: "Approved" or "Rejected"
var ApplicationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_decisions_total",
		Help:      "Total number of application review decisions, by resulting status.",
	},
	[]string{"status"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
