// Package metrics provides Prometheus observability metrics for the booking
// assistant. It covers booking outcomes and operational health of the
// parser and ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// BookingsTotal counts successful bookings.
var BookingsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "booking",
	Name:      "confirmed_total",
	Help:      "Total number of appointments successfully booked",
})

// NoAvailabilityTotal counts booking attempts that found no eligible
// technician, either no match on trade/zone or all candidates busy.
var NoAvailabilityTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "booking",
	Name:      "no_availability_total",
	Help:      "Total booking attempts that ended with no availability",
})

// TradeRequestsTotal counts booking attempts by canonical trade tag.
var TradeRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "booking",
	Name:      "trade_requests_total",
	Help:      "Booking attempts broken down by canonical trade",
}, []string{"trade"})

// CandidatesPerRequest tracks how many technicians matched trade and zone
// per booking attempt.
var CandidatesPerRequest = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "booking",
	Name:      "candidates_per_request",
	Help:      "Number of matching technicians considered per booking attempt",
	Buckets:   []float64{0, 1, 2, 3, 5, 10, 25, 50},
})

// BookingDurationSeconds tracks time spent inside a booking attempt,
// including the availability scans.
var BookingDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "booking",
	Name:      "duration_seconds",
	Help:      "Time taken to run one booking attempt",
	Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
})

// LedgerAppointments tracks the current number of appointments held in the
// session ledger.
var LedgerAppointments = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "ledger",
	Name:      "appointments",
	Help:      "Number of appointments currently in the session ledger",
})

// LedgerSaveErrorsTotal counts failed ledger writes. Any nonzero value
// means a confirmed booking may not have reached stable storage.
var LedgerSaveErrorsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "ledger",
	Name:      "save_errors_total",
	Help:      "Total failed attempts to persist the appointment ledger",
})

// LedgerRecoveredRecords counts records recovered from storage at startup.
var LedgerRecoveredRecords = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "ledger",
	Name:      "recovered_records",
	Help:      "Number of appointment records recovered from storage at load",
})

// IntentDetectedTotal counts FAQ questions by detected intent category.
var IntentDetectedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "intent",
	Name:      "detected_total",
	Help:      "FAQ questions broken down by detected intent",
}, []string{"intent"})
