package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the slot booking and call logging flows.
type BookingMetrics struct {
	bookingAttempts *prometheus.CounterVec
	slotChecks      *prometheus.CounterVec
	callLogs        *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dermvoice",
			Subsystem: "booking",
			Name:      "attempts_total",
			Help:      "Total slot booking attempts by outcome",
		}, []string{"outcome"}),
		slotChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dermvoice",
			Subsystem: "booking",
			Name:      "slot_checks_total",
			Help:      "Total slot availability checks by result",
		}, []string{"result"}),
		callLogs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dermvoice",
			Subsystem: "calls",
			Name:      "log_entries_total",
			Help:      "Total call log appends by status",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingAttempts, m.slotChecks, m.callLogs)
	return m
}

// ObserveBooking records one booking attempt. Outcomes: booked, taken,
// no_slot, error.
func (m *BookingMetrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingAttempts.WithLabelValues(outcome).Inc()
}

// ObserveSlotCheck records one availability check. Results: available,
// unavailable, error.
func (m *BookingMetrics) ObserveSlotCheck(result string) {
	if m == nil {
		return
	}
	m.slotChecks.WithLabelValues(result).Inc()
}

// ObserveCallLog records one call log append. Statuses: ok, error.
func (m *BookingMetrics) ObserveCallLog(status string) {
	if m == nil {
		return
	}
	m.callLogs.WithLabelValues(status).Inc()
}
