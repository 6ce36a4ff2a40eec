package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveBooking("booked")
	m.ObserveBooking("taken")
	m.ObserveSlotCheck("available")
	m.ObserveCallLog("ok")
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveBooking("booked")
	m.ObserveSlotCheck("error")
	m.ObserveCallLog("error")
}
