package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	turnoCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taller_scheduler",
			Name:      "turno_created_total",
			Help:      "Count of turnos created by estado.",
		},
		[]string{"estado"},
	)

	slotConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "taller_scheduler",
			Name:      "slot_conflict_total",
			Help:      "Count of booking attempts rejected by slot conflict.",
		},
	)

	paymentIntent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taller_scheduler",
			Name:      "payment_intent_total",
			Help:      "Count of payment intents by outcome.",
		},
		[]string{"outcome"},
	)

	availabilityCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "taller_scheduler",
			Name:      "availability_cache_total",
			Help:      "Availability cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(turnoCreated, slotConflict, paymentIntent, availabilityCache)
	})
}

func IncTurnoCreated(estado string) {
	turnoCreated.WithLabelValues(estado).Inc()
}

func IncSlotConflict() {
	slotConflict.Inc()
}

func IncPaymentIntent(outcome string) {
	paymentIntent.WithLabelValues(outcome).Inc()
}

func IncAvailabilityCache(result string) {
	availabilityCache.WithLabelValues(result).Inc()
}
