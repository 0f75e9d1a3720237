package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_api_bookings_created_total",
			Help: "Agendamentos confirmados com sucesso",
		},
	)

	BookingConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_api_booking_conflicts_total",
			Help: "Tentativas de agendamento rejeitadas por conflito",
		},
		[]string{"reason"},
	)

	SlotQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_api_slot_queries_total",
			Help: "Consultas de slots disponíveis",
		},
	)

	SlotCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booking_api_slot_cache_hits_total",
			Help: "Consultas de slots servidas pelo cache",
		},
	)

	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_api_status_transitions_total",
			Help: "Mudanças de status de agendamento",
		},
		[]string{"to"},
	)
)
