package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds the prometheus collectors for the order lifecycle
type OrderMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec

	SettlementsTotal   prometheus.CounterVec
	SettlementDuration prometheus.HistogramVec

	OrdersDroppedTotal prometheus.CounterVec
}

// NewOrderMetrics registers the collectors on the default registry
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWith(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWith registers the collectors on the given registerer
// (tests pass a private registry to avoid duplicate registration).
func NewOrderMetricsWith(reg prometheus.Registerer) *OrderMetrics {
	factory := promauto.With(reg)

	return &OrderMetrics{
		OrdersCreatedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of orders created",
			},
			[]string{"merchant_id", "payment_method"},
		),

		OrdersCreatedAmountTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total amount of created orders",
			},
			[]string{"merchant_id"},
		),

		SettlementsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlements_total",
				Help: "Total number of settled orders by outcome",
			},
			[]string{"merchant_id", "outcome"},
		),

		SettlementDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settlement_duration_seconds",
				Help:    "Time from order creation to settlement in seconds",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 8), // 0.5s, 1s, 2s...
			},
			[]string{"outcome"},
		),

		OrdersDroppedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_tasks_dropped_total",
				Help: "Settlement tasks dropped because the queue was full",
			},
			[]string{"merchant_id"},
		),
	}
}

// RecordOrderCreated records a newly created order
func (m *OrderMetrics) RecordOrderCreated(merchantID, paymentMethod string, total float64) {
	m.OrdersCreatedTotal.WithLabelValues(merchantID, paymentMethod).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(merchantID).Add(total)
}

// RecordSettlement records a settled order and how long it took
func (m *OrderMetrics) RecordSettlement(merchantID, outcome string, durationSeconds float64) {
	m.SettlementsTotal.WithLabelValues(merchantID, outcome).Inc()
	m.SettlementDuration.WithLabelValues(outcome).Observe(durationSeconds)
}

// RecordTaskDropped records a settlement task lost to backpressure
func (m *OrderMetrics) RecordTaskDropped(merchantID string) {
	m.OrdersDroppedTotal.WithLabelValues(merchantID).Inc()
}
