package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordOrderCreated(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetricsWith(reg)

	m.RecordOrderCreated("m1", "mobile", 120)
	m.RecordOrderCreated("m1", "mobile", 80)

	created := m.OrdersCreatedTotal.WithLabelValues("m1", "mobile")
	require.Equal(t, 2.0, testutil.ToFloat64(created))

	amount := m.OrdersCreatedAmountTotal.WithLabelValues("m1")
	require.Equal(t, 200.0, testutil.ToFloat64(amount))
}

func TestRecordSettlement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetricsWith(reg)

	m.RecordSettlement("m1", "paid", 4.1)
	m.RecordSettlement("m1", "failed", 4.0)
	m.RecordSettlement("m1", "paid", 4.2)

	paid := m.SettlementsTotal.WithLabelValues("m1", "paid")
	require.Equal(t, 2.0, testutil.ToFloat64(paid))

	failed := m.SettlementsTotal.WithLabelValues("m1", "failed")
	require.Equal(t, 1.0, testutil.ToFloat64(failed))
}

func TestRecordTaskDropped(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetricsWith(reg)

	m.RecordTaskDropped("m2")
	require.Equal(t, 1.0, testutil.ToFloat64(m.OrdersDroppedTotal.WithLabelValues("m2")))
}
