package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghala.backend/internal/domain/entities"
)

func TestDailySeriesFixedLengthAndZeroFill(t *testing.T) {
	st := newTestStore(t)
	u := NewAnalyticsUsecase(st.Orders())

	pinned := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	u.now = func() time.Time { return pinned }

	seedMerchant(t, st, "m1", 2.5)
	seedOrder(t, st, "m1", "o1", entities.OrderStatusPaid, 200, pinned.Add(-2*time.Hour))
	seedOrder(t, st, "m1", "o2", entities.OrderStatusPending, 50, pinned.Add(-time.Hour))
	seedOrder(t, st, "m1", "o3", entities.OrderStatusPaid, 100, pinned.AddDate(0, 0, -1))

	series, err := u.DailySeries(context.Background(), "m1", 7)
	require.NoError(t, err)

	require.Len(t, series.Dates, 7)
	require.Len(t, series.OrderCounts, 7)
	require.Len(t, series.Revenue, 7)

	assert.Equal(t, "2026-08-24", series.Dates[0])
	assert.Equal(t, "2026-08-30", series.Dates[6])

	// Yesterday: one paid order.
	assert.Equal(t, 1, series.OrderCounts[5])
	assert.Equal(t, 100.0, series.Revenue[5])

	// Today: two orders, only the paid one counts toward revenue.
	assert.Equal(t, 2, series.OrderCounts[6])
	assert.Equal(t, 200.0, series.Revenue[6])

	// Empty buckets are zero, not omitted.
	assert.Equal(t, 0, series.OrderCounts[0])
	assert.Equal(t, 0.0, series.Revenue[0])
}

func TestDailySeriesClampsWindow(t *testing.T) {
	st := newTestStore(t)
	u := NewAnalyticsUsecase(st.Orders())

	series, err := u.DailySeries(context.Background(), "m1", 0)
	require.NoError(t, err)
	assert.Len(t, series.Dates, 30)

	series, err = u.DailySeries(context.Background(), "m1", 100000)
	require.NoError(t, err)
	assert.Len(t, series.Dates, 365)
}

func TestPaymentMethodMixPercentages(t *testing.T) {
	st := newTestStore(t)
	u := NewAnalyticsUsecase(st.Orders())
	now := time.Now().UTC()

	for i, method := range []entities.PayoutMethod{
		entities.MethodMobile, entities.MethodMobile, entities.MethodCard,
	} {
		order := seedOrder(t, st, "m1", string(rune('a'+i)), entities.OrderStatusPending, 10, now)
		order.PaymentMethod = method
		require.NoError(t, st.UpdateOrder(context.Background(), order))
	}

	mix, err := u.PaymentMethodMix(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, 66.7, mix.Mobile)
	assert.Equal(t, 33.3, mix.Card)
	assert.Equal(t, 0.0, mix.Bank)
}

func TestStatusMixPercentages(t *testing.T) {
	st := newTestStore(t)
	u := NewAnalyticsUsecase(st.Orders())
	now := time.Now().UTC()

	seedOrder(t, st, "m1", "o1", entities.OrderStatusPaid, 10, now)
	seedOrder(t, st, "m1", "o2", entities.OrderStatusPaid, 10, now)
	seedOrder(t, st, "m1", "o3", entities.OrderStatusPending, 10, now)
	seedOrder(t, st, "m1", "o4", entities.OrderStatusFailed, 10, now)

	mix, err := u.StatusMix(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, 50.0, mix.Paid)
	assert.Equal(t, 25.0, mix.Pending)
	assert.Equal(t, 25.0, mix.Failed)
}

func TestMixesAllZeroWithoutOrders(t *testing.T) {
	st := newTestStore(t)
	u := NewAnalyticsUsecase(st.Orders())

	methodMix, err := u.PaymentMethodMix(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, &entities.MethodMix{}, methodMix)

	statusMix, err := u.StatusMix(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, &entities.StatusMix{}, statusMix)
}
