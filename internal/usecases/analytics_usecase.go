package usecases

import (
	"context"
	"math"
	"time"

	"ghala.backend/internal/domain/entities"
	"ghala.backend/internal/domain/repositories"
)

const (
	defaultSeriesDays = 30
	maxSeriesDays     = 365
)

// AnalyticsUsecase derives reporting views from the order store
type AnalyticsUsecase struct {
	orderRepo repositories.OrderRepository

	// now is swappable so tests can pin the series window
	now func() time.Time
}

// NewAnalyticsUsecase creates a new analytics usecase
func NewAnalyticsUsecase(orderRepo repositories.OrderRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{orderRepo: orderRepo, now: time.Now}
}

// DailySeries buckets the merchant's orders by local calendar day over the
// window ending today. Days without orders yield zero entries, never gaps.
func (u *AnalyticsUsecase) DailySeries(ctx context.Context, merchantID string, days int) (*entities.DailySeries, error) {
	if days < 1 {
		days = defaultSeriesDays
	}
	if days > maxSeriesDays {
		days = maxSeriesDays
	}

	orders, err := u.orderRepo.List(ctx, merchantID, entities.StatusFilterAll)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, days)
	revenue := make(map[string]float64, days)
	for _, order := range orders {
		day := order.CreatedAt.Local().Format("2006-01-02")
		counts[day]++
		if order.Status == entities.OrderStatusPaid {
			revenue[day] += order.Total
		}
	}

	series := &entities.DailySeries{
		Dates:       make([]string, days),
		OrderCounts: make([]int, days),
		Revenue:     make([]float64, days),
	}

	today := u.now().Local()
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-days+1).Format("2006-01-02")
		series.Dates[i] = day
		series.OrderCounts[i] = counts[day]
		series.Revenue[i] = roundMoney(revenue[day])
	}
	return series, nil
}

// PaymentMethodMix returns the percentage of orders per payment method,
// one decimal place. All zero when the merchant has no orders.
func (u *AnalyticsUsecase) PaymentMethodMix(ctx context.Context, merchantID string) (*entities.MethodMix, error) {
	orders, err := u.orderRepo.List(ctx, merchantID, entities.StatusFilterAll)
	if err != nil {
		return nil, err
	}

	mix := &entities.MethodMix{}
	if len(orders) == 0 {
		return mix, nil
	}

	var mobile, card, bank int
	for _, order := range orders {
		switch order.PaymentMethod {
		case entities.MethodMobile:
			mobile++
		case entities.MethodCard:
			card++
		case entities.MethodBank:
			bank++
		}
	}

	total := len(orders)
	mix.Mobile = percentage(mobile, total)
	mix.Card = percentage(card, total)
	mix.Bank = percentage(bank, total)
	return mix, nil
}

// StatusMix returns the percentage of orders per lifecycle status,
// one decimal place. All zero when the merchant has no orders.
func (u *AnalyticsUsecase) StatusMix(ctx context.Context, merchantID string) (*entities.StatusMix, error) {
	orders, err := u.orderRepo.List(ctx, merchantID, entities.StatusFilterAll)
	if err != nil {
		return nil, err
	}

	mix := &entities.StatusMix{}
	if len(orders) == 0 {
		return mix, nil
	}

	var paid, pending, failed int
	for _, order := range orders {
		switch order.Status {
		case entities.OrderStatusPaid:
			paid++
		case entities.OrderStatusPending:
			pending++
		case entities.OrderStatusFailed:
			failed++
		}
	}

	total := len(orders)
	mix.Paid = percentage(paid, total)
	mix.Pending = percentage(pending, total)
	mix.Failed = percentage(failed, total)
	return mix, nil
}

func percentage(part, total int) float64 {
	return math.Round(float64(part)/float64(total)*1000) / 10
}
