package usecases

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"ghala.backend/internal/domain/entities"
	domainerrors "ghala.backend/internal/domain/errors"
	"ghala.backend/internal/domain/repositories"
	"ghala.backend/internal/infrastructure/metrics"
)

// SettlementScheduler queues an order for deferred settlement
type SettlementScheduler interface {
	Schedule(merchantID, orderID string) bool
}

// OrderUsecase handles the order lifecycle
type OrderUsecase struct {
	orderRepo    repositories.OrderRepository
	merchantRepo repositories.MerchantRepository
	scheduler    SettlementScheduler
	metrics      *metrics.OrderMetrics
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	merchantRepo repositories.MerchantRepository,
	scheduler SettlementScheduler,
	m *metrics.OrderMetrics,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:    orderRepo,
		merchantRepo: merchantRepo,
		scheduler:    scheduler,
		metrics:      m,
	}
}

// CreateOrder records a new pending order and schedules its settlement.
// Commission and payment method are copied from the merchant's current
// configuration and frozen onto the order.
func (u *OrderUsecase) CreateOrder(ctx context.Context, merchantID string, input *entities.OrderCreateInput) (*entities.Order, error) {
	merchant, err := u.merchantRepo.Get(ctx, merchantID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("merchant not found")
		}
		return nil, err
	}

	if input.Total < 0 {
		return nil, domainerrors.BadRequest("total must not be negative")
	}

	order := &entities.Order{
		ID:            uuid.NewString(),
		MerchantID:    merchantID,
		CustomerName:  input.CustomerName,
		Product:       input.Product,
		Total:         input.Total,
		Status:        entities.OrderStatusPending,
		PaymentMethod: merchant.Method,
		Commission:    roundMoney(input.Total * merchant.CommissionRate / 100),
		CreatedAt:     time.Now().UTC(),
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if u.metrics != nil {
		u.metrics.RecordOrderCreated(merchantID, string(order.PaymentMethod), order.Total)
	}
	u.scheduler.Schedule(merchantID, order.ID)

	return order, nil
}

// GetOrder returns a single order
func (u *OrderUsecase) GetOrder(ctx context.Context, merchantID, orderID string) (*entities.Order, error) {
	order, err := u.orderRepo.Get(ctx, merchantID, orderID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("order not found")
		}
		return nil, err
	}
	return order, nil
}

// ListOrders returns the merchant's orders newest first, optionally
// restricted to one status. An empty or "all" filter returns everything.
func (u *OrderUsecase) ListOrders(ctx context.Context, merchantID, status string) ([]*entities.Order, error) {
	if status != "" && status != entities.StatusFilterAll && !entities.OrderStatus(status).Valid() {
		return nil, domainerrors.BadRequest("unknown status filter: " + status)
	}
	return u.orderRepo.List(ctx, merchantID, status)
}

// ListAllOrders returns every order across merchants, newest first
func (u *OrderUsecase) ListAllOrders(ctx context.Context) ([]*entities.Order, error) {
	return u.orderRepo.ListAll(ctx)
}

// UpdateOrder applies a manual correction. Setting status to paid stamps
// payment_processed_at only when the order was not already paid.
func (u *OrderUsecase) UpdateOrder(ctx context.Context, merchantID, orderID string, input *entities.OrderUpdateInput) (*entities.Order, error) {
	order, err := u.orderRepo.Get(ctx, merchantID, orderID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("order not found")
		}
		return nil, err
	}

	if input.CustomerName.Valid {
		order.CustomerName = input.CustomerName.String
	}
	if input.Product.Valid {
		order.Product = input.Product.String
	}
	if input.Total.Valid {
		if input.Total.Float64 < 0 {
			return nil, domainerrors.BadRequest("total must not be negative")
		}
		order.Total = input.Total.Float64
	}
	if input.Status.Valid {
		status := entities.OrderStatus(input.Status.String)
		if !status.Valid() {
			return nil, domainerrors.BadRequest("unknown status: " + input.Status.String)
		}
		// Read the previous status before overwriting it.
		if status == entities.OrderStatusPaid && order.Status != entities.OrderStatusPaid {
			order.PaymentProcessedAt.SetValid(time.Now().UTC())
		}
		order.Status = status
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order permanently
func (u *OrderUsecase) DeleteOrder(ctx context.Context, merchantID, orderID string) error {
	if err := u.orderRepo.Delete(ctx, merchantID, orderID); err != nil {
		if err == domainerrors.ErrNotFound {
			return domainerrors.NotFound("order not found")
		}
		return err
	}
	return nil
}

// Simulate re-queues an existing order for settlement. The call returns
// immediately; the outcome lands after the configured delay.
func (u *OrderUsecase) Simulate(ctx context.Context, merchantID, orderID string) error {
	if _, err := u.orderRepo.Get(ctx, merchantID, orderID); err != nil {
		if err == domainerrors.ErrNotFound {
			return domainerrors.NotFound("order not found")
		}
		return err
	}
	u.scheduler.Schedule(merchantID, orderID)
	return nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
