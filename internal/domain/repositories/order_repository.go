package repositories

import (
	"context"
	"time"

	"ghala.backend/internal/domain/entities"
)

// OrderRepository defines order lifecycle operations. Listings are ordered
// newest created_at first.
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	Get(ctx context.Context, merchantID, orderID string) (*entities.Order, error)
	// List returns a merchant's orders, restricted to the given status
	// unless it is empty or "all".
	List(ctx context.Context, merchantID, status string) ([]*entities.Order, error)
	ListAll(ctx context.Context) ([]*entities.Order, error)
	Update(ctx context.Context, order *entities.Order) error
	Delete(ctx context.Context, merchantID, orderID string) error
	// Resolve applies a settlement outcome: sets the terminal status and,
	// when paid, stamps payment_processed_at with processedAt.
	Resolve(ctx context.Context, merchantID, orderID string, status entities.OrderStatus, processedAt time.Time) error
}
