package store

import (
	"context"
	"time"

	"ghala.backend/internal/domain/entities"
	"ghala.backend/internal/domain/repositories"
)

// Merchants returns the store's merchant repository view
func (s *Store) Merchants() repositories.MerchantRepository { return merchantView{s} }

// Orders returns the store's order repository view
func (s *Store) Orders() repositories.OrderRepository { return orderView{s} }

// Users returns the store's user repository view
func (s *Store) Users() repositories.UserRepository { return userView{s} }

type merchantView struct{ s *Store }

func (v merchantView) Get(ctx context.Context, id string) (*entities.Merchant, error) {
	return v.s.Get(ctx, id)
}

func (v merchantView) Put(ctx context.Context, merchant *entities.Merchant) error {
	return v.s.Put(ctx, merchant)
}

func (v merchantView) List(ctx context.Context) ([]*entities.Merchant, error) {
	return v.s.List(ctx)
}

type orderView struct{ s *Store }

func (v orderView) Create(ctx context.Context, order *entities.Order) error {
	return v.s.Create(ctx, order)
}

func (v orderView) Get(ctx context.Context, merchantID, orderID string) (*entities.Order, error) {
	return v.s.GetOrder(ctx, merchantID, orderID)
}

func (v orderView) List(ctx context.Context, merchantID, status string) ([]*entities.Order, error) {
	return v.s.ListOrders(ctx, merchantID, status)
}

func (v orderView) ListAll(ctx context.Context) ([]*entities.Order, error) {
	return v.s.ListAllOrders(ctx)
}

func (v orderView) Update(ctx context.Context, order *entities.Order) error {
	return v.s.UpdateOrder(ctx, order)
}

func (v orderView) Delete(ctx context.Context, merchantID, orderID string) error {
	return v.s.DeleteOrder(ctx, merchantID, orderID)
}

func (v orderView) Resolve(ctx context.Context, merchantID, orderID string, status entities.OrderStatus, processedAt time.Time) error {
	return v.s.ResolveOrder(ctx, merchantID, orderID, status, processedAt)
}

type userView struct{ s *Store }

func (v userView) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return v.s.GetByUsername(ctx, username)
}
