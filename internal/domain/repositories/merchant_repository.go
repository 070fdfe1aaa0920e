package repositories

import (
	"context"

	"ghala.backend/internal/domain/entities"
)

// MerchantRepository defines merchant configuration operations
type MerchantRepository interface {
	Get(ctx context.Context, id string) (*entities.Merchant, error)
	Put(ctx context.Context, merchant *entities.Merchant) error
	List(ctx context.Context) ([]*entities.Merchant, error)
}

// UserRepository defines login credential lookups
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}
