package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ghala.backend/internal/domain/entities"
	"ghala.backend/pkg/crypto"
	"ghala.backend/pkg/logger"
)

// Seed returns the demo dataset used when no usable snapshot exists:
// two configured merchants and their dashboard logins.
func Seed() *Snapshot {
	now := time.Now()

	snap := &Snapshot{
		Merchants: map[string]*entities.Merchant{
			"m1": {
				ID:             "m1",
				Method:         entities.MethodMobile,
				Label:          "My Mobile Money",
				Provider:       "MTN",
				PhoneNumber:    "0977123456",
				CommissionRate: 2.5,
				CreatedAt:      now,
				UpdatedAt:      now,
			},
			"m2": {
				ID:             "m2",
				Method:         entities.MethodCard,
				Label:          "Business Visa Card",
				Provider:       "Visa",
				CardNumber:     "4111111111111111",
				Expiry:         "12/25",
				CVV:            "123",
				CommissionRate: 3.0,
				CreatedAt:      now,
				UpdatedAt:      now,
			},
		},
		Orders: map[string]map[string]*entities.Order{},
		Users:  map[string]*entities.User{},
	}

	seedUser(snap, &entities.User{
		Username: "admin",
		Name:     "Admin User",
		Email:    "admin@ghala.com",
		Role:     entities.UserRoleAdmin,
	}, "admin123")
	seedUser(snap, &entities.User{
		Username:   "merchant1",
		Name:       "Merchant One",
		Email:      "merchant1@business.com",
		Role:       entities.UserRoleMerchant,
		MerchantID: "m1",
	}, "merchant123")
	seedUser(snap, &entities.User{
		Username:   "merchant2",
		Name:       "Merchant Two",
		Email:      "merchant2@business.com",
		Role:       entities.UserRoleMerchant,
		MerchantID: "m2",
	}, "merchant123")

	return snap
}

func seedUser(snap *Snapshot, user *entities.User, password string) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		logger.Error(context.Background(), "failed to hash seed password", zap.String("username", user.Username), zap.Error(err))
		return
	}
	user.PasswordHash = hash
	snap.Users[user.Username] = user
}
