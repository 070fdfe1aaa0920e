package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ghala.backend/internal/domain/entities"
	"ghala.backend/internal/infrastructure/store"
	"ghala.backend/pkg/logger"
)

// stubScheduler records scheduled settlements without running them
type stubScheduler struct {
	calls []string
}

func (s *stubScheduler) Schedule(merchantID, orderID string) bool {
	s.calls = append(s.calls, merchantID+"/"+orderID)
	return true
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	logger.Init("development")
	return store.New(nil)
}

func seedMerchant(t *testing.T, st *store.Store, id string, rate float64) *entities.Merchant {
	t.Helper()
	now := time.Now().UTC()
	merchant := &entities.Merchant{
		ID:             id,
		Method:         entities.MethodMobile,
		Label:          "Till " + id,
		Provider:       "MTN",
		PhoneNumber:    "0977000001",
		CommissionRate: rate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, st.Put(context.Background(), merchant))
	return merchant
}

func seedOrder(t *testing.T, st *store.Store, merchantID, orderID string, status entities.OrderStatus, total float64, createdAt time.Time) *entities.Order {
	t.Helper()
	order := &entities.Order{
		ID:            orderID,
		MerchantID:    merchantID,
		CustomerName:  "Bwalya",
		Product:       "Basket",
		Total:         total,
		Status:        status,
		PaymentMethod: entities.MethodMobile,
		Commission:    total * 0.025,
		CreatedAt:     createdAt,
	}
	require.NoError(t, st.Create(context.Background(), order))
	return order
}
