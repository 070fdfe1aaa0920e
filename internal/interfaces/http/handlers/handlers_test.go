package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghala.backend/internal/domain/entities"
	"ghala.backend/internal/infrastructure/store"
	"ghala.backend/internal/usecases"
	"ghala.backend/pkg/crypto"
	"ghala.backend/pkg/jwt"
	"ghala.backend/pkg/logger"
)

// nopScheduler records scheduled settlements without resolving them
type nopScheduler struct {
	calls []string
}

func (s *nopScheduler) Schedule(merchantID, orderID string) bool {
	s.calls = append(s.calls, merchantID+"/"+orderID)
	return true
}

type testEnv struct {
	router    *gin.Engine
	store     *store.Store
	scheduler *nopScheduler
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("development")

	st := store.New(nil)
	scheduler := &nopScheduler{}

	merchantUsecase := usecases.NewMerchantUsecase(st.Merchants())
	orderUsecase := usecases.NewOrderUsecase(st.Orders(), st.Merchants(), scheduler, nil)
	analyticsUsecase := usecases.NewAnalyticsUsecase(st.Orders())
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	authUsecase := usecases.NewAuthUsecase(st.Users(), jwtService)

	authHandler := NewAuthHandler(authUsecase)
	merchantHandler := NewMerchantHandler(merchantUsecase)
	orderHandler := NewOrderHandler(orderUsecase)
	analyticsHandler := NewAnalyticsHandler(analyticsUsecase)
	adminHandler := NewAdminHandler(merchantUsecase, orderUsecase)

	r := gin.New()
	r.POST("/login", authHandler.Login)
	r.GET("/payment-methods", merchantHandler.PaymentMethods)
	r.GET("/merchant/:id", merchantHandler.GetConfig)
	r.POST("/merchant/:id", merchantHandler.UpsertConfig)
	r.POST("/order/:merchant_id", orderHandler.CreateOrder)
	r.GET("/orders/:merchant_id", orderHandler.ListOrders)
	r.GET("/order/:merchant_id/:order_id", orderHandler.GetOrder)
	r.PUT("/order/:merchant_id/:order_id", orderHandler.UpdateOrder)
	r.DELETE("/order/:merchant_id/:order_id", orderHandler.DeleteOrder)
	r.POST("/simulate-payment/:merchant_id/:order_id", orderHandler.SimulatePayment)
	r.GET("/analytics/orders/:merchant_id", analyticsHandler.DailySeries)
	r.GET("/analytics/payment-methods/:merchant_id", analyticsHandler.PaymentMethodMix)
	r.GET("/analytics/status-distribution/:merchant_id", analyticsHandler.StatusDistribution)
	r.GET("/merchants", adminHandler.ListMerchants)
	r.GET("/orders", adminHandler.ListOrders)

	return &testEnv{router: r, store: st, scheduler: scheduler}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedMerchant(t *testing.T, id string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, e.store.Put(context.Background(), &entities.Merchant{
		ID:             id,
		Method:         entities.MethodMobile,
		Label:          "Till " + id,
		Provider:       "MTN",
		PhoneNumber:    "0977000001",
		CommissionRate: 2.5,
		CreatedAt:      now,
		UpdatedAt:      now,
	}))
}

func (e *testEnv) seedOrder(t *testing.T, merchantID, orderID string, status entities.OrderStatus) {
	t.Helper()
	require.NoError(t, e.store.Create(context.Background(), &entities.Order{
		ID:            orderID,
		MerchantID:    merchantID,
		CustomerName:  "Chanda",
		Product:       "Basket",
		Total:         100,
		Status:        status,
		PaymentMethod: entities.MethodMobile,
		Commission:    2.5,
		CreatedAt:     time.Now().UTC(),
	}))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLoginEndpoint(t *testing.T) {
	e := setupEnv(t)

	hash, err := crypto.HashPassword("merchant123")
	require.NoError(t, err)
	e.store.Restore(&store.Snapshot{
		Users: map[string]*entities.User{
			"merchant1": {
				Username:     "merchant1",
				Role:         entities.UserRoleMerchant,
				MerchantID:   "m1",
				PasswordHash: hash,
			},
		},
	})

	w := e.do(t, http.MethodPost, "/login", gin.H{"username": "merchant1", "password": "merchant123"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "m1", user["merchant_id"])
	tokens := body["tokens"].(map[string]interface{})
	assert.NotEmpty(t, tokens["access_token"])

	w = e.do(t, http.MethodPost, "/login", gin.H{"username": "merchant1", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(t, http.MethodPost, "/login", gin.H{"username": "merchant1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMerchantConfigEndpoints(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodPost, "/merchant/m1", gin.H{
		"method":       "mobile",
		"label":        "Main till",
		"provider":     "MTN",
		"phone_number": "0977000001",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "mobile", body["method"])
	assert.Equal(t, 2.5, body["commission_rate"])

	w = e.do(t, http.MethodGet, "/merchant/m1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/merchant/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodPost, "/merchant/m2", gin.H{"method": "card", "label": "Web"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decode(t, w)
	assert.Contains(t, body["message"], "card_number")
}

func TestPaymentMethodsEndpoint(t *testing.T) {
	e := setupEnv(t)

	w := e.do(t, http.MethodGet, "/payment-methods", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.Contains(t, body, "mobile")
	mobile := body["mobile"].(map[string]interface{})
	assert.Contains(t, mobile["required_fields"], "phone_number")
}

func TestCreateOrderEndpoint(t *testing.T) {
	e := setupEnv(t)
	e.seedMerchant(t, "m1")

	w := e.do(t, http.MethodPost, "/order/m1", gin.H{
		"customer_name": "Chanda",
		"product":       "Chitenge",
		"total":         200,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	order := body["order"].(map[string]interface{})
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, 5.0, order["commission"])
	require.Len(t, e.scheduler.calls, 1)

	w = e.do(t, http.MethodPost, "/order/ghost", gin.H{
		"customer_name": "Chanda",
		"product":       "Chitenge",
		"total":         200,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing required body fields fail validation before the usecase runs.
	w = e.do(t, http.MethodPost, "/order/m1", gin.H{"total": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderDetailEndpoints(t *testing.T) {
	e := setupEnv(t)
	e.seedMerchant(t, "m1")
	e.seedOrder(t, "m1", "o1", entities.OrderStatusPending)

	w := e.do(t, http.MethodGet, "/order/m1/o1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodPut, "/order/m1/o1", gin.H{"status": "paid"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "paid", body["status"])
	assert.NotNil(t, body["payment_processed_at"])

	w = e.do(t, http.MethodDelete, "/order/m1/o1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(t, http.MethodGet, "/order/m1/o1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(t, http.MethodDelete, "/order/m1/o1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersEndpoint(t *testing.T) {
	e := setupEnv(t)
	e.seedMerchant(t, "m1")
	e.seedOrder(t, "m1", "o1", entities.OrderStatusPaid)
	e.seedOrder(t, "m1", "o2", entities.OrderStatusPending)

	w := e.do(t, http.MethodGet, "/orders/m1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)

	w = e.do(t, http.MethodGet, "/orders/m1?status=paid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)

	w = e.do(t, http.MethodGet, "/orders/m1?status=refunded", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSimulatePaymentEndpoint(t *testing.T) {
	e := setupEnv(t)
	e.seedMerchant(t, "m1")
	e.seedOrder(t, "m1", "o1", entities.OrderStatusFailed)

	w := e.do(t, http.MethodPost, "/simulate-payment/m1/o1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, []string{"m1/o1"}, e.scheduler.calls)

	w = e.do(t, http.MethodPost, "/simulate-payment/m1/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyticsEndpoints(t *testing.T) {
	e := setupEnv(t)
	e.seedMerchant(t, "m1")
	e.seedOrder(t, "m1", "o1", entities.OrderStatusPaid)
	e.seedOrder(t, "m1", "o2", entities.OrderStatusPending)

	w := e.do(t, http.MethodGet, "/analytics/orders/m1?days=7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["dates"], 7)
	assert.Len(t, body["order_counts"], 7)
	assert.Len(t, body["revenue"], 7)

	w = e.do(t, http.MethodGet, "/analytics/payment-methods/m1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, 100.0, body["mobile"])

	w = e.do(t, http.MethodGet, "/analytics/status-distribution/m1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, 50.0, body["paid"])
	assert.Equal(t, 50.0, body["pending"])
}

func TestAdminEndpoints(t *testing.T) {
	e := setupEnv(t)
	e.seedMerchant(t, "m1")
	e.seedMerchant(t, "m2")
	e.seedOrder(t, "m1", "o1", entities.OrderStatusPending)
	e.seedOrder(t, "m2", "o2", entities.OrderStatusPaid)

	w := e.do(t, http.MethodGet, "/merchants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body, 2)
	assert.Contains(t, body, "m1")

	w = e.do(t, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}
