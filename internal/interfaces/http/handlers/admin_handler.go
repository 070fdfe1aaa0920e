package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ghala.backend/internal/interfaces/http/response"
	"ghala.backend/internal/usecases"
)

// AdminHandler handles the system-wide listing endpoints
type AdminHandler struct {
	merchantUsecase *usecases.MerchantUsecase
	orderUsecase    *usecases.OrderUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(merchantUsecase *usecases.MerchantUsecase, orderUsecase *usecases.OrderUsecase) *AdminHandler {
	return &AdminHandler{merchantUsecase: merchantUsecase, orderUsecase: orderUsecase}
}

// ListMerchants returns every merchant keyed by id
// GET /merchants
func (h *AdminHandler) ListMerchants(c *gin.Context) {
	merchants, err := h.merchantUsecase.ListMerchants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchants)
}

// ListOrders returns every order across merchants, newest first
// GET /orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderUsecase.ListAllOrders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}
