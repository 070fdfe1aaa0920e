package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ghala.backend/internal/domain/entities"
	"ghala.backend/internal/interfaces/http/response"
	"ghala.backend/internal/usecases"
)

// OrderHandler handles the order lifecycle endpoints
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// CreateOrder records a new pending order
// POST /order/:merchant_id
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var input entities.OrderCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), c.Param("merchant_id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"order":   order,
	})
}

// ListOrders lists the merchant's orders, optionally filtered by status
// GET /orders/:merchant_id?status=
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderUsecase.ListOrders(c.Request.Context(), c.Param("merchant_id"), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// GetOrder returns a single order
// GET /order/:merchant_id/:order_id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderUsecase.GetOrder(c.Request.Context(), c.Param("merchant_id"), c.Param("order_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// UpdateOrder applies a manual correction to an order
// PUT /order/:merchant_id/:order_id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var input entities.OrderUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderUsecase.UpdateOrder(c.Request.Context(), c.Param("merchant_id"), c.Param("order_id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// DeleteOrder removes an order permanently
// DELETE /order/:merchant_id/:order_id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderUsecase.DeleteOrder(c.Request.Context(), c.Param("merchant_id"), c.Param("order_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// SimulatePayment re-queues an order for settlement. The response reports
// acceptance, not the final outcome.
// POST /simulate-payment/:merchant_id/:order_id
func (h *OrderHandler) SimulatePayment(c *gin.Context) {
	if err := h.orderUsecase.Simulate(c.Request.Context(), c.Param("merchant_id"), c.Param("order_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true, "status": "pending"})
}
