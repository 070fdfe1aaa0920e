package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ghala.backend/internal/interfaces/http/response"
	"ghala.backend/internal/usecases"
)

// AnalyticsHandler handles the reporting endpoints
type AnalyticsHandler struct {
	analyticsUsecase *usecases.AnalyticsUsecase
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUsecase *usecases.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// DailySeries returns per-day order counts and paid revenue
// GET /analytics/orders/:merchant_id?days=
func (h *AnalyticsHandler) DailySeries(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	series, err := h.analyticsUsecase.DailySeries(c.Request.Context(), c.Param("merchant_id"), days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, series)
}

// PaymentMethodMix returns the payment method percentage split
// GET /analytics/payment-methods/:merchant_id
func (h *AnalyticsHandler) PaymentMethodMix(c *gin.Context) {
	mix, err := h.analyticsUsecase.PaymentMethodMix(c.Request.Context(), c.Param("merchant_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, mix)
}

// StatusDistribution returns the order status percentage split
// GET /analytics/status-distribution/:merchant_id
func (h *AnalyticsHandler) StatusDistribution(c *gin.Context) {
	mix, err := h.analyticsUsecase.StatusMix(c.Request.Context(), c.Param("merchant_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, mix)
}
