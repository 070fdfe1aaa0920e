package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ghala.backend/internal/domain/entities"
	"ghala.backend/internal/interfaces/http/response"
	"ghala.backend/internal/usecases"
)

// MerchantHandler handles merchant configuration endpoints
type MerchantHandler struct {
	merchantUsecase *usecases.MerchantUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase}
}

// GetConfig returns the merchant's payout configuration
// GET /merchant/:id
func (h *MerchantHandler) GetConfig(c *gin.Context) {
	merchant, err := h.merchantUsecase.GetConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchant)
}

// UpsertConfig creates or updates the merchant's payout configuration
// POST /merchant/:id
func (h *MerchantHandler) UpsertConfig(c *gin.Context) {
	var input entities.MerchantConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merchant, err := h.merchantUsecase.UpsertConfig(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, merchant)
}

// PaymentMethods returns the payout method catalogue
// GET /payment-methods
func (h *MerchantHandler) PaymentMethods(c *gin.Context) {
	response.Success(c, http.StatusOK, h.merchantUsecase.PaymentMethods())
}
