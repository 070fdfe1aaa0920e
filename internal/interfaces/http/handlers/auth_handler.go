package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ghala.backend/internal/domain/entities"
	"ghala.backend/internal/interfaces/http/response"
	"ghala.backend/internal/usecases"
)

// AuthHandler handles login
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Login handles password login
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, tokens, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"tokens":  tokens,
	})
}
