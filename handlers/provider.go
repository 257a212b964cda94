package handlers

import (
	"errors"
	"net/http"

	"carebook/models"
	providerSvc "carebook/services/provider"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider account, profile and calendar endpoints.
type ProviderHandler struct {
	Service providerSvc.ProviderService
}

func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ProviderRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	auth, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if providerSvc.IsValidationError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to register provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register provider"})
		return
	}

	c.JSON(http.StatusCreated, auth)
}

func (h *ProviderHandler) AuthenticateProviderHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	auth, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, providerSvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to authenticate provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, auth)
}

func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	providerID := c.Param("id")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	dto, err := h.Service.GetByID(c.Request.Context(), providerID)
	if err != nil {
		if errors.Is(err, providerSvc.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch provider"})
		return
	}

	c.JSON(http.StatusOK, dto)
}

func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	providerID, ok := callerID(c, "providerID")
	if !ok {
		return
	}

	var req models.ProviderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.UpdateProfile(c.Request.Context(), providerID, req); err != nil {
		if providerSvc.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to update provider", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update provider"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
