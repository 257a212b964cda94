package handlers

import (
	"net/http"

	"carebook/models"
	providerSvc "carebook/services/provider"
	"carebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *ProviderHandler) SetScheduleHandler(c *gin.Context) {
	providerID, ok := callerID(c, "providerID")
	if !ok {
		return
	}

	var req models.SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	schedules, err := h.Service.SetWeeklySchedule(c.Request.Context(), providerID, req)
	if err != nil {
		if providerSvc.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to set weekly schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set weekly schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Weekly schedule updated",
		"schedule": schedules,
	})
}

func (h *ProviderHandler) GetScheduleHandler(c *gin.Context) {
	providerID := c.Param("id")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	schedules, err := h.Service.GetWeeklySchedule(c.Request.Context(), providerID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch weekly schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weekly schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedules})
}

func (h *ProviderHandler) SetOverrideHandler(c *gin.Context) {
	providerID, ok := callerID(c, "providerID")
	if !ok {
		return
	}

	var req models.SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	override, err := h.Service.SetOverride(c.Request.Context(), providerID, req)
	if err != nil {
		if providerSvc.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to set date override", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set date override"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Date override saved",
		"override": override,
	})
}

func (h *ProviderHandler) BulkOverridesHandler(c *gin.Context) {
	providerID, ok := callerID(c, "providerID")
	if !ok {
		return
	}

	var req models.BulkOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	count, err := h.Service.BulkSetOverrides(c.Request.Context(), providerID, req)
	if err != nil {
		if providerSvc.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to bulk-set overrides", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set overrides"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Overrides saved",
		"count":   count,
	})
}

func (h *ProviderHandler) ClearOverrideHandler(c *gin.Context) {
	providerID, ok := callerID(c, "providerID")
	if !ok {
		return
	}

	date := c.Param("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date in path"})
		return
	}

	if err := h.Service.ClearOverride(c.Request.Context(), providerID, date); err != nil {
		if providerSvc.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to clear date override", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear date override"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Date override cleared"})
}

func (h *ProviderHandler) ListOverridesHandler(c *gin.Context) {
	providerID := c.Param("id")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing from/to query parameters"})
		return
	}

	overrides, err := h.Service.ListOverrides(c.Request.Context(), providerID, from, to)
	if err != nil {
		if providerSvc.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to list overrides", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list overrides"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"overrides": overrides})
}
