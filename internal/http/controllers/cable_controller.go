package controllers

import (
	"net/http"

	"dc_inventory_server/internal/services"

	"github.com/gin-gonic/gin"
)

// CableController handles cable creation requests
type CableController struct {
	service *services.DeviceService
}

// NewCableController creates a new cable controller
func NewCableController(service *services.DeviceService) *CableController {
	return &CableController{service: service}
}

// CreateCables creates cables between named device interfaces
func (cc *CableController) CreateCables(c *gin.Context) {
	var specs []services.CableSpec
	if err := c.ShouldBindJSON(&specs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := cc.service.CreateCables(specs)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if len(report.Created) == 0 && len(report.Errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Не удалось создать ни один кабель",
			"details": report.Errors,
		})
		return
	}

	c.JSON(http.StatusCreated, report)
}
