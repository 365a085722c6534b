package controllers

import (
	"errors"
	"net/http"
	"time"

	"dc_inventory_server/internal/registry"
	"dc_inventory_server/internal/services"

	"github.com/gin-gonic/gin"
)

// referenceTTL is how long slow-changing catalog reads (types, sites,
// manufacturers) stay cached; matches the week-long TTL the operator UI
// used for the same data.
const referenceTTL = 7 * 24 * time.Hour

// handleServiceError is the single translation point from error kind to
// response status. Messages propagate verbatim.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError
	var registryErr *registry.RegistryError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	case errors.As(err, &registryErr):
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}

// respondListRead degrades an upstream failure on a list-style read into
// an inline error payload instead of a failure status. Kept as observed
// behavior from the previous generation of this API.
func respondListRead(c *gin.Context, value interface{}, err error) {
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, value)
}
