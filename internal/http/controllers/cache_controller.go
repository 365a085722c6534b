package controllers

import (
	"net/http"

	"dc_inventory_server/pkg/cache"

	"github.com/gin-gonic/gin"
)

// CacheController exposes the operator-triggered cache invalidation
type CacheController struct {
	cache *cache.ReadCache
}

// NewCacheController creates a new cache controller
func NewCacheController(readCache *cache.ReadCache) *CacheController {
	return &CacheController{cache: readCache}
}

// Flush drops every cached reference read so the next request refetches
// from the registry
func (cc *CacheController) Flush(c *gin.Context) {
	cc.cache.Flush()
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
