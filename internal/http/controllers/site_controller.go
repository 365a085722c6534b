package controllers

import (
	"dc_inventory_server/internal/services"
	"dc_inventory_server/pkg/cache"

	"github.com/gin-gonic/gin"
)

// SiteController serves the site→location lookup the frontend uses for
// cascading selection
type SiteController struct {
	service *services.AssetService
	cache   *cache.ReadCache
}

// NewSiteController creates a new site controller
func NewSiteController(service *services.AssetService, readCache *cache.ReadCache) *SiteController {
	return &SiteController{service: service, cache: readCache}
}

// GetSiteLocationMap returns the cached nested site→location map
func (sc *SiteController) GetSiteLocationMap(c *gin.Context) {
	siteMap, err := sc.cache.GetOrFetch("site_location", referenceTTL, func() (interface{}, error) {
		return sc.service.GetSiteLocationMap()
	})
	respondListRead(c, siteMap, err)
}
