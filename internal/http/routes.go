package http

import (
	"net/http"

	"dc_inventory_server/internal/http/controllers"
	"dc_inventory_server/internal/services"
	"dc_inventory_server/pkg/cache"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes. The previous backend carried two
// parallel route sets from an incremental migration; this is the unified
// one.
func SetupRoutes(router *gin.Engine, assetService *services.AssetService, deviceService *services.DeviceService) {
	readCache := cache.New()

	assetController := controllers.NewAssetController(assetService, readCache)
	deviceController := controllers.NewDeviceController(deviceService, readCache)
	siteController := controllers.NewSiteController(assetService, readCache)
	cableController := controllers.NewCableController(deviceService)
	cacheController := controllers.NewCacheController(readCache)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Assets
	router.GET("/assets/", assetController.GetAssets)
	router.GET("/assets/:id/", assetController.GetAsset)
	router.GET("/asset_types/", assetController.GetAssetTypes)
	router.POST("/assets/create", assetController.CreateAssets)
	router.POST("/assets/repair", assetController.RepairAssets)
	router.POST("/assets/modernization", assetController.ModernizeAssets)

	// Sites and locations
	router.GET("/site_location/", siteController.GetSiteLocationMap)

	// Devices and catalogs
	router.GET("/devices/", deviceController.GetDevices)
	router.POST("/devices/create", deviceController.CreateDevices)
	router.DELETE("/devices/", deviceController.DeleteDevice)
	router.GET("/device_roles/", deviceController.GetDeviceRoles)
	router.GET("/device_types/", deviceController.GetDeviceTypes)
	router.GET("/manufacturers/", deviceController.GetManufacturers)

	// Cables
	router.POST("/cables/create", cableController.CreateCables)

	// Operator-triggered invalidation of the reference-read cache
	router.POST("/cache/flush", cacheController.Flush)
}
