package controllers

import (
	"net/http"

	"dc_inventory_server/internal/registry"
	"dc_inventory_server/internal/services"
	"dc_inventory_server/pkg/cache"

	"github.com/gin-gonic/gin"
)

// DeviceController handles device-related HTTP requests
type DeviceController struct {
	service *services.DeviceService
	cache   *cache.ReadCache
}

// NewDeviceController creates a new device controller
func NewDeviceController(service *services.DeviceService, readCache *cache.ReadCache) *DeviceController {
	return &DeviceController{service: service, cache: readCache}
}

// GetDevices returns every device in simplified form. Device lists are
// not cached; the lifecycle workflows mutate them.
func (dc *DeviceController) GetDevices(c *gin.Context) {
	devices, err := dc.service.GetDevices()
	respondListRead(c, devices, err)
}

// CreateDevices bulk-creates devices
func (dc *DeviceController) CreateDevices(c *gin.Context) {
	var records []registry.DeviceCreate
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	devices, err := dc.service.CreateDevices(records)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, devices)
}

type deleteDeviceRequest struct {
	AssetTag string `json:"asset_tag"`
}

// DeleteDevice removes a device by asset tag
func (dc *DeviceController) DeleteDevice(c *gin.Context) {
	var req deleteDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AssetTag == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не хватает параметров: asset_tag"})
		return
	}

	if err := dc.service.DeleteDevice(req.AssetTag); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDeviceRoles returns the cached device role catalog
func (dc *DeviceController) GetDeviceRoles(c *gin.Context) {
	roles, err := dc.cache.GetOrFetch("device_roles", referenceTTL, func() (interface{}, error) {
		return dc.service.GetDeviceRoles()
	})
	respondListRead(c, roles, err)
}

// GetDeviceTypes returns the cached device type catalog
func (dc *DeviceController) GetDeviceTypes(c *gin.Context) {
	types, err := dc.cache.GetOrFetch("device_types", referenceTTL, func() (interface{}, error) {
		return dc.service.GetDeviceTypes()
	})
	respondListRead(c, types, err)
}

// GetManufacturers returns the cached manufacturer names
func (dc *DeviceController) GetManufacturers(c *gin.Context) {
	manufacturers, err := dc.cache.GetOrFetch("manufacturers", referenceTTL, func() (interface{}, error) {
		return dc.service.GetManufacturers()
	})
	respondListRead(c, manufacturers, err)
}
