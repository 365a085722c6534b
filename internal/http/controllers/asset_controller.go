package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"dc_inventory_server/internal/services"
	"dc_inventory_server/pkg/cache"

	"github.com/gin-gonic/gin"
)

// AssetController handles asset-related HTTP requests
type AssetController struct {
	service *services.AssetService
	cache   *cache.ReadCache
}

// NewAssetController creates a new asset controller
func NewAssetController(service *services.AssetService, readCache *cache.ReadCache) *AssetController {
	return &AssetController{service: service, cache: readCache}
}

// GetAssets returns simplified assets matching the query filters
func (ac *AssetController) GetAssets(c *gin.Context) {
	filters := url.Values{}
	for key, values := range c.Request.URL.Query() {
		for _, value := range values {
			if value != "" {
				filters.Add(key, value)
			}
		}
	}

	assets, err := ac.service.GetAssets(filters)
	respondListRead(c, assets, err)
}

// GetAsset returns a single simplified asset by id
func (ac *AssetController) GetAsset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "asset id должен быть числом"})
		return
	}

	asset, err := ac.service.GetAssetByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

// GetAssetTypes returns the cached model name → type id catalog
func (ac *AssetController) GetAssetTypes(c *gin.Context) {
	types, err := ac.cache.GetOrFetch("asset_types", referenceTTL, func() (interface{}, error) {
		return ac.service.GetAssetTypes()
	})
	respondListRead(c, types, err)
}

type createAssetsRequest struct {
	Items             []services.AssetItem `json:"items"`
	StorageLocationID int                  `json:"storage_location_id"`
	DeliveryTask      string               `json:"delivery_task"`
}

// CreateAssets bulk-creates stored assets at a storage location
func (ac *AssetController) CreateAssets(c *gin.Context) {
	var req createAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Items) == 0 || req.StorageLocationID == 0 || req.DeliveryTask == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не хватает параметров: items, storage_location_id, delivery_task"})
		return
	}

	assets, err := ac.service.CreateAssets(req.Items, req.StorageLocationID, req.DeliveryTask)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":        "success",
		"created_count": len(assets),
		"assets":        assets,
	})
}

type assetOperationRequest struct {
	DeviceID int    `json:"device_id"`
	AssetIDs []int  `json:"asset_ids"`
	JiraTask string `json:"jira_task"`
}

func (r *assetOperationRequest) incomplete() bool {
	return r.DeviceID == 0 || len(r.AssetIDs) == 0 || r.JiraTask == ""
}

// RepairAssets installs stored assets into a device
func (ac *AssetController) RepairAssets(c *gin.Context) {
	var req assetOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.incomplete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не хватает параметров: device_id, asset_ids, jira_task"})
		return
	}

	result, err := ac.service.AssetsRepair(req.AssetIDs, req.DeviceID, req.JiraTask)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ModernizeAssets decommissions stored assets into a device
func (ac *AssetController) ModernizeAssets(c *gin.Context) {
	var req assetOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.incomplete() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не хватает параметров: device_id, asset_ids, jira_task"})
		return
	}

	result, err := ac.service.AssetsModernization(req.AssetIDs, req.DeviceID, req.JiraTask)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
