package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"dc_inventory_server/internal/registry"
	"dc_inventory_server/pkg/logger"
)

// AssetService orchestrates the asset lifecycle workflows: bulk creation,
// repair from spare stock and modernization. Every workflow validates
// before mutating; a failure mid-sequence surfaces as-is and leaves prior
// steps committed — the registry is the source of truth and there is no
// rollback.
type AssetService struct {
	client RegistryClient
}

// NewAssetService creates an asset service on top of the registry gateway
func NewAssetService(client RegistryClient) *AssetService {
	return &AssetService{client: client}
}

// AssetItem is one requested line in a bulk creation: a type, a count and
// optionally one serial per unit.
type AssetItem struct {
	TypeID  int      `json:"type_id"`
	Count   int      `json:"count"`
	Serials []string `json:"serials,omitempty"`
}

// DeviceSummary is the device identity echoed back by the workflows
type DeviceSummary struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	AssetTag          string `json:"asset_tag"`
	ModernizationDate string `json:"ModernizationDate"`
}

// AssetSummary is one affected asset in a workflow summary
type AssetSummary struct {
	ID     int    `json:"id"`
	Model  string `json:"model"`
	Serial string `json:"serial"`
}

// RepairResult is the summary of a completed repair
type RepairResult struct {
	Status          string         `json:"status"`
	Device          DeviceSummary  `json:"device"`
	InstalledAssets []AssetSummary `json:"installed_assets"`
	Total           int            `json:"total"`
}

// ModernizationResult is the summary of a completed modernization
type ModernizationResult struct {
	Status        string         `json:"status"`
	Device        DeviceSummary  `json:"device"`
	RemovedAssets []AssetSummary `json:"removed_assets"`
	Total         int            `json:"total"`
}

// SiteLocations is one entry of the cascading site→location lookup map
type SiteLocations struct {
	SiteID    int            `json:"site_id"`
	Locations map[string]int `json:"locations"`
}

// GetAssets returns simplified assets matching the filters; an empty
// upstream result is an empty list
func (s *AssetService) GetAssets(filters url.Values) ([]SimplifiedAsset, error) {
	assets, err := s.client.GetAssets(filters)
	if err != nil {
		return nil, err
	}

	simplified := make([]SimplifiedAsset, 0, len(assets))
	for i := range assets {
		simplified = append(simplified, SimplifyAsset(&assets[i]))
	}
	return simplified, nil
}

// GetAssetByID returns one simplified asset
func (s *AssetService) GetAssetByID(id int) (*SimplifiedAsset, error) {
	asset, err := s.client.GetAssetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf("Комплектующая asset_id=%d не найдена", id)}
	}

	simplified := SimplifyAsset(asset)
	return &simplified, nil
}

// GetAssetTypes returns the type catalog as a model name → id map
func (s *AssetService) GetAssetTypes() (map[string]int, error) {
	types, err := s.client.GetAssetTypes()
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]int, len(types))
	for _, itemType := range types {
		catalog[itemType.Model] = itemType.ID
	}
	return catalog, nil
}

// CreateAssets validates the requested items and bulk-creates the assets
// in the registry, all with status "stored", the target location and the
// delivery-task tag. When serials are supplied their count must match the
// item count and assignment is positional.
func (s *AssetService) CreateAssets(items []AssetItem, storageLocationID int, deliveryTask string) ([]SimplifiedAsset, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Message: "items не переданы"}
	}

	records := []registry.AssetCreate{}

	for _, item := range items {
		if item.TypeID == 0 || item.Count == 0 {
			return nil, &ValidationError{
				Message: fmt.Sprintf("Некорректный item: type_id=%d, count=%d", item.TypeID, item.Count),
			}
		}

		if len(item.Serials) > 0 && len(item.Serials) != item.Count {
			return nil, &ValidationError{
				Message: fmt.Sprintf("Количество серийников (%d) не совпадает с count (%d)", len(item.Serials), item.Count),
			}
		}

		for i := 0; i < item.Count; i++ {
			record := registry.AssetCreate{
				InventoryItemType: item.TypeID,
				Status:            "stored",
				StorageLocation:   storageLocationID,
				CustomFields: map[string]interface{}{
					"DeliveryTask": deliveryTask,
				},
			}
			if len(item.Serials) > 0 {
				record.Serial = strings.TrimSpace(item.Serials[i])
			}
			records = append(records, record)
		}
	}

	created, err := s.client.CreateAssets(records)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("count", len(created)).Str("delivery_task", deliveryTask).Msg("assets created")

	simplified := make([]SimplifiedAsset, 0, len(created))
	for i := range created {
		simplified = append(simplified, SimplifyAsset(&created[i]))
	}
	return simplified, nil
}

// loadForOperation loads the device and every selected asset and checks
// the preconditions shared by repair and modernization. No mutation
// happens here; a precondition failure leaves the registry untouched.
func (s *AssetService) loadForOperation(assetIDs []int, deviceID int) (*registry.Device, []*registry.Asset, error) {
	device, err := s.client.GetDevice(deviceID)
	if err != nil {
		return nil, nil, err
	}
	if device == nil {
		return nil, nil, &NotFoundError{Message: fmt.Sprintf("Устройство device_id=%d не найдено", deviceID)}
	}

	assets := make([]*registry.Asset, 0, len(assetIDs))
	for _, assetID := range assetIDs {
		asset, err := s.client.GetAssetByID(assetID)
		if err != nil {
			return nil, nil, err
		}
		if asset == nil {
			return nil, nil, &NotFoundError{Message: fmt.Sprintf("Комплектующая asset_id=%d не найдена", assetID)}
		}
		if asset.Status != nil && asset.Status.Value == "used" {
			return nil, nil, &ConflictError{Message: fmt.Sprintf("Комплектующая asset_id=%d уже используется", assetID)}
		}
		assets = append(assets, asset)
	}

	return device, assets, nil
}

func summarize(assets []*registry.Asset) []AssetSummary {
	summaries := make([]AssetSummary, 0, len(assets))
	for _, asset := range assets {
		summaries = append(summaries, AssetSummary{
			ID:     asset.ID,
			Model:  assetModel(asset),
			Serial: asset.Serial,
		})
	}
	return summaries
}

// AssetsRepair installs stored assets into a device: each asset gets its
// Install_in field pointed at the device, its storage cleared and its
// status set to "used"; the device's modernization date is set to today
// and a journal note built from the pre-mutation state is attached.
func (s *AssetService) AssetsRepair(assetIDs []int, deviceID int, jiraTask string) (*RepairResult, error) {
	device, assets, err := s.loadForOperation(assetIDs, deviceID)
	if err != nil {
		return nil, err
	}

	// The note must reflect the state being replaced, so build it before
	// any mutation.
	note := BuildRepairNote(device, assets, jiraTask, s.client.BaseURL(), s.client.JiraURL())

	for _, asset := range assets {
		patch := map[string]interface{}{
			"custom_fields":    map[string]interface{}{"Install_in": deviceID},
			"storage_site":     nil,
			"storage_location": nil,
			"status":           "used",
		}
		if err := s.client.UpdateAsset(asset.ID, patch); err != nil {
			return nil, err
		}
	}

	modernizationDate := time.Now().Format("2006-01-02")

	err = s.client.UpdateDevice(deviceID, map[string]interface{}{
		"custom_fields": map[string]interface{}{"ModernizationDate": modernizationDate},
	})
	if err != nil {
		return nil, err
	}

	err = s.client.CreateJournalEntry(registry.JournalEntryCreate{
		AssignedObjectType: "dcim.device",
		AssignedObjectID:   deviceID,
		Kind:               "info",
		Comments:           note,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int("device_id", deviceID).Int("assets", len(assets)).Str("jira_task", jiraTask).Msg("assets repair completed")

	return &RepairResult{
		Status: "success",
		Device: DeviceSummary{
			ID:                device.ID,
			Name:              device.Name,
			AssetTag:          device.AssetTag,
			ModernizationDate: modernizationDate,
		},
		InstalledAssets: summarize(assets),
		Total:           len(assets),
	}, nil
}

// AssetsModernization decommissions stored assets into a device: the
// selected assets are deleted from the registry, the device's
// modernization date is set to today and a grouped journal note built
// from the pre-mutation state is attached.
func (s *AssetService) AssetsModernization(assetIDs []int, deviceID int, jiraTask string) (*ModernizationResult, error) {
	device, assets, err := s.loadForOperation(assetIDs, deviceID)
	if err != nil {
		return nil, err
	}

	note := BuildModernizationNote(device, assets, jiraTask, s.client.BaseURL(), s.client.JiraURL())

	for _, asset := range assets {
		if err := s.client.DeleteAsset(asset.ID); err != nil {
			return nil, err
		}
	}

	modernizationDate := time.Now().Format("2006-01-02")

	err = s.client.UpdateDevice(deviceID, map[string]interface{}{
		"custom_fields": map[string]interface{}{"ModernizationDate": modernizationDate},
	})
	if err != nil {
		return nil, err
	}

	err = s.client.CreateJournalEntry(registry.JournalEntryCreate{
		AssignedObjectType: "dcim.device",
		AssignedObjectID:   deviceID,
		Kind:               "info",
		Comments:           note,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int("device_id", deviceID).Int("assets", len(assets)).Str("jira_task", jiraTask).Msg("assets modernization completed")

	return &ModernizationResult{
		Status: "success",
		Device: DeviceSummary{
			ID:                device.ID,
			Name:              device.Name,
			AssetTag:          device.AssetTag,
			ModernizationDate: modernizationDate,
		},
		RemovedAssets: summarize(assets),
		Total:         len(assets),
	}, nil
}

// GetSiteLocationMap builds the cascading lookup the frontend uses:
// {site_name: {site_id, locations: {location_name: location_id}}}.
// Locations whose site is not a known data-center site are skipped.
func (s *AssetService) GetSiteLocationMap() (map[string]*SiteLocations, error) {
	sites, err := s.client.GetSites()
	if err != nil {
		return nil, err
	}

	siteMap := make(map[string]*SiteLocations, len(sites))
	for _, site := range sites {
		siteMap[site.Name] = &SiteLocations{
			SiteID:    site.ID,
			Locations: map[string]int{},
		}
	}

	locations, err := s.client.GetLocations()
	if err != nil {
		return nil, err
	}

	for _, location := range locations {
		if entry, ok := siteMap[location.Site.Name]; ok {
			entry.Locations[location.Name] = location.ID
		}
	}

	return siteMap, nil
}
