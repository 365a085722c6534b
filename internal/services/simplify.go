package services

import "dc_inventory_server/internal/registry"

// ModelInfo is the flattened type relation of a simplified asset. ID is
// null when the relation is absent.
type ModelInfo struct {
	ID    *int   `json:"id"`
	Model string `json:"model"`
}

// LocationInfo is the flattened storage location of a simplified asset
type LocationInfo struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
}

// SimplifiedAsset is the flat display record the frontend consumes
type SimplifiedAsset struct {
	ID              int                    `json:"id"`
	Display         string                 `json:"display"`
	Serial          string                 `json:"serial"`
	Status          string                 `json:"status"`
	Model           ModelInfo              `json:"model"`
	StorageLocation LocationInfo           `json:"storage_location"`
	CustomFields    map[string]interface{} `json:"custom_fields"`
}

// SimplifyAsset flattens a raw registry asset into a display record. It
// never mutates its input; custom fields are copied, not aliased.
func SimplifyAsset(asset *registry.Asset) SimplifiedAsset {
	model := ModelInfo{Model: "N/A"}
	if asset.InventoryItemType != nil {
		id := asset.InventoryItemType.ID
		model = ModelInfo{ID: &id, Model: asset.InventoryItemType.Model}
	}

	location := LocationInfo{Name: "N/A"}
	if asset.StorageLocation != nil {
		id := asset.StorageLocation.ID
		location = LocationInfo{ID: &id, Name: asset.StorageLocation.Name}
	}

	status := ""
	if asset.Status != nil {
		status = asset.Status.Value
	}

	customFields := map[string]interface{}{}
	for key, value := range asset.CustomFields {
		customFields[key] = value
	}

	return SimplifiedAsset{
		ID:              asset.ID,
		Display:         asset.Display,
		Serial:          asset.Serial,
		Status:          status,
		Model:           model,
		StorageLocation: location,
		CustomFields:    customFields,
	}
}
