package services

import (
	"net/url"

	"dc_inventory_server/internal/registry"
)

// RegistryClient is the slice of the registry gateway the services use.
// Tests substitute an in-memory implementation.
type RegistryClient interface {
	BaseURL() string
	JiraURL() string

	GetSites() ([]registry.Site, error)
	GetLocations() ([]registry.Location, error)

	GetAssets(filters url.Values) ([]registry.Asset, error)
	GetAssetByID(id int) (*registry.Asset, error)
	GetAssetTypes() ([]registry.InventoryItemType, error)
	CreateAssets(records []registry.AssetCreate) ([]registry.Asset, error)
	UpdateAsset(id int, patch map[string]interface{}) error
	DeleteAsset(id int) error

	GetDevice(id int) (*registry.Device, error)
	GetDevices() ([]registry.Device, error)
	FindDeviceByAssetTag(assetTag string) (*registry.Device, error)
	FindDeviceByName(name string) (*registry.Device, error)
	CreateDevices(records []registry.DeviceCreate) ([]registry.Device, error)
	UpdateDevice(id int, patch map[string]interface{}) error
	DeleteDevice(id int) error

	GetDeviceRoles() ([]registry.DeviceRole, error)
	GetDeviceTypes() ([]registry.DeviceType, error)
	GetManufacturers() ([]registry.Manufacturer, error)

	GetInterface(deviceID int, name string) (*registry.Interface, error)
	UpdateInterface(id int, patch map[string]interface{}) error
	CreateCable(payload registry.CableCreate) (*registry.Cable, error)

	CreateJournalEntry(entry registry.JournalEntryCreate) error
}
