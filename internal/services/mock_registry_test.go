package services

import (
	"fmt"
	"net/url"

	"dc_inventory_server/internal/registry"
)

// mockRegistry is an in-memory RegistryClient recording every mutation it
// receives, so tests can assert both outcomes and call ordering.
type mockRegistry struct {
	devices       map[int]*registry.Device
	assets        map[int]*registry.Asset
	sites         []registry.Site
	locations     []registry.Location
	assetTypes    []registry.InventoryItemType
	deviceRoles   []registry.DeviceRole
	deviceTypes   []registry.DeviceType
	manufacturers []registry.Manufacturer
	interfaces    map[string]*registry.Interface // "deviceID/name"

	createdAssets  []registry.AssetCreate
	assetPatches   map[int][]map[string]interface{}
	devicePatches  map[int][]map[string]interface{}
	deletedAssets  []int
	deletedDevices []int
	journalEntries []registry.JournalEntryCreate
	cables         []registry.CableCreate
	callLog        []string

	createAssetsErr error
	updateAssetErr  error
}

func newMockRegistry() *mockRegistry {
	return &mockRegistry{
		devices:       map[int]*registry.Device{},
		assets:        map[int]*registry.Asset{},
		interfaces:    map[string]*registry.Interface{},
		assetPatches:  map[int][]map[string]interface{}{},
		devicePatches: map[int][]map[string]interface{}{},
	}
}

func (m *mockRegistry) BaseURL() string { return "https://netbox.local" }
func (m *mockRegistry) JiraURL() string { return "https://jira.local/browse" }

func (m *mockRegistry) GetSites() ([]registry.Site, error)         { return m.sites, nil }
func (m *mockRegistry) GetLocations() ([]registry.Location, error) { return m.locations, nil }

func (m *mockRegistry) GetAssets(filters url.Values) ([]registry.Asset, error) {
	assets := []registry.Asset{}
	for _, asset := range m.assets {
		assets = append(assets, *asset)
	}
	return assets, nil
}

func (m *mockRegistry) GetAssetByID(id int) (*registry.Asset, error) {
	m.callLog = append(m.callLog, fmt.Sprintf("get_asset %d", id))
	return m.assets[id], nil
}

func (m *mockRegistry) GetAssetTypes() ([]registry.InventoryItemType, error) {
	return m.assetTypes, nil
}

func (m *mockRegistry) CreateAssets(records []registry.AssetCreate) ([]registry.Asset, error) {
	m.callLog = append(m.callLog, "create_assets")
	if m.createAssetsErr != nil {
		return nil, m.createAssetsErr
	}
	m.createdAssets = append(m.createdAssets, records...)

	created := make([]registry.Asset, 0, len(records))
	for i, record := range records {
		created = append(created, registry.Asset{
			ID:                1000 + i,
			Serial:            record.Serial,
			Status:            &registry.StatusField{Value: record.Status},
			InventoryItemType: &registry.TypeRef{ID: record.InventoryItemType, Model: fmt.Sprintf("type-%d", record.InventoryItemType)},
			CustomFields:      record.CustomFields,
		})
	}
	return created, nil
}

func (m *mockRegistry) UpdateAsset(id int, patch map[string]interface{}) error {
	m.callLog = append(m.callLog, fmt.Sprintf("update_asset %d", id))
	if m.updateAssetErr != nil {
		return m.updateAssetErr
	}
	m.assetPatches[id] = append(m.assetPatches[id], patch)
	return nil
}

func (m *mockRegistry) DeleteAsset(id int) error {
	m.callLog = append(m.callLog, fmt.Sprintf("delete_asset %d", id))
	m.deletedAssets = append(m.deletedAssets, id)
	delete(m.assets, id)
	return nil
}

func (m *mockRegistry) GetDevice(id int) (*registry.Device, error) {
	m.callLog = append(m.callLog, fmt.Sprintf("get_device %d", id))
	return m.devices[id], nil
}

func (m *mockRegistry) GetDevices() ([]registry.Device, error) {
	devices := []registry.Device{}
	for _, device := range m.devices {
		devices = append(devices, *device)
	}
	return devices, nil
}

func (m *mockRegistry) FindDeviceByAssetTag(assetTag string) (*registry.Device, error) {
	for _, device := range m.devices {
		if device.AssetTag == assetTag {
			return device, nil
		}
	}
	return nil, nil
}

func (m *mockRegistry) FindDeviceByName(name string) (*registry.Device, error) {
	for _, device := range m.devices {
		if device.Name == name {
			return device, nil
		}
	}
	return nil, nil
}

func (m *mockRegistry) CreateDevices(records []registry.DeviceCreate) ([]registry.Device, error) {
	created := make([]registry.Device, 0, len(records))
	for i, record := range records {
		created = append(created, registry.Device{
			ID:       2000 + i,
			Name:     record.Name,
			AssetTag: record.AssetTag,
			Serial:   record.Serial,
		})
	}
	return created, nil
}

func (m *mockRegistry) UpdateDevice(id int, patch map[string]interface{}) error {
	m.callLog = append(m.callLog, fmt.Sprintf("update_device %d", id))
	m.devicePatches[id] = append(m.devicePatches[id], patch)
	return nil
}

func (m *mockRegistry) DeleteDevice(id int) error {
	m.deletedDevices = append(m.deletedDevices, id)
	delete(m.devices, id)
	return nil
}

func (m *mockRegistry) GetDeviceRoles() ([]registry.DeviceRole, error)     { return m.deviceRoles, nil }
func (m *mockRegistry) GetDeviceTypes() ([]registry.DeviceType, error)     { return m.deviceTypes, nil }
func (m *mockRegistry) GetManufacturers() ([]registry.Manufacturer, error) { return m.manufacturers, nil }

func (m *mockRegistry) GetInterface(deviceID int, name string) (*registry.Interface, error) {
	return m.interfaces[fmt.Sprintf("%d/%s", deviceID, name)], nil
}

func (m *mockRegistry) UpdateInterface(id int, patch map[string]interface{}) error {
	m.callLog = append(m.callLog, fmt.Sprintf("update_interface %d", id))
	return nil
}

func (m *mockRegistry) CreateCable(payload registry.CableCreate) (*registry.Cable, error) {
	m.cables = append(m.cables, payload)
	return &registry.Cable{ID: len(m.cables)}, nil
}

func (m *mockRegistry) CreateJournalEntry(entry registry.JournalEntryCreate) error {
	m.callLog = append(m.callLog, "create_journal_entry")
	m.journalEntries = append(m.journalEntries, entry)
	return nil
}
