package services

import (
	"strings"
	"testing"

	"dc_inventory_server/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRegistryURL = "https://netbox.local"
	testJiraURL     = "https://jira.local/browse"
)

func TestBuildRepairNote(t *testing.T) {
	device := &registry.Device{ID: 7, Name: "srv-01", AssetTag: "DEV-1"}
	assets := []*registry.Asset{
		{
			ID:                11,
			Serial:            "SN1",
			InventoryItemType: &registry.TypeRef{ID: 3, Model: "PSU"},
			CustomFields:      map[string]interface{}{"DeliveryTask": "DC-10"},
		},
	}

	note := BuildRepairNote(device, assets, "DC-20", testRegistryURL, testJiraURL)

	assert.Contains(t, note, "**🔧 Ремонт из ЗИП**")
	assert.Contains(t, note, "[DC-20](https://jira.local/browse/DC-20)")
	assert.Contains(t, note, "[DEV-1](https://netbox.local/dcim/devices/7/)")
	assert.Contains(t, note, "[PSU](https://netbox.local/plugins/inventory/assets/11/)")
	assert.Contains(t, note, "s/n: SN1")
	assert.Contains(t, note, "[DC-10](https://jira.local/browse/DC-10)")
}

func TestBuildRepairNoteOneBulletPerAsset(t *testing.T) {
	device := &registry.Device{ID: 1, AssetTag: "DEV-2"}
	assets := []*registry.Asset{
		{ID: 1, Serial: "A", InventoryItemType: &registry.TypeRef{ID: 1, Model: "RAM"}, CustomFields: map[string]interface{}{"DeliveryTask": "DC-1"}},
		{ID: 2, Serial: "B", InventoryItemType: &registry.TypeRef{ID: 1, Model: "RAM"}, CustomFields: map[string]interface{}{"DeliveryTask": "DC-1"}},
	}

	note := BuildRepairNote(device, assets, "DC-5", testRegistryURL, testJiraURL)

	assert.Equal(t, 2, strings.Count(note, "\n- "))
}

func TestBuildModernizationNoteGroupsByModelAndTask(t *testing.T) {
	device := &registry.Device{ID: 2, AssetTag: "DEV-3"}
	assets := []*registry.Asset{
		{ID: 1, InventoryItemType: &registry.TypeRef{ID: 9, Model: "RAM"}, CustomFields: map[string]interface{}{"DeliveryTask": "DC-1"}},
		{ID: 2, InventoryItemType: &registry.TypeRef{ID: 9, Model: "RAM"}, CustomFields: map[string]interface{}{"DeliveryTask": "DC-1"}},
		{ID: 3, InventoryItemType: &registry.TypeRef{ID: 9, Model: "RAM"}, CustomFields: map[string]interface{}{"DeliveryTask": "DC-2"}},
	}

	note := BuildModernizationNote(device, assets, "DC-99", testRegistryURL, testJiraURL)

	assert.Contains(t, note, "**⚙️ Модернизация оборудования**")
	assert.Contains(t, note, "2 шт. [RAM]")
	assert.Contains(t, note, "1 шт. [RAM]")

	// First-seen group order: DC-1 before DC-2
	first := strings.Index(note, "2 шт.")
	second := strings.Index(note, "1 шт.")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestBuildModernizationNoteDefaultsMissingDeliveryTask(t *testing.T) {
	device := &registry.Device{ID: 2, AssetTag: "DEV-3"}
	assets := []*registry.Asset{
		{ID: 1, InventoryItemType: &registry.TypeRef{ID: 4, Model: "SSD"}, CustomFields: map[string]interface{}{}},
	}

	note := BuildModernizationNote(device, assets, "DC-7", testRegistryURL, testJiraURL)

	assert.Contains(t, note, "1 шт. [SSD]")
	assert.Contains(t, note, "Без задачи")
}

func TestNoteBuildersArePure(t *testing.T) {
	device := &registry.Device{ID: 3, AssetTag: "DEV-4"}
	assets := []*registry.Asset{
		{ID: 5, Serial: "X", InventoryItemType: &registry.TypeRef{ID: 2, Model: "NIC"}, CustomFields: map[string]interface{}{"DeliveryTask": "DC-3"}},
	}

	first := BuildRepairNote(device, assets, "DC-8", testRegistryURL, testJiraURL)
	second := BuildRepairNote(device, assets, "DC-8", testRegistryURL, testJiraURL)

	assert.Equal(t, first, second)
	assert.Equal(t, "X", assets[0].Serial)
	assert.Equal(t, "DC-3", assets[0].CustomFields["DeliveryTask"])
}
