package services

import (
	"fmt"
	"strings"

	"dc_inventory_server/internal/registry"
)

// Journal note builders. Both are pure: they render a markdown audit note
// from the pre-mutation device/asset state and touch nothing.

const noDeliveryTask = "Без задачи"

// deliveryTask extracts the DeliveryTask custom field as text
func deliveryTask(asset *registry.Asset) string {
	if value, ok := asset.CustomFields["DeliveryTask"].(string); ok {
		return value
	}
	return ""
}

func assetModel(asset *registry.Asset) string {
	if asset.InventoryItemType != nil {
		return asset.InventoryItemType.Model
	}
	return "N/A"
}

// BuildRepairNote renders the journal note for a repair: one bullet per
// installed asset linking its type page, serial and originating delivery
// ticket.
func BuildRepairNote(device *registry.Device, assets []*registry.Asset, jiraTask, registryURL, jiraURL string) string {
	deviceLink := fmt.Sprintf("%s/dcim/devices/%d/", registryURL, device.ID)

	lines := make([]string, 0, len(assets))
	for _, asset := range assets {
		assetURL := fmt.Sprintf("%s/plugins/inventory/assets/%d/", registryURL, asset.ID)
		task := deliveryTask(asset)
		lines = append(lines, fmt.Sprintf(
			"- [%s](%s) (s/n: %s, поставка: [%s](%s/%s))",
			assetModel(asset), assetURL, asset.Serial, task, jiraURL, task,
		))
	}

	return fmt.Sprintf(
		"**🔧 Ремонт из ЗИП**\n\n"+
			"По задаче [%s](%s/%s) в устройство [%s](%s) установлены комплектующие:\n\n%s",
		jiraTask, jiraURL, jiraTask, device.AssetTag, deviceLink,
		strings.Join(lines, "\n"),
	)
}

// BuildModernizationNote renders the journal note for a modernization.
// Assets are grouped by (model, delivery task) and rendered as one bullet
// per group with a count, in first-seen order.
func BuildModernizationNote(device *registry.Device, assets []*registry.Asset, jiraTask, registryURL, jiraURL string) string {
	deviceLink := fmt.Sprintf("%s/dcim/devices/%d/", registryURL, device.ID)

	type groupKey struct {
		model    string
		delivery string
	}

	counts := map[groupKey]int{}
	typeIDs := map[string]int{}
	order := []groupKey{}

	for _, asset := range assets {
		delivery := deliveryTask(asset)
		if delivery == "" {
			delivery = noDeliveryTask
		}

		key := groupKey{model: assetModel(asset), delivery: delivery}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
			if asset.InventoryItemType != nil {
				typeIDs[key.model] = asset.InventoryItemType.ID
			}
		}
		counts[key]++
	}

	lines := make([]string, 0, len(order))
	for _, key := range order {
		typeURL := fmt.Sprintf("%s/plugins/inventory/inventory-item-types/%d/", registryURL, typeIDs[key.model])
		deliveryURL := fmt.Sprintf("%s/%s", jiraURL, key.delivery)
		lines = append(lines, fmt.Sprintf(
			"- %d шт. [%s](%s) (доставка: [%s](%s))",
			counts[key], key.model, typeURL, key.delivery, deliveryURL,
		))
	}

	return fmt.Sprintf(
		"**⚙️ Модернизация оборудования**\n\n"+
			"По задаче [%s](%s/%s) в устройство [%s](%s) установлены комплектующие:\n\n%s",
		jiraTask, jiraURL, jiraTask, device.AssetTag, deviceLink,
		strings.Join(lines, "\n"),
	)
}
