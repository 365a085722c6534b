package registry

// Raw records as the inventory registry returns them. Only the fields this
// service reads are mapped; everything else is dropped on decode.

// StatusField is the registry's choice-field shape
type StatusField struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TypeRef references an inventory item type (model/manufacturer)
type TypeRef struct {
	ID    int    `json:"id"`
	Model string `json:"model"`
}

// LocationRef references a storage location
type LocationRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SiteRef references a site from a nested relation
type SiteRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Asset is an inventory item (component) tracked in the registry
type Asset struct {
	ID                int                    `json:"id"`
	Display           string                 `json:"display"`
	Serial            string                 `json:"serial"`
	Status            *StatusField           `json:"status"`
	InventoryItemType *TypeRef               `json:"inventoryitem_type"`
	StorageLocation   *LocationRef           `json:"storage_location"`
	CustomFields      map[string]interface{} `json:"custom_fields"`
}

// AssetCreate is the payload for bulk asset creation
type AssetCreate struct {
	InventoryItemType int                    `json:"inventoryitem_type"`
	Serial            string                 `json:"serial,omitempty"`
	Status            string                 `json:"status"`
	StorageLocation   int                    `json:"storage_location"`
	CustomFields      map[string]interface{} `json:"custom_fields,omitempty"`
}

// Device is a complete piece of installed equipment
type Device struct {
	ID           int                    `json:"id"`
	Name         string                 `json:"name"`
	AssetTag     string                 `json:"asset_tag"`
	Serial       string                 `json:"serial"`
	Status       *StatusField           `json:"status"`
	CustomFields map[string]interface{} `json:"custom_fields"`
}

// DeviceCreate is the payload for bulk device creation
type DeviceCreate struct {
	Role         int                    `json:"role"`
	DeviceType   int                    `json:"device_type"`
	Status       string                 `json:"status"`
	Site         int                    `json:"site"`
	Location     int                    `json:"location"`
	Name         string                 `json:"name,omitempty"`
	AssetTag     string                 `json:"asset_tag"`
	Serial       string                 `json:"serial,omitempty"`
	CustomFields map[string]interface{} `json:"custom_fields,omitempty"`
}

// Site is a top-level facility
type Site struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location belongs to exactly one site
type Location struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Site SiteRef `json:"site"`
}

// InventoryItemType is an asset model catalog entry
type InventoryItemType struct {
	ID    int    `json:"id"`
	Model string `json:"model"`
}

// DeviceRole is a device role catalog entry
type DeviceRole struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ManufacturerRef references a manufacturer from a nested relation
type ManufacturerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DeviceType is a device model catalog entry
type DeviceType struct {
	ID           int             `json:"id"`
	Model        string          `json:"model"`
	Manufacturer ManufacturerRef `json:"manufacturer"`
}

// Manufacturer is a manufacturer catalog entry
type Manufacturer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Interface is a named device network interface
type Interface struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CableTermination names one end of a cable
type CableTermination struct {
	ObjectType string `json:"object_type"`
	ObjectID   int    `json:"object_id"`
}

// CableCreate is the payload for cable creation; cables are written and
// never read back
type CableCreate struct {
	ATerminations []CableTermination `json:"a_terminations"`
	BTerminations []CableTermination `json:"b_terminations"`
}

// Cable is the created termination relation
type Cable struct {
	ID int `json:"id"`
}

// JournalEntryCreate is an immutable audit note attached to a registry
// object
type JournalEntryCreate struct {
	AssignedObjectType string `json:"assigned_object_type"`
	AssignedObjectID   int    `json:"assigned_object_id"`
	Kind               string `json:"kind"`
	Comments           string `json:"comments"`
}
