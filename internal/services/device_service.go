package services

import (
	"fmt"

	"dc_inventory_server/internal/registry"
	"dc_inventory_server/pkg/logger"
)

// DeviceService exposes the device-side registry reads and writes:
// device listing and bulk creation, catalog reads and cable creation.
type DeviceService struct {
	client RegistryClient
}

// NewDeviceService creates a device service on top of the registry gateway
func NewDeviceService(client RegistryClient) *DeviceService {
	return &DeviceService{client: client}
}

// SimplifiedDevice is the flat device record the frontend consumes
type SimplifiedDevice struct {
	URL          string                 `json:"url"`
	ID           int                    `json:"id"`
	Name         string                 `json:"name"`
	AssetTag     string                 `json:"asset_tag"`
	Serial       string                 `json:"serial"`
	CustomFields map[string]interface{} `json:"custom_fields"`
}

// DeviceTypeInfo is one device type catalog entry with its manufacturer
type DeviceTypeInfo struct {
	ID           int    `json:"id"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
}

func (s *DeviceService) simplifyDevice(device *registry.Device) SimplifiedDevice {
	return SimplifiedDevice{
		URL:          fmt.Sprintf("%s/dcim/devices/%d", s.client.BaseURL(), device.ID),
		ID:           device.ID,
		Name:         device.Name,
		AssetTag:     device.AssetTag,
		Serial:       device.Serial,
		CustomFields: device.CustomFields,
	}
}

// GetDevices returns every device in simplified form
func (s *DeviceService) GetDevices() ([]SimplifiedDevice, error) {
	devices, err := s.client.GetDevices()
	if err != nil {
		return nil, err
	}

	simplified := make([]SimplifiedDevice, 0, len(devices))
	for i := range devices {
		simplified = append(simplified, s.simplifyDevice(&devices[i]))
	}
	return simplified, nil
}

// CreateDevices bulk-creates devices and returns them simplified
func (s *DeviceService) CreateDevices(records []registry.DeviceCreate) ([]SimplifiedDevice, error) {
	if len(records) == 0 {
		return nil, &ValidationError{Message: "устройства не переданы"}
	}

	created, err := s.client.CreateDevices(records)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("count", len(created)).Msg("devices created")

	simplified := make([]SimplifiedDevice, 0, len(created))
	for i := range created {
		simplified = append(simplified, s.simplifyDevice(&created[i]))
	}
	return simplified, nil
}

// DeleteDevice removes the device with the given asset tag
func (s *DeviceService) DeleteDevice(assetTag string) error {
	device, err := s.client.FindDeviceByAssetTag(assetTag)
	if err != nil {
		return err
	}
	if device == nil {
		return &NotFoundError{Message: fmt.Sprintf("Устройство с asset_tag %s не найдено", assetTag)}
	}

	return s.client.DeleteDevice(device.ID)
}

// GetDeviceRoles returns the device role catalog
func (s *DeviceService) GetDeviceRoles() ([]registry.DeviceRole, error) {
	return s.client.GetDeviceRoles()
}

// GetDeviceTypes returns the device type catalog with manufacturer names
func (s *DeviceService) GetDeviceTypes() ([]DeviceTypeInfo, error) {
	types, err := s.client.GetDeviceTypes()
	if err != nil {
		return nil, err
	}

	infos := make([]DeviceTypeInfo, 0, len(types))
	for _, deviceType := range types {
		infos = append(infos, DeviceTypeInfo{
			ID:           deviceType.ID,
			Model:        deviceType.Model,
			Manufacturer: deviceType.Manufacturer.Name,
		})
	}
	return infos, nil
}

// GetManufacturers returns the manufacturer names
func (s *DeviceService) GetManufacturers() ([]string, error) {
	manufacturers, err := s.client.GetManufacturers()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(manufacturers))
	for _, manufacturer := range manufacturers {
		names = append(names, manufacturer.Name)
	}
	return names, nil
}

// CableSpec names a cable to create between two device interfaces
type CableSpec struct {
	DevA    string `json:"dev_a"`
	PortA   string `json:"port_a"`
	DevB    string `json:"dev_b"`
	PortB   string `json:"port_b"`
	IntType string `json:"int_type"`
}

// CableResult is one successfully created cable
type CableResult struct {
	ID      int    `json:"id"`
	DeviceA string `json:"device_a"`
	PortA   string `json:"port_a"`
	DeviceB string `json:"device_b"`
	PortB   string `json:"port_b"`
	IntType string `json:"int_type"`
}

// CableError records why one cable spec could not be created
type CableError struct {
	Cable CableSpec `json:"cable"`
	Error string    `json:"error"`
}

// CableReport is the outcome of a cable creation batch
type CableReport struct {
	Created []CableResult `json:"created"`
	Errors  []CableError  `json:"errors"`
}

func (s *DeviceService) resolveInterface(deviceName, portName string) (*registry.Interface, error) {
	device, err := s.client.FindDeviceByName(deviceName)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf("Устройство не найдено: %s", deviceName)}
	}

	iface, err := s.client.GetInterface(device.ID, portName)
	if err != nil {
		return nil, err
	}
	if iface == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf("Интерфейс не найден: %s:%s", deviceName, portName)}
	}

	return iface, nil
}

// CreateCables creates cables between named device interfaces, setting
// both interface types on the way. Cables are fire-and-forget: created,
// never read back. Failures are collected per cable, not aborted on.
func (s *DeviceService) CreateCables(specs []CableSpec) (*CableReport, error) {
	if len(specs) == 0 {
		return nil, &ValidationError{Message: "кабели не переданы"}
	}

	report := &CableReport{Created: []CableResult{}, Errors: []CableError{}}

	for _, spec := range specs {
		interfaceA, err := s.resolveInterface(spec.DevA, spec.PortA)
		if err != nil {
			report.Errors = append(report.Errors, CableError{Cable: spec, Error: err.Error()})
			continue
		}

		interfaceB, err := s.resolveInterface(spec.DevB, spec.PortB)
		if err != nil {
			report.Errors = append(report.Errors, CableError{Cable: spec, Error: err.Error()})
			continue
		}

		typePatch := map[string]interface{}{"type": spec.IntType}
		if err := s.client.UpdateInterface(interfaceA.ID, typePatch); err != nil {
			report.Errors = append(report.Errors, CableError{Cable: spec, Error: err.Error()})
			continue
		}
		if err := s.client.UpdateInterface(interfaceB.ID, typePatch); err != nil {
			report.Errors = append(report.Errors, CableError{Cable: spec, Error: err.Error()})
			continue
		}

		cable, err := s.client.CreateCable(registry.CableCreate{
			ATerminations: []registry.CableTermination{{ObjectType: "dcim.interface", ObjectID: interfaceA.ID}},
			BTerminations: []registry.CableTermination{{ObjectType: "dcim.interface", ObjectID: interfaceB.ID}},
		})
		if err != nil {
			report.Errors = append(report.Errors, CableError{Cable: spec, Error: err.Error()})
			continue
		}

		report.Created = append(report.Created, CableResult{
			ID:      cable.ID,
			DeviceA: spec.DevA,
			PortA:   spec.PortA,
			DeviceB: spec.DevB,
			PortB:   spec.PortB,
			IntType: spec.IntType,
		})
	}

	return report, nil
}
