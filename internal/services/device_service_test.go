package services

import (
	"testing"

	"dc_inventory_server/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteDeviceByAssetTag(t *testing.T) {
	mock := newMockRegistry()
	mock.devices[7] = &registry.Device{ID: 7, AssetTag: "OKKOS0007"}
	service := NewDeviceService(mock)

	require.NoError(t, service.DeleteDevice("OKKOS0007"))
	assert.Equal(t, []int{7}, mock.deletedDevices)
}

func TestDeleteDeviceNotFound(t *testing.T) {
	mock := newMockRegistry()
	service := NewDeviceService(mock)

	err := service.DeleteDevice("OKKOS0404")

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestGetDeviceTypesFlattensManufacturer(t *testing.T) {
	mock := newMockRegistry()
	mock.deviceTypes = []registry.DeviceType{
		{ID: 1, Model: "R640", Manufacturer: registry.ManufacturerRef{ID: 3, Name: "Dell"}},
	}
	service := NewDeviceService(mock)

	types, err := service.GetDeviceTypes()
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, DeviceTypeInfo{ID: 1, Model: "R640", Manufacturer: "Dell"}, types[0])
}

func TestGetManufacturers(t *testing.T) {
	mock := newMockRegistry()
	mock.manufacturers = []registry.Manufacturer{{ID: 1, Name: "Dell"}, {ID: 2, Name: "HPE"}}
	service := NewDeviceService(mock)

	names, err := service.GetManufacturers()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dell", "HPE"}, names)
}

func TestCreateCables(t *testing.T) {
	mock := newMockRegistry()
	mock.devices[1] = &registry.Device{ID: 1, Name: "SW1"}
	mock.devices[2] = &registry.Device{ID: 2, Name: "SW2"}
	mock.interfaces["1/Eth0/1"] = &registry.Interface{ID: 101, Name: "Eth0/1"}
	mock.interfaces["2/Eth0/2"] = &registry.Interface{ID: 102, Name: "Eth0/2"}
	service := NewDeviceService(mock)

	specs := []CableSpec{
		{DevA: "SW1", PortA: "Eth0/1", DevB: "SW2", PortB: "Eth0/2", IntType: "1000base-t"},
		{DevA: "SW1", PortA: "Eth0/9", DevB: "SW2", PortB: "Eth0/2", IntType: "1000base-t"},
	}

	report, err := service.CreateCables(specs)
	require.NoError(t, err)

	require.Len(t, report.Created, 1)
	assert.Equal(t, "SW1", report.Created[0].DeviceA)
	assert.Equal(t, "1000base-t", report.Created[0].IntType)

	// The cable with a missing interface is recorded, not fatal
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Error, "Eth0/9")

	require.Len(t, mock.cables, 1)
	assert.Equal(t, 101, mock.cables[0].ATerminations[0].ObjectID)
	assert.Equal(t, 102, mock.cables[0].BTerminations[0].ObjectID)
}

func TestCreateCablesEmpty(t *testing.T) {
	service := NewDeviceService(newMockRegistry())

	_, err := service.CreateCables(nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}
