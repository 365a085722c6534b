// Package registry is the gateway to the remote inventory registry REST
// API. It is the only place the upstream is spoken to; every operation
// either returns data or fails with a *RegistryError carrying the upstream
// message. No retries are performed.
package registry

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dc_inventory_server/config"
	"dc_inventory_server/pkg/logger"
)

// Client talks to the registry over HTTPS with a static token. The
// upstream runs a self-signed certificate, so verification is disabled;
// callers must not assume transport integrity.
type Client struct {
	httpClient *http.Client
	baseURL    string
	jiraURL    string
	token      string
}

// NewClient creates a registry client from explicit configuration
func NewClient(cfg *config.Config) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   60 * time.Second,
		},
		baseURL: strings.TrimRight(cfg.RegistryURL, "/"),
		jiraURL: strings.TrimRight(cfg.JiraURL, "/"),
		token:   cfg.RegistryToken,
	}
}

// BaseURL returns the registry base URL, used for building object links
func (c *Client) BaseURL() string {
	return c.baseURL
}

// JiraURL returns the ticket-system base URL
func (c *Client) JiraURL() string {
	return c.jiraURL
}

// doURL performs one request against an absolute URL and decodes the JSON
// response into out when given
func (c *Client) doURL(op, method, u string, body interface{}, out interface{}) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &RegistryError{Op: op, Message: "encode request: " + err.Error()}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return &RegistryError{Op: op, Message: err.Error()}
	}

	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug().Str("op", op).Str("method", method).Str("url", u).Msg("registry request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RegistryError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RegistryError{Op: op, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RegistryError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(data)),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &RegistryError{Op: op, Message: "decode response: " + err.Error()}
		}
	}

	return nil
}

func (c *Client) do(op, method, path string, query url.Values, body interface{}, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.doURL(op, method, u, body, out)
}

// listAll fetches a paginated list endpoint and follows next links until
// the result set is complete. An empty result is an empty slice, never an
// error.
func listAll[T any](c *Client, op, path string, query url.Values) ([]T, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	all := []T{}

	for u != "" {
		var envelope struct {
			Next    *string         `json:"next"`
			Results json.RawMessage `json:"results"`
		}

		if err := c.doURL(op, http.MethodGet, u, nil, &envelope); err != nil {
			return nil, err
		}

		if len(envelope.Results) > 0 {
			var page []T
			if err := json.Unmarshal(envelope.Results, &page); err != nil {
				return nil, &RegistryError{Op: op, Message: "decode page: " + err.Error()}
			}
			all = append(all, page...)
		}

		if envelope.Next != nil && *envelope.Next != "" {
			u = *envelope.Next
		} else {
			u = ""
		}
	}

	return all, nil
}

// getOne fetches a single object by path. A 404 means "absent" and comes
// back as (nil, nil), not as an error.
func getOne[T any](c *Client, op, path string) (*T, error) {
	var out T

	if err := c.do(op, http.MethodGet, path, nil, nil, &out); err != nil {
		var registryErr *RegistryError
		if errors.As(err, &registryErr) && registryErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &out, nil
}

// GetSites returns the data-center sites (tagged "dc")
func (c *Client) GetSites() ([]Site, error) {
	return listAll[Site](c, "get_sites", "/api/dcim/sites/", url.Values{"tag": {"dc"}})
}

// GetLocations returns every storage location
func (c *Client) GetLocations() ([]Location, error) {
	return listAll[Location](c, "get_locations", "/api/dcim/locations/", nil)
}

// GetAssets lists inventory assets matching the given filters
func (c *Client) GetAssets(filters url.Values) ([]Asset, error) {
	return listAll[Asset](c, "get_assets", "/api/plugins/inventory/assets/", filters)
}

// GetAssetByID returns one asset, or (nil, nil) when it does not exist
func (c *Client) GetAssetByID(id int) (*Asset, error) {
	return getOne[Asset](c, "get_asset", fmt.Sprintf("/api/plugins/inventory/assets/%d/", id))
}

// GetAssetTypes returns the inventory item type catalog
func (c *Client) GetAssetTypes() ([]InventoryItemType, error) {
	return listAll[InventoryItemType](c, "get_asset_types", "/api/plugins/inventory/inventory-item-types/", nil)
}

// CreateAssets bulk-creates assets and returns the created records
func (c *Client) CreateAssets(records []AssetCreate) ([]Asset, error) {
	var created []Asset
	if err := c.do("create_assets", http.MethodPost, "/api/plugins/inventory/assets/", nil, records, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateAsset patches a single asset
func (c *Client) UpdateAsset(id int, patch map[string]interface{}) error {
	return c.do("update_asset", http.MethodPatch, fmt.Sprintf("/api/plugins/inventory/assets/%d/", id), nil, patch, nil)
}

// DeleteAsset removes an asset from the registry
func (c *Client) DeleteAsset(id int) error {
	return c.do("delete_asset", http.MethodDelete, fmt.Sprintf("/api/plugins/inventory/assets/%d/", id), nil, nil, nil)
}

// GetDevice returns one device, or (nil, nil) when it does not exist
func (c *Client) GetDevice(id int) (*Device, error) {
	return getOne[Device](c, "get_device", fmt.Sprintf("/api/dcim/devices/%d/", id))
}

// GetDevices returns every device
func (c *Client) GetDevices() ([]Device, error) {
	return listAll[Device](c, "get_devices", "/api/dcim/devices/", nil)
}

// FindDeviceByAssetTag looks a device up by its asset tag, (nil, nil)
// when absent
func (c *Client) FindDeviceByAssetTag(assetTag string) (*Device, error) {
	devices, err := listAll[Device](c, "find_device", "/api/dcim/devices/", url.Values{"asset_tag": {assetTag}})
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, nil
	}
	return &devices[0], nil
}

// FindDeviceByName looks a device up by name, (nil, nil) when absent
func (c *Client) FindDeviceByName(name string) (*Device, error) {
	devices, err := listAll[Device](c, "find_device", "/api/dcim/devices/", url.Values{"name": {name}})
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, nil
	}
	return &devices[0], nil
}

// CreateDevices bulk-creates devices and returns the created records
func (c *Client) CreateDevices(records []DeviceCreate) ([]Device, error) {
	var created []Device
	if err := c.do("create_devices", http.MethodPost, "/api/dcim/devices/", nil, records, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateDevice patches a single device
func (c *Client) UpdateDevice(id int, patch map[string]interface{}) error {
	return c.do("update_device", http.MethodPatch, fmt.Sprintf("/api/dcim/devices/%d/", id), nil, patch, nil)
}

// DeleteDevice removes a device from the registry
func (c *Client) DeleteDevice(id int) error {
	return c.do("delete_device", http.MethodDelete, fmt.Sprintf("/api/dcim/devices/%d/", id), nil, nil, nil)
}

// GetDeviceRoles returns the device role catalog
func (c *Client) GetDeviceRoles() ([]DeviceRole, error) {
	return listAll[DeviceRole](c, "get_device_roles", "/api/dcim/device-roles/", nil)
}

// GetDeviceTypes returns the device type catalog
func (c *Client) GetDeviceTypes() ([]DeviceType, error) {
	return listAll[DeviceType](c, "get_device_types", "/api/dcim/device-types/", nil)
}

// GetManufacturers returns the manufacturer catalog
func (c *Client) GetManufacturers() ([]Manufacturer, error) {
	return listAll[Manufacturer](c, "get_manufacturers", "/api/dcim/manufacturers/", nil)
}

// GetInterface looks up a named interface on a device, (nil, nil) when
// absent
func (c *Client) GetInterface(deviceID int, name string) (*Interface, error) {
	query := url.Values{
		"device_id": {fmt.Sprintf("%d", deviceID)},
		"name":      {name},
	}

	interfaces, err := listAll[Interface](c, "get_interface", "/api/dcim/interfaces/", query)
	if err != nil {
		return nil, err
	}
	if len(interfaces) == 0 {
		return nil, nil
	}
	return &interfaces[0], nil
}

// UpdateInterface patches a single interface
func (c *Client) UpdateInterface(id int, patch map[string]interface{}) error {
	return c.do("update_interface", http.MethodPatch, fmt.Sprintf("/api/dcim/interfaces/%d/", id), nil, patch, nil)
}

// CreateCable creates one cable between two interface terminations
func (c *Client) CreateCable(payload CableCreate) (*Cable, error) {
	var created Cable
	if err := c.do("create_cable", http.MethodPost, "/api/dcim/cables/", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateJournalEntry attaches an audit note to a registry object
func (c *Client) CreateJournalEntry(entry JournalEntryCreate) error {
	return c.do("create_journal_entry", http.MethodPost, "/api/extras/journal-entries/", nil, entry, nil)
}
