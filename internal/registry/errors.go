package registry

import "fmt"

// RegistryError is any upstream failure: network, auth, remote validation.
// The upstream message is carried verbatim; nothing is retried or
// translated on the way up.
type RegistryError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RegistryError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("registry %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("registry %s: %s", e.Op, e.Message)
}
