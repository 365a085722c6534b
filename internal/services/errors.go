package services

// Error taxonomy of the lifecycle services. Each kind carries a
// human-readable message that propagates verbatim to the caller; the HTTP
// layer is the only place they are translated into status codes.

// ValidationError means malformed or incomplete caller input; it is
// raised before any upstream call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError means a referenced device, asset or type does not exist
// upstream.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError means an asset is already in a terminal state for the
// requested operation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
