package httpapi

import "errors"

var (
	// ErrInvalidConfig indicates an unknown CORS mode or error shape.
	ErrInvalidConfig = errors.New("httpapi.errors.invalid_config")
	// ErrInvalidBody indicates a request body that is not a JSON object, a
	// JSON-encoded string containing one, or empty.
	ErrInvalidBody = errors.New("httpapi.errors.invalid_body")
)
