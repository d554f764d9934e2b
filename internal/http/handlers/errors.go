package handlers

import (
	"errors"

	"homify/internal/gateway"
)

// backendMessage pulls the backend's human-readable message out of an error,
// or empty when there is none worth showing.
func backendMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
