package insight

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// The error taxonomy of the pipeline. Only the user-actionable failures are
// typed: both mean "fix your credentials or model choice and try again", and
// callers react to them by prompting for re-authentication. Everything else
// (network, timeout, quota, unknown) is not actionable beyond retrying, and
// Generate degrades it to a display string instead of returning it.

// ErrCredentialMissing means no API key is configured anywhere.
var ErrCredentialMissing = errors.New("no API key configured")

// ErrModelNotFound means the remote service rejected the model identifier.
var ErrModelNotFound = errors.New("model not found")

// classify maps a raw generation error to a typed pipeline error, or nil if
// the error is generic and should be swallowed into a display string.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusNotFound || apiErr.Status == "NOT_FOUND" {
			return fmt.Errorf("%w: %s", ErrModelNotFound, apiErr.Message)
		}
		return nil
	}
	// Older transports report the rejection as text only.
	if strings.Contains(err.Error(), "NOT_FOUND") {
		return fmt.Errorf("%w: %v", ErrModelNotFound, err)
	}
	return nil
}
