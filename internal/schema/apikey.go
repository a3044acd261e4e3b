package schema

import (
	"strings"

	docmodel "github.com/rezonia/docscan/internal/model"
)

// placeholderAPIKeys catches the values people leave behind when they copy
// an .env.example without filling it in.
var placeholderAPIKeys = []string{
	"your-api-key",
	"your_api_key",
	"sk-xxx",
	"sk-xxxxx",
	"changeme",
	"replace-me",
}

// MinAPIKeyLength is the shortest credential this service accepts; real
// provider keys are all well over this, so it exists to catch empty or
// truncated configuration rather than to authenticate anything.
const MinAPIKeyLength = 16

// ValidateAPIKey rejects empty, too-short, or placeholder-looking API
// keys at configuration time, before any provider call is attempted.
func ValidateAPIKey(field, key string) error {
	if key == "" {
		return docmodel.NewConfigError(field, "API key is not set", nil)
	}
	if len(key) < MinAPIKeyLength {
		return docmodel.NewConfigError(field, "API key is implausibly short", nil)
	}
	lower := strings.ToLower(key)
	for _, placeholder := range placeholderAPIKeys {
		if lower == placeholder {
			return docmodel.NewConfigError(field, "API key looks like an unfilled placeholder", nil)
		}
	}
	return nil
}

// MaskAPIKey renders a key safe for logs: its first few characters
// followed by an ellipsis, matching the masking convention used
// elsewhere in this codebase for any credential shown to an operator.
func MaskAPIKey(key string) string {
	const visible = 8
	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}
	return key[:visible] + "..."
}
