package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/docscan/internal/schema"
)

func TestValidateAPIKey_Empty(t *testing.T) {
	assert.Error(t, schema.ValidateAPIKey("ocrApiKey", ""))
}

func TestValidateAPIKey_TooShort(t *testing.T) {
	assert.Error(t, schema.ValidateAPIKey("ocrApiKey", "sk-123"))
}

func TestValidateAPIKey_Placeholder(t *testing.T) {
	assert.Error(t, schema.ValidateAPIKey("ocrApiKey", "your-api-key"))
}

func TestValidateAPIKey_Valid(t *testing.T) {
	assert.NoError(t, schema.ValidateAPIKey("ocrApiKey", "sk-proj-abcdefghijklmnopqrstuvwxyz"))
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "sk-proj-...", schema.MaskAPIKey("sk-proj-abcdefghijklmnop"))
	assert.Equal(t, "****", schema.MaskAPIKey("abcd"))
}
