package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/schema"
)

func TestJSONSchema_Check(t *testing.T) {
	raw, err := schema.JSONSchema(model.ScanTypeCheck)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "check", doc["title"])
}

func TestJSONSchema_Receipt(t *testing.T) {
	raw, err := schema.JSONSchema(model.ScanTypeReceipt)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "confidence")
}

func TestJSONSchema_Unsupported(t *testing.T) {
	_, err := schema.JSONSchema(model.ScanType("bogus"))
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	check, err := schema.New(model.ScanTypeCheck)
	require.NoError(t, err)
	_, ok := check.(*model.Check)
	assert.True(t, ok)

	receipt, err := schema.New(model.ScanTypeReceipt)
	require.NoError(t, err)
	_, ok = receipt.(*model.Receipt)
	assert.True(t, ok)
}
