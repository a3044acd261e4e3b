package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/docscan/internal/config"
)

func TestLoad_MissingOCRKeyFails(t *testing.T) {
	t.Setenv("OCR_API_KEY", "")
	_, err := config.Load(".env.nonexistent")
	assert.Error(t, err)
}

func TestLoad_DefaultsApplied(t *testing.T) {
	t.Setenv("OCR_API_KEY", "sk-proj-abcdefghijklmnopqrstuvwxyz")
	cfg, err := config.Load(".env.nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "remote", cfg.ExtractorKind)
}

func TestToFactoryConfig(t *testing.T) {
	cfg := config.Config{
		OCRAPIKey:       "sk-proj-abcdefghijklmnopqrstuvwxyz",
		OCRModel:        "vision-v1",
		ExtractorKind:   "edge",
		EdgeAIBinding:   "http://edge.local",
		ExtractionModel: "extract-v1",
	}
	factoryCfg := cfg.ToFactoryConfig()

	assert.Equal(t, "sk-proj-abcdefghijklmnopqrstuvwxyz", factoryCfg.OCRAPIKey)
	assert.Equal(t, "http://edge.local", factoryCfg.EdgeBinding)
}
