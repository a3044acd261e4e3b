// Package config loads the service's environment-supplied configuration
// (spec.md §6) via viper, with .env support for local development.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rezonia/docscan/internal/factory"
	"github.com/rezonia/docscan/internal/model"
)

// Environment gates debug logging.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Config is the full set of environment variables this service reads.
type Config struct {
	Environment      string `mapstructure:"ENVIRONMENT"`
	Debug            bool   `mapstructure:"DEBUG"`
	HTTPAddr         string `mapstructure:"HTTP_ADDR"`
	OCRAPIKey        string `mapstructure:"OCR_API_KEY"`
	OCRBaseURL       string `mapstructure:"OCR_BASE_URL"`
	OCRModel         string `mapstructure:"OCR_MODEL"`
	ExtractorKind    string `mapstructure:"EXTRACTOR_KIND"`
	ExtractorAPIKey  string `mapstructure:"EXTRACTOR_API_KEY"`
	ExtractorBaseURL string `mapstructure:"EXTRACTOR_BASE_URL"`
	ExtractionModel  string `mapstructure:"EXTRACTION_MODEL"`
	EdgeAIBinding    string `mapstructure:"EDGE_AI_BINDING"`
	MaxDocumentBytes int    `mapstructure:"MAX_DOCUMENT_BYTES"`
}

// Load reads configuration from a .env file at path (if present) and
// from the environment, applying deployment-specific defaults. A
// missing .env file is not an error; environment variables alone are a
// valid configuration.
func Load(path string) (Config, error) {
	_ = godotenv.Load(path)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("ENVIRONMENT", string(EnvironmentDevelopment))
	v.SetDefault("DEBUG", false)
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("EXTRACTOR_KIND", string(factory.ExtractorKindRemote))
	v.SetDefault("MAX_DOCUMENT_BYTES", 20*1024*1024)
	for _, key := range []string{
		"OCR_API_KEY", "OCR_BASE_URL", "OCR_MODEL",
		"EXTRACTOR_API_KEY", "EXTRACTOR_BASE_URL", "EXTRACTION_MODEL",
		"EDGE_AI_BINDING",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.OCRAPIKey == "" {
		return Config{}, model.NewConfigError("OCR_API_KEY", "required environment variable is not set", nil)
	}

	return cfg, nil
}

// ToFactoryConfig translates environment configuration into the
// factory's Config shape, per spec.md §4.7.
func (c Config) ToFactoryConfig() factory.Config {
	cfg := factory.DefaultConfig()
	cfg.OCRAPIKey = c.OCRAPIKey
	cfg.OCRBaseURL = c.OCRBaseURL
	cfg.OCRModel = c.OCRModel
	cfg.ExtractorKind = factory.ExtractorKind(c.ExtractorKind)
	cfg.ExtractorAPIKey = c.ExtractorAPIKey
	cfg.ExtractorBaseURL = c.ExtractorBaseURL
	cfg.ExtractionModel = c.ExtractionModel
	cfg.EdgeBinding = c.EdgeAIBinding
	if c.MaxDocumentBytes > 0 {
		cfg.MaxDocumentBytes = c.MaxDocumentBytes
	}
	return cfg
}
