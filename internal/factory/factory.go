// Package factory is the composition root (spec.md §4.7): given a
// configuration, it wires the resilience stack and provider adapters and
// produces a Scanner for a requested document type, validating eagerly
// and touching no network at construction time.
package factory

import (
	"fmt"

	"github.com/rezonia/docscan/internal/circuitbreaker"
	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/provider/extract"
	"github.com/rezonia/docscan/internal/provider/ocr"
	"github.com/rezonia/docscan/internal/ratelimit"
	"github.com/rezonia/docscan/internal/scanner"
	"github.com/rezonia/docscan/internal/schema"
)

// ExtractorKind selects which Extractor implementation a Config binds.
type ExtractorKind string

const (
	ExtractorKindRemote ExtractorKind = "remote"
	ExtractorKindEdge   ExtractorKind = "edge"
)

// Config enumerates every recognized factory option, per spec.md §4.7.
type Config struct {
	OCRAPIKey          string
	OCRBaseURL         string
	OCRModel           string
	ExtractorKind      ExtractorKind
	ExtractorAPIKey    string
	ExtractorBaseURL   string
	ExtractionModel    string
	EdgeBinding        string
	OCRRateLimit       float64
	OCRRateBurst       int
	ExtractRateLimit   float64
	ExtractRateBurst   int
	MaxDocumentBytes   int
}

// DefaultConfig returns a Config with the rate-limit and burst defaults
// this service ships with; callers still must supply credentials and
// model identifiers.
func DefaultConfig() Config {
	return Config{
		ExtractorKind:    ExtractorKindRemote,
		OCRRateLimit:     2,
		OCRRateBurst:     4,
		ExtractRateLimit: 2,
		ExtractRateBurst: 4,
		MaxDocumentBytes: schema.MaxDocumentBytes,
	}
}

// Validate runs the same eager checks NewScanner performs, without
// building a Scanner. Used by the HTTP server's health check to detect
// configuration drift (e.g. a credential revoked after startup) without
// making an upstream call.
func (c Config) Validate() error {
	return c.validate()
}

// validate performs the eager checks spec.md §4.7 requires before any
// Scanner is constructed: credential format and the bindings required
// by the chosen extractor kind.
func (c Config) validate() error {
	if err := schema.ValidateAPIKey("ocrApiKey", c.OCRAPIKey); err != nil {
		return err
	}
	if c.OCRModel == "" {
		return model.NewConfigError("ocrModel", "OCR model identifier is not set", nil)
	}
	if c.ExtractionModel == "" {
		return model.NewConfigError("extractionModel", "extraction model identifier is not set", nil)
	}

	switch c.ExtractorKind {
	case ExtractorKindRemote:
		if err := schema.ValidateAPIKey("extractorApiKey", c.ExtractorAPIKey); err != nil {
			return err
		}
	case ExtractorKindEdge:
		if c.EdgeBinding == "" {
			return model.NewConfigError("edgeBinding", "edge extractor kind requires an edge binding", nil)
		}
	default:
		return model.NewConfigError("extractorKind", fmt.Sprintf("unsupported extractor kind %q", c.ExtractorKind), nil)
	}
	return nil
}

// NewScanner validates cfg and wires a Scanner for scanType. It performs
// no I/O: clients, breakers, and limiters are constructed but not
// exercised until the first ProcessDocument call.
func NewScanner(scanType model.ScanType, cfg Config) (scanner.Scanner, error) {
	if !scanType.Supported() {
		return nil, model.NewConfigError("scanType", fmt.Sprintf("unsupported scan type %q", scanType), nil)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ocrProvider := ocr.NewRemoteProvider(
		ocr.NewClient(cfg.OCRBaseURL, cfg.OCRAPIKey, cfg.OCRModel),
		circuitbreaker.New(circuitbreaker.DefaultConfig("ocr")),
		ratelimit.New(cfg.OCRRateLimit, cfg.OCRRateBurst),
	)

	extractor, err := newExtractor(cfg)
	if err != nil {
		return nil, err
	}

	switch scanType {
	case model.ScanTypeCheck:
		return scanner.NewCheckScanner(ocrProvider, extractor), nil
	case model.ScanTypeReceipt:
		return scanner.NewReceiptScanner(ocrProvider, extractor), nil
	default:
		return nil, model.NewConfigError("scanType", fmt.Sprintf("unsupported scan type %q", scanType), nil)
	}
}

func newExtractor(cfg Config) (extract.Extractor, error) {
	switch cfg.ExtractorKind {
	case ExtractorKindRemote:
		return extract.NewRemoteExtractor(
			cfg.ExtractorBaseURL, cfg.ExtractorAPIKey, cfg.ExtractionModel,
			circuitbreaker.New(circuitbreaker.DefaultConfig("extract")),
			ratelimit.New(cfg.ExtractRateLimit, cfg.ExtractRateBurst),
		), nil
	case ExtractorKindEdge:
		return extract.NewEdgeExtractor(cfg.EdgeBinding, cfg.ExtractorAPIKey, cfg.ExtractionModel), nil
	default:
		return nil, model.NewConfigError("extractorKind", fmt.Sprintf("unsupported extractor kind %q", cfg.ExtractorKind), nil)
	}
}
