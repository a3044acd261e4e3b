package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/docscan/internal/config"
	"github.com/rezonia/docscan/internal/factory"
	"github.com/rezonia/docscan/internal/model"
)

var scanTimeout time.Duration

var scanCmd = &cobra.Command{
	Use:   "scan {check|receipt} <file>",
	Short: "Scan a single local image or PDF",
	Long: `Scan reads one local file, runs it through the OCR and extraction
pipeline for the named document type, and prints the resulting JSON to
stdout.

Examples:
  docscan scan check check.png
  docscan scan receipt receipt.jpg --env-file .env.local`,
	Args: cobra.ExactArgs(2),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 2*time.Minute, "Processing timeout")
}

func runScan(cmd *cobra.Command, args []string) error {
	scanType := model.ScanType(args[0])
	if !scanType.Supported() {
		return fmt.Errorf("unsupported document type %q (want \"check\" or \"receipt\")", args[0])
	}

	filePath := args[1]
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	sc, err := factory.NewScanner(scanType, cfg.ToFactoryConfig())
	if err != nil {
		return fmt.Errorf("build scanner: %w", err)
	}

	doc := model.Document{
		Content:  data,
		Type:     documentTypeFromExt(filePath),
		MimeType: mimeTypeFromExt(filePath),
	}

	printVerbose("Scanning %s as %s\n", filePath, scanType)

	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	result, err := sc.ProcessDocument(ctx, doc)
	if err != nil {
		return fmt.Errorf("scan %s: %w", filePath, err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(scanOutput{
		Data:     result.JSON,
		Markdown: result.RawText,
		Confidence: confidenceOutput{
			OCR:        result.OCRConfidence,
			Extraction: result.ExtractionConfidence,
			Overall:    result.OverallConfidence,
		},
	})
}

// scanOutput mirrors the HTTP API's response shape so scan and serve
// produce identical JSON for the same document.
type scanOutput struct {
	Data       any              `json:"data"`
	Markdown   string           `json:"markdown"`
	Confidence confidenceOutput `json:"confidence"`
}

type confidenceOutput struct {
	OCR        float64 `json:"ocr"`
	Extraction float64 `json:"extraction"`
	Overall    float64 `json:"overall"`
}

func documentTypeFromExt(path string) model.DocumentType {
	if strings.ToLower(filepath.Ext(path)) == ".pdf" {
		return model.DocumentTypePDF
	}
	return model.DocumentTypeImage
}

func mimeTypeFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
