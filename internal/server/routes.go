package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/scanner"
)

// defaultRequestBudget bounds the whole OCR+extraction round trip when
// the caller hasn't configured one explicitly.
const defaultRequestBudget = 90 * time.Second

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/check", s.handleScan(s.checkScanner, ""))
	s.router.POST("/receipt", s.handleScan(s.receiptScanner, ""))
	s.router.POST("/process", s.handleProcess)
}

// handleHealth re-runs the factory's eager config validation so a
// credential revoked after startup (or any other config drift) shows up
// as a failing health check rather than surfacing only on the next
// scan request.
func (s *Server) handleHealth(c *gin.Context) {
	if err := s.factoryConfig.Validate(); err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
		APIKey:    s.maskedAPIKey,
	})
}

// handleProcess dispatches to the Scanner named by the "type" query
// parameter, adding "documentType" to the response per spec.md §6.
func (s *Server) handleProcess(c *gin.Context) {
	docType := c.Query("type")
	switch model.ScanType(docType) {
	case model.ScanTypeCheck:
		s.handleScan(s.checkScanner, docType)(c)
	case model.ScanTypeReceipt:
		s.handleScan(s.receiptScanner, docType)(c)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter \"type\" must be \"check\" or \"receipt\""})
	}
}

// handleScan returns a handler that reads the raw request body as a
// Document, runs it through sc, and renders a ScanResponse. documentType
// is echoed back in the response when set (the /process route only).
func (s *Server) handleScan(sc scanner.Scanner, documentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
			return
		}
		if len(body) == 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
			return
		}

		doc := model.Document{
			Content:  body,
			Type:     documentTypeFromContent(body, c.GetHeader("Content-Type")),
			MimeType: mimeTypeFromContent(body, c.GetHeader("Content-Type")),
		}

		budget := s.config.RequestBudget
		if budget <= 0 {
			budget = defaultRequestBudget
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), budget)
		defer cancel()

		result, err := sc.ProcessDocument(ctx, doc)
		if err != nil {
			s.logger.Error("scan failed",
				zap.String("requestID", c.GetString("requestID")),
				zap.Error(err),
			)
			c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, ScanResponse{
			Data:     result.JSON,
			Markdown: result.RawText,
			Confidence: ConfidenceResponse{
				OCR:        result.OCRConfidence,
				Extraction: result.ExtractionConfidence,
				Overall:    result.OverallConfidence,
			},
			DocumentType: documentType,
		})
	}
}

// mimeTypeFromContent prefers a caller-supplied Content-Type and falls
// back to content sniffing, mirroring the teacher's mime-detection
// fallback for uploads that omit the header.
func mimeTypeFromContent(data []byte, contentType string) string {
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	return sniffMimeType(data)
}

func documentTypeFromContent(data []byte, contentType string) model.DocumentType {
	mime := mimeTypeFromContent(data, contentType)
	if mime == "application/pdf" {
		return model.DocumentTypePDF
	}
	return model.DocumentTypeImage
}

// heicBrands lists the ISOBMFF major brands this service recognizes as
// HEIC/HEIF, checked against the bytes following the "ftyp" box header.
var heicBrands = []string{"heic", "heix", "hevc", "hevx", "mif1", "msf1"}

// sniffMimeType recognizes the handful of formats this service accepts
// by magic bytes, for uploads with no (or a generic) Content-Type.
func sniffMimeType(data []byte) string {
	if len(data) < 4 {
		return "application/octet-stream"
	}
	switch {
	case data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47:
		return "image/png"
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg"
	case data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F':
		return "application/pdf"
	case isHEIC(data):
		return "image/heic"
	default:
		return "application/octet-stream"
	}
}

func isHEIC(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	brand := string(data[8:12])
	for _, b := range heicBrands {
		if brand == b {
			return true
		}
	}
	return false
}
