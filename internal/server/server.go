// Package server is the HTTP adapter (spec.md §6): a thin Gin layer
// that reads a raw document body, dispatches to the factory-built
// Scanner for the requested document type, and maps the core's error
// kinds onto the status codes spec.md §7 names.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rezonia/docscan/internal/factory"
	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/scanner"
	"github.com/rezonia/docscan/internal/schema"
)

// Version is the service's build identifier, reported on /health.
const Version = "0.1.0"

// requestIDHeader is the header a caller's own request ID is read from
// (and a generated one is echoed on) for cross-service log correlation.
const requestIDHeader = "X-Request-ID"

// requestIDMiddleware assigns every request a correlation ID, honoring
// one the caller already supplied rather than always minting a fresh
// one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// Config holds server-level settings independent of the scanning core.
type Config struct {
	Address       string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	RequestBudget time.Duration
	Debug         bool
}

// Server wires the HTTP surface over one Scanner per document type.
type Server struct {
	config         Config
	factoryConfig  factory.Config
	router         *gin.Engine
	logger         *zap.Logger
	checkScanner   scanner.Scanner
	receiptScanner scanner.Scanner
	maskedAPIKey   string
}

// New constructs a Server. It builds a CheckScanner and a ReceiptScanner
// from cfg up front — the factory validates eagerly, so a
// misconfiguration surfaces here rather than on first request.
func New(httpCfg Config, factoryCfg factory.Config, logger *zap.Logger) (*Server, error) {
	if !httpCfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	checkScanner, err := factory.NewScanner(model.ScanTypeCheck, factoryCfg)
	if err != nil {
		return nil, err
	}
	receiptScanner, err := factory.NewScanner(model.ScanTypeReceipt, factoryCfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	if httpCfg.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:         httpCfg,
		factoryConfig:  factoryCfg,
		router:         router,
		logger:         logger,
		checkScanner:   checkScanner,
		receiptScanner: receiptScanner,
		maskedAPIKey:   schema.MaskAPIKey(factoryCfg.OCRAPIKey),
	}
	s.setupRoutes()
	return s, nil
}

// Handler returns the http.Handler for use with a custom *http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it exits.
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// statusForError maps a core error kind to the HTTP status spec.md §7
// names. Unrecognized errors fall back to 500 rather than leaking
// internal detail as a misleading 400.
func statusForError(err error) int {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var ocrErr *model.OCRError
	if errors.As(err, &ocrErr) {
		if ocrErr.Kind == model.OCRErrorTransient {
			return http.StatusTooManyRequests
		}
		return http.StatusUnprocessableEntity
	}

	var extractErr *model.ExtractionError
	if errors.As(err, &extractErr) {
		if extractErr.Kind == model.ExtractionErrorTransient {
			return http.StatusTooManyRequests
		}
		return http.StatusUnprocessableEntity
	}

	var configErr *model.ConfigError
	if errors.As(err, &configErr) {
		return http.StatusInternalServerError
	}

	var cancelledErr *model.CancelledError
	if errors.As(err, &cancelledErr) {
		return 499
	}

	return http.StatusInternalServerError
}
