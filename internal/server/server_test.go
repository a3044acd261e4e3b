package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rezonia/docscan/internal/factory"
	"github.com/rezonia/docscan/internal/server"
)

func testFactoryConfig() factory.Config {
	cfg := factory.DefaultConfig()
	cfg.OCRAPIKey = "sk-test-0123456789abcdef"
	cfg.OCRModel = "vision-model-v1"
	cfg.ExtractorKind = factory.ExtractorKindRemote
	cfg.ExtractorAPIKey = "sk-test-0123456789abcdef"
	cfg.ExtractionModel = "extraction-model-v1"
	return cfg
}

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	srv, err := server.New(server.Config{Address: ":0", Debug: true}, testFactoryConfig(), zap.NewNop())
	require.NoError(t, err)
	return srv
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"apiKey":"sk-test-..."`)
}

func TestHandleCheck_RejectsEmptyBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(""))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProcess_RejectsUnknownType(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/process?type=invoice", strings.NewReader("data"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProcess_RejectsMissingType(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/process", strings.NewReader("data"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNew_PropagatesFactoryValidationError(t *testing.T) {
	cfg := testFactoryConfig()
	cfg.OCRAPIKey = ""

	_, err := server.New(server.Config{Address: ":0"}, cfg, zap.NewNop())
	require.Error(t, err)
}
