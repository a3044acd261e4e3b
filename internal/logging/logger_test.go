package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/docscan/internal/logging"
)

func TestNew_Development(t *testing.T) {
	logger, err := logging.New("development")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_Production(t *testing.T) {
	logger, err := logging.New("production")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNamed(t *testing.T) {
	base, _ := logging.New("development")
	scoped := logging.Named(base, "scanner", "ProcessDocument")
	assert.NotNil(t, scoped)
}
