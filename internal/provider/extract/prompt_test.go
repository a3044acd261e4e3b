package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/docscan/internal/model"
)

func TestAlreadyWrapped(t *testing.T) {
	assert.True(t, alreadyWrapped("## Instructions\nDo a thing"))
	assert.True(t, alreadyWrapped("some text\n# INSTRUCTIONS\nmore"))
	assert.False(t, alreadyWrapped("plain OCR text with no markers"))
}

func TestBuildPrompt_WrapsUnwrappedMarkdown(t *testing.T) {
	system, user, err := buildPrompt(model.ExtractionRequest{
		Markdown: "Pay to the order of Jane Roe $42.00",
		Schema:   model.ScanTypeCheck,
	})
	require.NoError(t, err)
	assert.Contains(t, system, "never invent")
	assert.Contains(t, user, "## Instructions")
	assert.Contains(t, user, "Jane Roe")
	assert.True(t, strings.Contains(user, "```json"))
}

func TestBuildPrompt_PassesThroughAlreadyWrapped(t *testing.T) {
	markdown := "## Instructions\nExtract a check.\n\n## Text\nPay Jane Roe $42"
	_, user, err := buildPrompt(model.ExtractionRequest{Markdown: markdown, Schema: model.ScanTypeCheck})
	require.NoError(t, err)
	assert.Equal(t, markdown, user)
}
