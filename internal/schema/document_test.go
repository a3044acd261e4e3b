package schema_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezonia/docscan/internal/model"
	"github.com/rezonia/docscan/internal/schema"
)

func TestValidateDocument_Empty(t *testing.T) {
	d := model.Document{Type: model.DocumentTypeImage}
	assert.Error(t, schema.ValidateDocument(d))
}

func TestValidateDocument_TooLarge(t *testing.T) {
	d := model.Document{
		Content: bytes.Repeat([]byte("x"), schema.MaxDocumentBytes+1),
		Type:    model.DocumentTypeImage,
	}
	assert.Error(t, schema.ValidateDocument(d))
}

func TestValidateDocument_UnsupportedType(t *testing.T) {
	d := model.Document{Content: []byte{0xFF}, Type: model.DocumentType("tiff")}
	assert.Error(t, schema.ValidateDocument(d))
}

func TestValidateDocument_ImageOK(t *testing.T) {
	d := model.Document{Content: []byte{0x89, 0x50, 0x4E, 0x47}, Type: model.DocumentTypeImage}
	assert.NoError(t, schema.ValidateDocument(d))
}

func TestValidateDocument_MalformedPDF(t *testing.T) {
	d := model.Document{Content: []byte("not a real pdf"), Type: model.DocumentTypePDF}
	assert.Error(t, schema.ValidateDocument(d))
}
