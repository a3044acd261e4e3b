package hallucination_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/docscan/internal/hallucination"
	"github.com/rezonia/docscan/internal/model"
)

func TestReceiptDetector_ConsistentReceiptUnchanged(t *testing.T) {
	r := &model.Receipt{
		Confidence: 0.9,
		Merchant:   &model.Merchant{Name: "Trattoria Italia"},
		Totals:     &model.Totals{Total: decimal.NewFromFloat(21.50)},
		Items: []model.LineItem{
			{Description: "Pasta", TotalPrice: decimal.NewFromFloat(21.50)},
		},
	}
	hallucination.NewReceiptDetector().Detect(r)

	assert.True(t, r.Valid())
	assert.InDelta(t, 0.9, r.Confidence, 1e-9)
}

func TestReceiptDetector_GenericMerchantAndCleanTotal(t *testing.T) {
	r := &model.Receipt{
		Confidence: 0.8,
		Merchant:   &model.Merchant{Name: "Generic Store"},
		Totals:     &model.Totals{Total: decimal.NewFromInt(100)},
	}
	hallucination.NewReceiptDetector().Detect(r)

	assert.False(t, r.Valid())
	assert.InDelta(t, 0.24, r.Confidence, 1e-9)
}

func TestReceiptDetector_InconsistentTotalsDowngrades(t *testing.T) {
	r := &model.Receipt{
		Confidence: 0.8,
		Merchant:   &model.Merchant{Name: "Trattoria Italia"},
		Totals:     &model.Totals{Total: decimal.NewFromFloat(50.00)},
		Items: []model.LineItem{
			{Description: "Pasta", TotalPrice: decimal.NewFromFloat(21.50)},
		},
	}
	hallucination.NewReceiptDetector().Detect(r)

	assert.True(t, r.Valid())
	assert.InDelta(t, 0.72, r.Confidence, 1e-9)
}

func TestReceiptDetector_NonReceiptIsNoOp(t *testing.T) {
	c := &model.Check{Confidence: 0.5}
	hallucination.NewReceiptDetector().Detect(c)
	assert.InDelta(t, 0.5, c.Confidence, 1e-9)
}
