package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rezonia/docscan/internal/model"
)

func TestScoreConfidence_CleanStopFullyPopulated(t *testing.T) {
	c := &model.Check{
		Confidence:    0.9,
		CheckNumber:   "881122",
		Payee:         "Acme Roofing",
		Amount:        decimal.NewFromFloat(742.13),
		Payer:         "Jordan Blake",
		BankName:      "First National",
		Date:          "2025-03-14",
		RoutingNumber: "021000021",
		AccountNumber: "000123456789",
		Memo:          "Roof repair",
	}
	score := scoreConfidence("stop", c)
	assert.GreaterOrEqual(t, score, 0.8)
}

func TestScoreConfidence_TruncatedSparse(t *testing.T) {
	c := &model.Check{Confidence: 0}
	score := scoreConfidence("length", c)
	assert.Less(t, score, 0.5)
}

func TestScoreConfidence_UnknownFinishReason(t *testing.T) {
	c := &model.Check{Confidence: 0}
	score := scoreConfidence("content_filter", c)
	assert.Less(t, score, 0.2)
}
