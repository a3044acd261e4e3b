package hallucination

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/docscan/internal/model"
)

// dummyCheckNumbers are serial numbers that appear on essentially every
// specimen/void check ever photographed for a tutorial or test fixture.
var dummyCheckNumbers = map[string]bool{
	"1234": true,
	"5678": true,
	"0000": true,
}

// dummyPayees are names that show up in specimen checks and LLM-invented
// placeholders alike.
var dummyPayees = map[string]bool{
	"john doe":   true,
	"jane doe":   true,
	"john smith": true,
}

// dummyAmounts are round figures that recur across specimen checks.
var dummyAmounts = []decimal.Decimal{
	decimal.NewFromInt(100),
	decimal.NewFromFloat(150.75),
	decimal.NewFromInt(200),
	decimal.NewFromInt(500),
}

// dummyDates are placeholder dates used by check-template generators.
var dummyDates = map[string]bool{
	"2020-01-01": true,
	"2023-10-05": true,
	"1900-01-01": true,
	"1970-01-01": true,
}

// CheckDetector audits a *model.Check against the signal table in
// spec.md §4.4.
type CheckDetector struct{}

// NewCheckDetector constructs a CheckDetector. It holds no state.
func NewCheckDetector() *CheckDetector {
	return &CheckDetector{}
}

// Detect mutates c.IsValidInput and c.Confidence per the counted-signal
// scoring rule. v must be a *model.Check; any other type is a no-op.
func (d *CheckDetector) Detect(v any) {
	c, ok := v.(*model.Check)
	if !ok {
		return
	}

	matches := 0
	if dummyCheckNumbers[c.CheckNumber] {
		matches++
	}
	if dummyPayees[normalizeName(c.Payee)] {
		matches++
	}
	if matchesAnyAmount(c.Amount, dummyAmounts) {
		matches++
	}
	if dummyDates[c.Date] {
		matches++
	}

	c.Confidence = scoreFromMatches(matches, c.SetValid, c.Confidence)
}

func matchesAnyAmount(amount decimal.Decimal, candidates []decimal.Decimal) bool {
	for _, candidate := range candidates {
		if amount.Equal(candidate) {
			return true
		}
	}
	return false
}
