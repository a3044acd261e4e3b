package hallucination

import (
	"github.com/shopspring/decimal"

	intdecimal "github.com/rezonia/docscan/internal/decimal"
	"github.com/rezonia/docscan/internal/model"
)

// genericMerchantNames are placeholder merchant names an LLM reaches for
// when a receipt image carries no legible storefront text.
var genericMerchantNames = map[string]bool{
	"store":             true,
	"merchant":          true,
	"sample store":      true,
	"generic store":     true,
	"unknown merchant":  true,
	"retail store":      true,
}

// placeholderTimestamps are canonical stand-in dates/times.
var placeholderTimestamps = map[string]bool{
	"2020-01-01t00:00:00z": true,
	"1970-01-01t00:00:00z": true,
	"2000-01-01t00:00:00z": true,
}

// consistencyTolerance bounds how far sum(items)+sum(taxes)+tip-discount
// may drift from totals.total before the soft consistency check applies
// its downgrade (spec.md §3, Open Questions).
var consistencyTolerance = decimal.NewFromFloat(0.02) // 2%

// ReceiptDetector audits a *model.Receipt against the signal table in
// spec.md §4.4, plus the soft cross-field total-consistency check.
type ReceiptDetector struct{}

// NewReceiptDetector constructs a ReceiptDetector. It holds no state.
func NewReceiptDetector() *ReceiptDetector {
	return &ReceiptDetector{}
}

// Detect mutates r.IsValidInput and r.Confidence. v must be a
// *model.Receipt; any other type is a no-op.
func (d *ReceiptDetector) Detect(v any) {
	r, ok := v.(*model.Receipt)
	if !ok {
		return
	}

	matches := 0
	if r.Merchant != nil && genericMerchantNames[normalizeName(r.Merchant.Name)] {
		matches++
	}
	if isCleanRoundTotalWithNoItems(r) {
		matches++
	}
	if placeholderTimestamps[normalizeName(r.Timestamp)] {
		matches++
	}

	r.Confidence = scoreFromMatches(matches, r.SetValid, r.Confidence)

	if !consistent(r) {
		r.Confidence *= 0.9
	}
}

// isCleanRoundTotalWithNoItems flags a Receipt that states a whole-dollar
// total but lists no line items to justify it — the shape an LLM
// produces when it invents a plausible-looking summary from nothing.
func isCleanRoundTotalWithNoItems(r *model.Receipt) bool {
	if r.Totals == nil || len(r.Items) > 0 {
		return false
	}
	return r.Totals.Total.Equal(r.Totals.Total.Truncate(0)) && intdecimal.IsPositive(r.Totals.Total)
}

// consistent reports whether the Receipt's line items, taxes, tip, and
// discount reconcile with its stated total within consistencyTolerance.
// A Receipt with no totals, or with neither line items nor taxes, has
// nothing to reconcile and is treated as consistent.
func consistent(r *model.Receipt) bool {
	if r.Totals == nil {
		return true
	}

	sum := intdecimal.Sum(itemTotals(r.Items))
	sum = sum.Add(intdecimal.Sum(taxAmounts(r.Taxes)))
	if r.Totals.Tip != nil {
		sum = sum.Add(*r.Totals.Tip)
	}
	if r.Totals.Discount != nil {
		sum = sum.Sub(*r.Totals.Discount)
	}

	if len(r.Items) == 0 && len(r.Taxes) == 0 {
		return true
	}

	return intdecimal.ApproxEqual(sum, r.Totals.Total, consistencyTolerance)
}

func itemTotals(items []model.LineItem) []decimal.Decimal {
	out := make([]decimal.Decimal, len(items))
	for i, item := range items {
		out[i] = item.TotalPrice
	}
	return out
}

func taxAmounts(taxes []model.TaxItem) []decimal.Decimal {
	out := make([]decimal.Decimal, len(taxes))
	for i, tax := range taxes {
		out[i] = tax.TaxAmount
	}
	return out
}
