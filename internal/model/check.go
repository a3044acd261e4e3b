package model

import "github.com/shopspring/decimal"

// Check is a paper payment instrument: payer, payee, amount, date, and
// bank routing/account numbers. Only Confidence is required; every other
// field is optional so a partial extraction is still a valid Check.
type Check struct {
	Confidence    float64         `json:"confidence" validate:"gte=0,lte=1" jsonschema:"required,minimum=0,maximum=1"`
	CheckNumber   string          `json:"checkNumber,omitempty" jsonschema:"description=Check serial number printed on the instrument"`
	Date          string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" jsonschema:"description=ISO-8601 date (YYYY-MM-DD)"`
	Payee         string          `json:"payee,omitempty"`
	Amount        decimal.Decimal `json:"amount,omitempty" jsonschema:"type=number"`
	Payer         string          `json:"payer,omitempty"`
	BankName      string          `json:"bankName,omitempty"`
	RoutingNumber string          `json:"routingNumber,omitempty" validate:"omitempty,numeric,len=9"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	Memo          string          `json:"memo,omitempty"`
	IsValidInput  *bool           `json:"isValidInput,omitempty"`
}

// SetValid sets the audit flag, allocating the pointer if needed.
func (c *Check) SetValid(v bool) {
	c.IsValidInput = &v
}

// SetConfidence overwrites the extractor's self-reported confidence with
// a score computed downstream (finish-reason/structural/stated blend,
// hallucination audit).
func (c *Check) SetConfidence(v float64) {
	c.Confidence = v
}

// Valid reports the current audit flag, defaulting to true when unset
// (pre-audit Checks have not been flagged one way or the other yet).
func (c *Check) Valid() bool {
	return c.IsValidInput == nil || *c.IsValidInput
}
