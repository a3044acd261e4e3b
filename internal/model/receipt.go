package model

import "github.com/shopspring/decimal"

// ReceiptType classifies the nature of a retail transaction.
type ReceiptType string

const (
	ReceiptTypeSale      ReceiptType = "sale"
	ReceiptTypeReturn    ReceiptType = "return"
	ReceiptTypeRefund    ReceiptType = "refund"
	ReceiptTypeEstimate  ReceiptType = "estimate"
	ReceiptTypeProforma  ReceiptType = "proforma"
	ReceiptTypeOther     ReceiptType = "other"
)

// Merchant identifies the selling party on a Receipt.
type Merchant struct {
	Name      string `json:"name,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Website   string `json:"website,omitempty"`
	TaxID     string `json:"taxId,omitempty"`
	StoreID   string `json:"storeId,omitempty"`
	ChainName string `json:"chainName,omitempty"`
}

// LineItem is one purchased line on a Receipt.
type LineItem struct {
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity,omitempty" jsonschema:"type=number"`
	UnitPrice   decimal.Decimal `json:"unitPrice,omitempty" jsonschema:"type=number"`
	TotalPrice  decimal.Decimal `json:"totalPrice,omitempty" jsonschema:"type=number"`
	SKU         string          `json:"sku,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// TaxItem is one tax line applied to a Receipt.
type TaxItem struct {
	Name      string          `json:"name,omitempty"`
	Rate      decimal.Decimal `json:"rate,omitempty" jsonschema:"type=number"`
	TaxAmount decimal.Decimal `json:"taxAmount,omitempty" jsonschema:"type=number"`
}

// PaymentMethod is one payment instrument applied to a Receipt's total.
type PaymentMethod struct {
	Type   string          `json:"type,omitempty"`
	Last4  string          `json:"last4,omitempty" validate:"omitempty,numeric,len=4"`
	Amount decimal.Decimal `json:"amount,omitempty" jsonschema:"type=number"`
}

// Totals aggregates a Receipt's monetary lines.
type Totals struct {
	Subtotal *decimal.Decimal `json:"subtotal,omitempty" jsonschema:"type=number"`
	Tax      *decimal.Decimal `json:"tax,omitempty" jsonschema:"type=number"`
	Tip      *decimal.Decimal `json:"tip,omitempty" jsonschema:"type=number"`
	Discount *decimal.Decimal `json:"discount,omitempty" jsonschema:"type=number"`
	Total    decimal.Decimal  `json:"total,omitempty" jsonschema:"type=number"`
}

// Receipt is a purchase acknowledgement: merchant info, line items,
// totals, taxes, and payment method. Only Confidence is required.
type Receipt struct {
	Confidence     float64         `json:"confidence" validate:"gte=0,lte=1" jsonschema:"required,minimum=0,maximum=1"`
	Merchant       *Merchant       `json:"merchant,omitempty"`
	ReceiptNumber  string          `json:"receiptNumber,omitempty"`
	ReceiptType    ReceiptType     `json:"receiptType,omitempty" validate:"omitempty,oneof=sale return refund estimate proforma other"`
	Timestamp      string          `json:"timestamp,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Totals         *Totals         `json:"totals,omitempty"`
	Currency       string          `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Items          []LineItem      `json:"items,omitempty"`
	Taxes          []TaxItem       `json:"taxes,omitempty"`
	Payments       []PaymentMethod `json:"payments,omitempty"`
	Notes          []string        `json:"notes,omitempty"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	IsValidInput   *bool           `json:"isValidInput,omitempty"`
}

// SetValid sets the audit flag, allocating the pointer if needed.
func (r *Receipt) SetValid(v bool) {
	r.IsValidInput = &v
}

// SetConfidence overwrites the extractor's self-reported confidence with
// a score computed downstream (finish-reason/structural/stated blend,
// hallucination audit).
func (r *Receipt) SetConfidence(v float64) {
	r.Confidence = v
}

// Valid reports the current audit flag, defaulting to true when unset.
func (r *Receipt) Valid() bool {
	return r.IsValidInput == nil || *r.IsValidInput
}
