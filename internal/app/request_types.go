package app

import (
	"github.com/shopspring/decimal"

	"invoiceease/internal/core"
)

// SignUpRequest registers a new local account.
type SignUpRequest struct {
	Email       string
	ProfileName string
}

// ProfileRequest carries the editable fields of a business profile.
type ProfileRequest struct {
	Name    string
	Email   string
	Address string
	Phone   string
	LogoURL string
	TaxID   string
}

// ClientRequest creates a client record.
type ClientRequest struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// DocumentRequest creates an invoice, LPO or estimate.
type DocumentRequest struct {
	Kind         core.DocumentKind
	Number       string
	ClientID     string
	ClientName   string
	IssueDate    string
	DueDate      string
	Currency     string
	Notes        string
	LineItems    []core.LineItem
	TaxRate      decimal.Decimal
	DiscountRate decimal.Decimal
}

// PaymentRequest records a payment receipt.
type PaymentRequest struct {
	InvoiceNumber string
	ClientName    string
	AmountPaid    decimal.Decimal
	PaymentMethod string
	PaymentDate   string
	Notes         string
}
