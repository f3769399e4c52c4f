package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes the document flavors sharing one collection.
type DocumentKind string

const (
	KindInvoice  DocumentKind = "invoice"
	KindLPO      DocumentKind = "lpo"
	KindEstimate DocumentKind = "estimate"
)

// LineItem is one billed row of a document. Total is stored but always
// recomputed as Quantity × UnitPrice on every save; a stale stored value is
// never trusted.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// Document is an invoice, purchase order (LPO) or estimate. The derived
// money fields (Subtotal, TaxAmount, DiscountAmount, TotalAmount) are stored
// alongside the inputs and recomputed by the save path on every mutation.
type Document struct {
	ID             string          `json:"id"`
	Kind           DocumentKind    `json:"kind"`
	Number         string          `json:"number"`
	ClientID       string          `json:"clientId,omitempty"`
	ClientName     string          `json:"clientName,omitempty"`
	IssueDate      string          `json:"issueDate,omitempty"`
	DueDate        string          `json:"dueDate,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	LineItems      []LineItem      `json:"lineItems"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	DiscountRate   decimal.Decimal `json:"discountRate"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// Recalculate recomputes every derived money field from the line items:
// each line Total = Quantity × UnitPrice, Subtotal = Σ line totals,
// TaxAmount = Subtotal × TaxRate/100, DiscountAmount = Subtotal ×
// DiscountRate/100, TotalAmount = Subtotal + TaxAmount − DiscountAmount.
func (d *Document) Recalculate() {
	hundred := decimal.NewFromInt(100)

	subtotal := decimal.Zero
	for i := range d.LineItems {
		d.LineItems[i].Total = d.LineItems[i].Quantity.Mul(d.LineItems[i].UnitPrice)
		subtotal = subtotal.Add(d.LineItems[i].Total)
	}
	d.Subtotal = subtotal
	d.TaxAmount = subtotal.Mul(d.TaxRate).Div(hundred)
	d.DiscountAmount = subtotal.Mul(d.DiscountRate).Div(hundred)
	d.TotalAmount = subtotal.Add(d.TaxAmount).Sub(d.DiscountAmount)
}

// DocumentInput holds the editable fields of a document. Nil pointers leave
// the current value untouched; a non-nil LineItems replaces the whole list.
type DocumentInput struct {
	Kind         *DocumentKind
	Number       *string
	ClientID     *string
	ClientName   *string
	IssueDate    *string
	DueDate      *string
	Currency     *string
	Notes        *string
	LineItems    []LineItem
	TaxRate      *decimal.Decimal
	DiscountRate *decimal.Decimal
}

// DocumentService is the CRUD surface for the scope's invoice/LPO
// collection. Every mutation recalculates derived totals and rewrites the
// whole collection slot.
type DocumentService interface {
	// List returns the scope's documents.
	List(ctx context.Context) ([]Document, error)

	// Get returns the document with the given id, or nil when absent.
	Get(ctx context.Context, id string) (*Document, error)

	// Add creates a document from input with a fresh id and timestamps.
	Add(ctx context.Context, input DocumentInput) (*Document, error)

	// Update merges input into the document. Unknown ids are a silent no-op.
	Update(ctx context.Context, id string, input DocumentInput) error

	// Remove deletes the document with the given id.
	Remove(ctx context.Context, id string) error
}
