package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentReceipt records a payment against an invoice. InvoiceNumber is a
// loose reference — it is not validated against the document collection.
type PaymentReceipt struct {
	ID            string          `json:"id"`
	ReceiptNumber string          `json:"receiptNumber"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	ClientName    string          `json:"clientName,omitempty"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	PaymentDate   string          `json:"paymentDate,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ReceiptInput holds the editable fields of a receipt. The receipt number
// is generated, never supplied.
type ReceiptInput struct {
	InvoiceNumber *string
	ClientName    *string
	AmountPaid    *decimal.Decimal
	PaymentMethod *string
	PaymentDate   *string
	Notes         *string
}

// ReceiptService is the CRUD surface for the scope's payment receipts.
// Receipt numbers are strictly increasing within the scope: each new
// receipt takes the highest existing numeric suffix plus one, formatted
// RCP-{year}-{month}-{seq} with a three-digit zero-padded sequence.
type ReceiptService interface {
	// List returns the scope's receipts.
	List(ctx context.Context) ([]PaymentReceipt, error)

	// Get returns the receipt with the given id, or nil when absent.
	Get(ctx context.Context, id string) (*PaymentReceipt, error)

	// Add creates a receipt with a generated receipt number.
	Add(ctx context.Context, input ReceiptInput) (*PaymentReceipt, error)

	// Update merges input into the receipt and refreshes UpdatedAt.
	// Unknown ids are a silent no-op.
	Update(ctx context.Context, id string, input ReceiptInput) error

	// Remove deletes the receipt with the given id.
	Remove(ctx context.Context, id string) error
}
