package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Client is a billable customer record scoped to (user, profile).
// TotalBilled and InvoiceCount are read-side enrichments derived from the
// scope's document collection — they are never persisted with the client.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	TotalBilled  decimal.Decimal `json:"totalBilled,omitempty"`
	InvoiceCount int             `json:"invoiceCount,omitempty"`
}

// ClientInput holds the editable fields of a client. Nil pointers leave the
// current value untouched.
type ClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// ClientService is the CRUD surface for the scope's client collection.
type ClientService interface {
	// List returns the scope's clients.
	List(ctx context.Context) ([]Client, error)

	// ListWithBillingTotals returns the clients with TotalBilled and
	// InvoiceCount derived from the scope's documents.
	ListWithBillingTotals(ctx context.Context) ([]Client, error)

	// Get returns the client with the given id, or nil when absent.
	Get(ctx context.Context, id string) (*Client, error)

	// Add creates a client with a fresh id and CreatedAt.
	Add(ctx context.Context, input ClientInput) (*Client, error)

	// Update merges input into the client. Unknown ids are a silent no-op.
	Update(ctx context.Context, id string, input ClientInput) error

	// Remove deletes the client with the given id.
	Remove(ctx context.Context, id string) error
}
