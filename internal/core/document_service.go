package core

import (
	"context"
	"fmt"
	"time"

	"invoiceease/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type documentService struct {
	documents *storage.Collection[Document]
}

// NewDocumentService constructs a DocumentService for the given scope.
// The document collection is keyed by the raw user id only (legacy layout),
// so it is shared across the user's business profiles.
func NewDocumentService(store storage.Store, scope Scope, log zerolog.Logger) DocumentService {
	return &documentService{
		documents: storage.NewCollection[Document](store, scope.documentsKey(), log),
	}
}

func (s *documentService) List(ctx context.Context) ([]Document, error) {
	return s.documents.Load(ctx)
}

func (s *documentService) Get(ctx context.Context, id string) (*Document, error) {
	documents, err := s.documents.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range documents {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, nil
}

func (s *documentService) Add(ctx context.Context, input DocumentInput) (*Document, error) {
	documents, err := s.documents.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc := Document{
		ID:        uuid.NewString(),
		Kind:      KindInvoice,
		LineItems: []LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyDocumentInput(&doc, input)
	doc.Recalculate()

	if err := s.documents.Save(ctx, append(documents, doc)); err != nil {
		return nil, fmt.Errorf("persist documents: %w", err)
	}
	return &doc, nil
}

func (s *documentService) Update(ctx context.Context, id string, input DocumentInput) error {
	documents, err := s.documents.Load(ctx)
	if err != nil {
		return err
	}
	for i := range documents {
		if documents[i].ID != id {
			continue
		}
		applyDocumentInput(&documents[i], input)
		documents[i].Recalculate()
		documents[i].UpdatedAt = time.Now()
		return s.documents.Save(ctx, documents)
	}
	// unknown id: silent no-op
	return nil
}

func (s *documentService) Remove(ctx context.Context, id string) error {
	documents, err := s.documents.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]Document, 0, len(documents))
	for _, d := range documents {
		if d.ID != id {
			remaining = append(remaining, d)
		}
	}
	return s.documents.Save(ctx, remaining)
}

// applyDocumentInput merges the set fields of input into doc. Line items
// are replaced wholesale when provided; per-line ids are assigned for lines
// that arrive without one.
func applyDocumentInput(doc *Document, input DocumentInput) {
	if input.Kind != nil {
		doc.Kind = *input.Kind
	}
	if input.Number != nil {
		doc.Number = *input.Number
	}
	if input.ClientID != nil {
		doc.ClientID = *input.ClientID
	}
	if input.ClientName != nil {
		doc.ClientName = *input.ClientName
	}
	if input.IssueDate != nil {
		doc.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		doc.DueDate = *input.DueDate
	}
	if input.Currency != nil {
		doc.Currency = *input.Currency
	}
	if input.Notes != nil {
		doc.Notes = *input.Notes
	}
	if input.TaxRate != nil {
		doc.TaxRate = *input.TaxRate
	}
	if input.DiscountRate != nil {
		doc.DiscountRate = *input.DiscountRate
	}
	if input.LineItems != nil {
		lines := make([]LineItem, len(input.LineItems))
		copy(lines, input.LineItems)
		for i := range lines {
			if lines[i].ID == "" {
				lines[i].ID = uuid.NewString()
			}
		}
		doc.LineItems = lines
	}
}
