package core_test

import (
	"context"
	"testing"

	"invoiceease/internal/core"
	"invoiceease/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocuments(t *testing.T) (core.DocumentService, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	scope := core.Scope{UserID: "a@x.com", ProfileID: "p1"}
	return core.NewDocumentService(store, scope, zerolog.Nop()), store
}

func TestDocumentService_AddComputesDerivedTotals(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDocuments(t)

	rate := dec("10")
	doc, err := svc.Add(ctx, core.DocumentInput{
		ClientName: strPtr("Bob"),
		LineItems: []core.LineItem{
			{Description: "work", Quantity: dec("2"), UnitPrice: dec("10")},
		},
		TaxRate: &rate,
	})
	require.NoError(t, err)

	assert.True(t, doc.Subtotal.Equal(dec("20")), "Subtotal = %s", doc.Subtotal)
	assert.True(t, doc.TaxAmount.Equal(dec("2")), "TaxAmount = %s", doc.TaxAmount)
	assert.True(t, doc.TotalAmount.Equal(dec("22")), "TotalAmount = %s", doc.TotalAmount)
	assert.NotEmpty(t, doc.LineItems[0].ID)
	assert.Equal(t, core.KindInvoice, doc.Kind)
}

func TestDocumentService_UpdateRecomputesLineTotals(t *testing.T) {
	ctx := context.Background()
	svc, _ := newDocuments(t)

	doc, err := svc.Add(ctx, core.DocumentInput{
		LineItems: []core.LineItem{
			{Description: "work", Quantity: dec("1"), UnitPrice: dec("10")},
		},
	})
	require.NoError(t, err)

	// replace the line list with changed quantity; stored totals must follow
	require.NoError(t, svc.Update(ctx, doc.ID, core.DocumentInput{
		LineItems: []core.LineItem{
			{ID: doc.LineItems[0].ID, Description: "work", Quantity: dec("5"), UnitPrice: dec("10")},
		},
	}))

	got, err := svc.Get(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.LineItems[0].Total.Equal(dec("50")))
	assert.True(t, got.Subtotal.Equal(dec("50")))
	assert.True(t, got.TotalAmount.Equal(dec("50")))
	assert.False(t, got.UpdatedAt.Before(doc.UpdatedAt))
}

func TestDocumentService_PersistedCollectionMatchesReads(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	scope := core.Scope{UserID: "a@x.com", ProfileID: "p1"}
	svc := core.NewDocumentService(store, scope, zerolog.Nop())

	kind := core.KindLPO
	first, err := svc.Add(ctx, core.DocumentInput{Kind: &kind, Number: strPtr("LPO-1")})
	require.NoError(t, err)
	_, err = svc.Add(ctx, core.DocumentInput{Number: strPtr("INV-1")})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, first.ID))

	// a fresh service over the same storage reads the same collection
	reread := core.NewDocumentService(store, scope, zerolog.Nop())
	docs, err := reread.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "INV-1", docs[0].Number)
	assert.Equal(t, core.KindInvoice, docs[0].Kind)
}

func TestDocumentService_SharedAcrossProfilesLegacyLayout(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	// documents are keyed by raw user id, so profiles share them
	p1 := core.NewDocumentService(store, core.Scope{UserID: "a@x.com", ProfileID: "p1"}, zerolog.Nop())
	p2 := core.NewDocumentService(store, core.Scope{UserID: "a@x.com", ProfileID: "p2"}, zerolog.Nop())

	_, err := p1.Add(ctx, core.DocumentInput{Number: strPtr("INV-7")})
	require.NoError(t, err)

	docs, err := p2.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "INV-7", docs[0].Number)

	// but a different user sees nothing
	other := core.NewDocumentService(store, core.Scope{UserID: "b@x.com"}, zerolog.Nop())
	docs, err = other.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
