package core_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"invoiceease/internal/core"
	"invoiceease/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptService_NumbersAreSequentialPerScope(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	scopeA := core.Scope{UserID: "a@x.com", ProfileID: "p1"}
	scopeB := core.Scope{UserID: "b@x.com", ProfileID: "p1"}
	svcA := core.NewReceiptService(store, scopeA, zerolog.Nop())
	svcB := core.NewReceiptService(store, scopeB, zerolog.Nop())

	now := time.Now()
	wantPrefix := fmt.Sprintf("RCP-%d-%02d-", now.Year(), int(now.Month()))

	amount := dec("100")
	for i, want := range []string{"001", "002", "003"} {
		// interleave another scope's receipts; they must not affect A's sequence
		_, err := svcB.Add(ctx, core.ReceiptInput{AmountPaid: &amount})
		require.NoError(t, err)

		receipt, err := svcA.Add(ctx, core.ReceiptInput{AmountPaid: &amount})
		require.NoError(t, err)
		assert.Equal(t, wantPrefix+want, receipt.ReceiptNumber, "receipt %d", i+1)
	}
}

func TestReceiptService_NumberContinuesFromMaxSuffix(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	scope := core.Scope{UserID: "a@x.com", ProfileID: "p1"}
	svc := core.NewReceiptService(store, scope, zerolog.Nop())

	// seed a collection whose highest suffix is from an earlier month
	seeded := []core.PaymentReceipt{
		{ID: "r1", ReceiptNumber: "RCP-2024-01-007"},
		{ID: "r2", ReceiptNumber: "RCP-2024-03-004"},
	}
	col := storage.NewCollection[core.PaymentReceipt](store, "user-axcom-profile-p1-payment-receipts", zerolog.Nop())
	require.NoError(t, col.Save(ctx, seeded))

	amount := dec("50")
	receipt, err := svc.Add(ctx, core.ReceiptInput{AmountPaid: &amount})
	require.NoError(t, err)

	now := time.Now()
	want := fmt.Sprintf("RCP-%d-%02d-008", now.Year(), int(now.Month()))
	assert.Equal(t, want, receipt.ReceiptNumber)
}

func TestReceiptService_UpdateRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	scope := core.Scope{UserID: "a@x.com", ProfileID: "p1"}
	svc := core.NewReceiptService(store, scope, zerolog.Nop())

	amount := dec("75")
	created, err := svc.Add(ctx, core.ReceiptInput{AmountPaid: &amount, PaymentMethod: strPtr("cash")})
	require.NoError(t, err)

	newAmount := dec("80")
	require.NoError(t, svc.Update(ctx, created.ID, core.ReceiptInput{AmountPaid: &newAmount}))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.AmountPaid.Equal(newAmount))
	assert.Equal(t, "cash", got.PaymentMethod)
	assert.Equal(t, created.ReceiptNumber, got.ReceiptNumber)
	assert.False(t, got.UpdatedAt.Before(created.UpdatedAt))
}

func TestReceiptService_RemoveDoesNotRenumber(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	scope := core.Scope{UserID: "a@x.com", ProfileID: "p1"}
	svc := core.NewReceiptService(store, scope, zerolog.Nop())

	amount := dec("10")
	first, err := svc.Add(ctx, core.ReceiptInput{AmountPaid: &amount})
	require.NoError(t, err)
	_, err = svc.Add(ctx, core.ReceiptInput{AmountPaid: &amount})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, first.ID))

	// numbering keeps increasing past the deleted receipt
	third, err := svc.Add(ctx, core.ReceiptInput{AmountPaid: &amount})
	require.NoError(t, err)
	now := time.Now()
	want := fmt.Sprintf("RCP-%d-%02d-003", now.Year(), int(now.Month()))
	assert.Equal(t, want, third.ReceiptNumber)
}
