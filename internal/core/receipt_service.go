package core

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"invoiceease/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type receiptService struct {
	receipts *storage.Collection[PaymentReceipt]
}

// NewReceiptService constructs a ReceiptService for the given scope.
func NewReceiptService(store storage.Store, scope Scope, log zerolog.Logger) ReceiptService {
	return &receiptService{
		receipts: storage.NewCollection[PaymentReceipt](store, scope.receiptsKey(), log),
	}
}

func (s *receiptService) List(ctx context.Context) ([]PaymentReceipt, error) {
	return s.receipts.Load(ctx)
}

func (s *receiptService) Get(ctx context.Context, id string) (*PaymentReceipt, error) {
	receipts, err := s.receipts.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range receipts {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func (s *receiptService) Add(ctx context.Context, input ReceiptInput) (*PaymentReceipt, error) {
	receipts, err := s.receipts.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	receipt := PaymentReceipt{
		ID:            uuid.NewString(),
		ReceiptNumber: nextReceiptNumber(receipts, now),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applyReceiptInput(&receipt, input)

	if err := s.receipts.Save(ctx, append(receipts, receipt)); err != nil {
		return nil, fmt.Errorf("persist receipts: %w", err)
	}
	return &receipt, nil
}

func (s *receiptService) Update(ctx context.Context, id string, input ReceiptInput) error {
	receipts, err := s.receipts.Load(ctx)
	if err != nil {
		return err
	}
	for i := range receipts {
		if receipts[i].ID != id {
			continue
		}
		applyReceiptInput(&receipts[i], input)
		receipts[i].UpdatedAt = time.Now()
		return s.receipts.Save(ctx, receipts)
	}
	// unknown id: silent no-op
	return nil
}

func (s *receiptService) Remove(ctx context.Context, id string) error {
	receipts, err := s.receipts.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]PaymentReceipt, 0, len(receipts))
	for _, r := range receipts {
		if r.ID != id {
			remaining = append(remaining, r)
		}
	}
	return s.receipts.Save(ctx, remaining)
}

// nextReceiptNumber formats RCP-{year}-{month}-{seq} where seq is the
// highest numeric suffix among the existing receipts plus one, zero-padded
// to three digits. The sequence never resets within a scope, so numbers
// stay strictly increasing even across month boundaries.
func nextReceiptNumber(existing []PaymentReceipt, now time.Time) string {
	maxSeq := 0
	for _, r := range existing {
		parts := strings.Split(r.ReceiptNumber, "-")
		if len(parts) < 2 {
			continue
		}
		seq, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("RCP-%d-%02d-%03d", now.Year(), int(now.Month()), maxSeq+1)
}

func applyReceiptInput(receipt *PaymentReceipt, input ReceiptInput) {
	if input.InvoiceNumber != nil {
		receipt.InvoiceNumber = *input.InvoiceNumber
	}
	if input.ClientName != nil {
		receipt.ClientName = *input.ClientName
	}
	if input.AmountPaid != nil {
		receipt.AmountPaid = *input.AmountPaid
	}
	if input.PaymentMethod != nil {
		receipt.PaymentMethod = *input.PaymentMethod
	}
	if input.PaymentDate != nil {
		receipt.PaymentDate = *input.PaymentDate
	}
	if input.Notes != nil {
		receipt.Notes = *input.Notes
	}
}
