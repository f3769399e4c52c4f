package export

import (
	"bytes"
	"context"
	"fmt"

	"invoiceease/internal/core"
)

// TextRenderer is the built-in plain-text renderer. PDF and image output
// plug in through the same Renderer interface.
type TextRenderer struct{}

func (TextRenderer) Render(_ context.Context, doc *core.Document, profile *core.BusinessProfile) ([]byte, string, error) {
	var b bytes.Buffer

	if profile != nil {
		fmt.Fprintln(&b, profile.Name)
		if profile.Address != "" {
			fmt.Fprintln(&b, profile.Address)
		}
		if profile.Email != "" {
			fmt.Fprintln(&b, profile.Email)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintf(&b, "%s %s\n", titleFor(doc.Kind), doc.Number)
	if doc.ClientName != "" {
		fmt.Fprintf(&b, "Billed to: %s\n", doc.ClientName)
	}
	if doc.IssueDate != "" {
		fmt.Fprintf(&b, "Date: %s\n", doc.IssueDate)
	}
	if doc.DueDate != "" {
		fmt.Fprintf(&b, "Due: %s\n", doc.DueDate)
	}
	fmt.Fprintln(&b)

	for _, line := range doc.LineItems {
		fmt.Fprintf(&b, "%-40s %8s x %10s = %12s\n",
			line.Description, line.Quantity, line.UnitPrice, line.Total)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%52s %12s\n", "Subtotal:", doc.Subtotal)
	if !doc.TaxAmount.IsZero() {
		fmt.Fprintf(&b, "%52s %12s\n", "Tax:", doc.TaxAmount)
	}
	if !doc.DiscountAmount.IsZero() {
		fmt.Fprintf(&b, "%52s %12s\n", "Discount:", doc.DiscountAmount.Neg())
	}
	fmt.Fprintf(&b, "%52s %12s\n", "Total:", doc.TotalAmount)

	if doc.Notes != "" {
		fmt.Fprintf(&b, "\n%s\n", doc.Notes)
	}

	return b.Bytes(), "txt", nil
}

func titleFor(kind core.DocumentKind) string {
	switch kind {
	case core.KindLPO:
		return "PURCHASE ORDER"
	case core.KindEstimate:
		return "ESTIMATE"
	default:
		return "INVOICE"
	}
}
