package order

import (
	"fmt"
	"strings"
	"time"
)

// Totals holds the receipt arithmetic for a cart, in centavos.
//
// The delivery fee is carved out of the gross item sum: the displayed TOTAL
// equals the raw item sum while the subtotal is the remainder. This mirrors
// the restaurant's pricing display and is kept on purpose.
type Totals struct {
	Gross    int64
	Fee      int64
	Subtotal int64
}

// OrderTotals computes totals for the given cart lines. The 10% fee is
// rounded half-up to the nearest centavo, so Subtotal+Fee == Gross always.
func OrderTotals(items []Item) Totals {
	var gross int64
	for _, it := range items {
		gross += it.PriceCents
	}
	fee := (gross + 5) / 10
	return Totals{Gross: gross, Fee: fee, Subtotal: gross - fee}
}

// ReceiptBuilder renders the final order summary. The clock is injectable so
// receipts are reproducible in tests.
type ReceiptBuilder struct {
	now func() time.Time
}

// NewReceiptBuilder returns a builder using the given clock, or time.Now when nil.
func NewReceiptBuilder(now func() time.Time) *ReceiptBuilder {
	if now == nil {
		now = time.Now
	}
	return &ReceiptBuilder{now: now}
}

// Build produces the itemized receipt text. The "Troco para" line appears only
// for cash payments with a non-empty normalized change amount.
func (b *ReceiptBuilder) Build(items []Item, address, payment, change string) string {
	totals := OrderTotals(items)
	ts := b.now()

	var sb strings.Builder
	fmt.Fprintf(&sb, "SMASH BURGER - Pedido em %s às %s\n\n",
		ts.Format("02/01/2006"), ts.Format("15:04"))

	sb.WriteString("ITENS:\n")
	for _, it := range items {
		fmt.Fprintf(&sb, "%d. %s - %s\n", it.ID, it.Name, FormatCents(it.PriceCents))
	}

	fmt.Fprintf(&sb, "\nSubtotal: %s", FormatCents(totals.Subtotal))
	fmt.Fprintf(&sb, "\nTaxa de Entrega (10%%): %s", FormatCents(totals.Fee))
	fmt.Fprintf(&sb, "\nTOTAL: %s\n", FormatCents(totals.Gross))
	fmt.Fprintf(&sb, "\nENDEREÇO:\n%s\n", address)
	fmt.Fprintf(&sb, "\nFORMA DE PAGAMENTO:\n%s\n", payment)

	if payment == PaymentCash && change != "" {
		fmt.Fprintf(&sb, "\nTroco para: %s", change)
	}

	return sb.String()
}
