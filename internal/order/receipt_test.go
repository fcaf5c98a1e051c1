package order

import (
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 19, 45, 0, 0, time.UTC)
}

func TestOrderTotalsSplitIsExact(t *testing.T) {
	catalog := DefaultCatalog()
	carts := [][]int{
		{1},
		{1, 7},
		{5},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{9, 9, 9},
	}
	for _, ids := range carts {
		var items []Item
		for _, id := range ids {
			it, err := catalog.Find(id)
			if err != nil {
				t.Fatalf("Find(%d): %v", id, err)
			}
			items = append(items, it)
		}
		totals := OrderTotals(items)
		if totals.Subtotal+totals.Fee != totals.Gross {
			t.Errorf("cart %v: subtotal %d + fee %d != gross %d",
				ids, totals.Subtotal, totals.Fee, totals.Gross)
		}
	}
}

func TestReceiptCashWithChange(t *testing.T) {
	catalog := DefaultCatalog()
	burger, _ := catalog.Find(1)
	coke, _ := catalog.Find(7)

	b := NewReceiptBuilder(fixedClock)
	change, _ := ParseChange("50")
	got := b.Build([]Item{burger, coke}, "Rua X, 123", PaymentCash, change)

	for _, want := range []string{
		"SMASH BURGER - Pedido em 30/08/2026 às 19:45",
		"1. 🍔 Smash Burger Clássico - R$ 20,00",
		"7. 🥤 Coca-Cola 2L - R$ 12,00",
		"Subtotal: R$ 28,80",
		"Taxa de Entrega (10%): R$ 3,20",
		"TOTAL: R$ 32,00",
		"ENDEREÇO:\nRua X, 123",
		"FORMA DE PAGAMENTO:\n" + PaymentCash,
		"Troco para: R$ 50,00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("receipt missing %q:\n%s", want, got)
		}
	}
}

func TestReceiptNonCashOmitsChange(t *testing.T) {
	catalog := DefaultCatalog()
	item, _ := catalog.Find(2)

	b := NewReceiptBuilder(fixedClock)
	got := b.Build([]Item{item}, "Av. Brasil, 9", PaymentPix, "")
	if strings.Contains(got, "Troco para") {
		t.Fatalf("non-cash receipt must not carry a change line:\n%s", got)
	}
}

func TestReceiptIsDeterministic(t *testing.T) {
	catalog := DefaultCatalog()
	item, _ := catalog.Find(5)

	b := NewReceiptBuilder(fixedClock)
	first := b.Build([]Item{item}, "Rua A", PaymentCard, "")
	second := b.Build([]Item{item}, "Rua A", PaymentCard, "")
	if first != second {
		t.Fatal("identical inputs must produce identical receipts")
	}
}
