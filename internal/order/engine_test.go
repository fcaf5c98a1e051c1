package order

import (
	"strconv"
	"strings"
	"testing"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultCatalog(), NewReceiptBuilder(fixedClock), fixedClock)
}

func step(t *testing.T, e *Engine, s *Session, text string) StepResult {
	t.Helper()
	s.Lock()
	defer s.Unlock()
	return e.Step(s, text)
}

func joinTexts(res StepResult) string {
	var parts []string
	for _, r := range res.Replies {
		parts = append(parts, r.Text)
	}
	return strings.Join(parts, "\n")
}

func TestGreetingShowsGroupedMenu(t *testing.T) {
	e := newTestEngine()
	s := NewStore().GetOrCreate(100)

	out := joinTexts(step(t, e, s, "oi"))
	for _, want := range []string{"CARDÁPIO SMASH BURGER", "LANCHES", "BEBIDAS", "🍔 Smash Burger Clássico", "R$ 6,00"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q", want)
		}
	}
	if s.State != StateBrowsing {
		t.Fatalf("state = %s, want %s", s.State, StateBrowsing)
	}
}

func TestSelectingItemAppendsExactlyOneLine(t *testing.T) {
	e := newTestEngine()
	catalog := DefaultCatalog()

	for _, cat := range catalog.Categories() {
		for _, it := range cat.Items {
			s := &Session{CustomerID: 1, State: StateBrowsing}
			step(t, e, s, "  "+strconv.Itoa(it.ID)+"  ")
			if len(s.Cart) != 1 {
				t.Fatalf("item %d: cart has %d lines, want 1", it.ID, len(s.Cart))
			}
			if s.Cart[0].PriceCents != it.PriceCents {
				t.Errorf("item %d: price %d, want %d", it.ID, s.Cart[0].PriceCents, it.PriceCents)
			}
			if s.State != StateItemChosen {
				t.Errorf("item %d: state = %s, want %s", it.ID, s.State, StateItemChosen)
			}
		}
	}
}

func TestDuplicateSelectionYieldsTwoLines(t *testing.T) {
	e := newTestEngine()
	s := &Session{CustomerID: 1, State: StateBrowsing}

	step(t, e, s, "1")
	step(t, e, s, "1") // add more
	step(t, e, s, "1")
	if len(s.Cart) != 2 {
		t.Fatalf("cart has %d lines, want 2 separate lines for the same id", len(s.Cart))
	}
}

func TestInvalidBrowsingInputLeavesSessionUntouched(t *testing.T) {
	e := newTestEngine()
	for _, in := range []string{"abc", "0", "11", "-1", "1.5", ""} {
		s := &Session{CustomerID: 1, State: StateBrowsing}
		res := step(t, e, s, in)
		if s.State != StateBrowsing {
			t.Errorf("input %q: state = %s, want unchanged", in, s.State)
		}
		if len(s.Cart) != 0 {
			t.Errorf("input %q: cart mutated", in)
		}
		if !strings.Contains(joinTexts(res), "Opção inválida") {
			t.Errorf("input %q: expected an invalid-selection notice", in)
		}
	}
}

func TestFinalizeWithEmptyCartReprompts(t *testing.T) {
	e := newTestEngine()
	s := &Session{CustomerID: 1, State: StateItemChosen}

	res := step(t, e, s, "2")
	if s.State != StateItemChosen {
		t.Fatalf("state = %s, want %s", s.State, StateItemChosen)
	}
	if !strings.Contains(joinTexts(res), "carrinho está vazio") {
		t.Fatal("expected empty-cart notice")
	}
}

func TestHandoffKeepsState(t *testing.T) {
	e := newTestEngine()
	s := &Session{CustomerID: 1, State: StateItemChosen}

	res := step(t, e, s, "4")
	if s.State != StateItemChosen {
		t.Fatalf("state = %s, want %s", s.State, StateItemChosen)
	}
	if !strings.Contains(joinTexts(res), "atendente") {
		t.Fatal("expected handoff notice")
	}
}

func TestCatalogDocumentOption(t *testing.T) {
	e := newTestEngine()
	s := &Session{CustomerID: 1, State: StateItemChosen}

	res := step(t, e, s, "5")
	if s.State != StateItemChosen {
		t.Fatalf("state = %s, want %s", s.State, StateItemChosen)
	}
	if len(res.Replies) != 1 || res.Replies[0].Document == nil {
		t.Fatal("expected a document reply")
	}
	doc := res.Replies[0].Document
	if doc.Name != "cardapio.txt" {
		t.Errorf("document name = %q", doc.Name)
	}
	if !strings.Contains(string(doc.Data), "Smash Burger Clássico") {
		t.Error("document should carry the rendered catalog")
	}
}

// Scenario A: full non-cash order from greeting to receipt.
func TestOrderFlowNonCash(t *testing.T) {
	e := newTestEngine()
	s := NewStore().GetOrCreate(42)

	step(t, e, s, "oi")
	step(t, e, s, "1")
	step(t, e, s, "2") // finalize
	if s.State != StateAwaitingAddress {
		t.Fatalf("state = %s, want %s", s.State, StateAwaitingAddress)
	}

	step(t, e, s, "Rua X, 123")
	if s.State != StateAwaitingPayment {
		t.Fatalf("state = %s, want %s", s.State, StateAwaitingPayment)
	}

	res := step(t, e, s, "2. Pix")
	out := joinTexts(res)
	if !strings.Contains(out, "TOTAL: R$ 20,00") {
		t.Errorf("receipt missing total:\n%s", out)
	}
	if !strings.Contains(out, "Taxa de Entrega (10%): R$ 2,00") {
		t.Errorf("receipt missing delivery fee:\n%s", out)
	}
	if strings.Contains(out, "Troco para") {
		t.Error("non-cash order must not carry a change line")
	}
	if res.Completed == nil {
		t.Fatal("expected a completed order snapshot")
	}
	if res.Completed.Payment != PaymentPix {
		t.Errorf("payment = %q", res.Completed.Payment)
	}
	if s.State != StateInitial || len(s.Cart) != 0 {
		t.Fatal("session must reset after confirmation")
	}
}

// Scenario B: two items totalling 26,00 paid in cash with change for 50.
func TestOrderFlowCashWithChange(t *testing.T) {
	e := newTestEngine()
	s := NewStore().GetOrCreate(7)

	step(t, e, s, "olá")
	step(t, e, s, "1") // R$ 20,00
	step(t, e, s, "1") // add more
	step(t, e, s, "9") // R$ 6,00
	step(t, e, s, "2") // finalize
	step(t, e, s, "Rua Y, 456")
	step(t, e, s, "1") // dinheiro

	if s.State != StateAwaitingChange {
		t.Fatalf("state = %s, want %s", s.State, StateAwaitingChange)
	}

	res := step(t, e, s, "50")
	out := joinTexts(res)
	for _, want := range []string{
		"Subtotal: R$ 23,40",
		"Taxa de Entrega (10%): R$ 2,60",
		"TOTAL: R$ 26,00",
		"Troco para: R$ 50,00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q:\n%s", want, out)
		}
	}
	if res.Completed == nil || res.Completed.Totals.Gross != 2600 {
		t.Fatal("completed order should carry the 26,00 gross total")
	}
}

// Scenario C: cancellation clears the cart; the next order starts fresh.
func TestCancelClearsCart(t *testing.T) {
	e := newTestEngine()
	s := NewStore().GetOrCreate(9)

	step(t, e, s, "oi")
	step(t, e, s, "1")
	res := step(t, e, s, "3") // cancel

	if s.State != StateInitial {
		t.Fatalf("state = %s, want %s", s.State, StateInitial)
	}
	if len(s.Cart) != 0 {
		t.Fatal("cart must be cleared on cancel")
	}
	if !strings.Contains(joinTexts(res), "cancelado") {
		t.Fatal("expected cancellation confirmation")
	}

	step(t, e, s, "oi")
	step(t, e, s, "2")
	if len(s.Cart) != 1 || s.Cart[0].ID != 2 {
		t.Fatalf("fresh cart expected after cancel, got %v", s.Cart)
	}
}

func TestDeclinedChangeOmitsLine(t *testing.T) {
	e := newTestEngine()
	s := &Session{
		CustomerID: 1,
		State:      StateAwaitingChange,
		Cart:       []Item{{ID: 1, Name: "x", PriceCents: 2000}},
		Address:    "Rua Z",
		Payment:    PaymentCash,
	}

	out := joinTexts(step(t, e, s, "não"))
	if strings.Contains(out, "Troco para") {
		t.Fatal("declined change must omit the change line")
	}
}

func TestInvalidPaymentReprompts(t *testing.T) {
	e := newTestEngine()
	s := &Session{
		CustomerID: 1,
		State:      StateAwaitingPayment,
		Cart:       []Item{{ID: 1, Name: "x", PriceCents: 2000}},
		Address:    "Rua Z",
	}

	out := joinTexts(step(t, e, s, "cheque"))
	if s.State != StateAwaitingPayment {
		t.Fatalf("state = %s, want unchanged", s.State)
	}
	if !strings.Contains(out, "FORMA DE PAGAMENTO") {
		t.Fatal("expected payment prompt again")
	}
}
