package order

import (
	"strings"
	"time"
)

// KeyboardHint tells the transport which reply keyboard, if any, should
// accompany a reply. The engine stays transport-agnostic.
type KeyboardHint int

const (
	// KeyboardNone leaves the current keyboard untouched.
	KeyboardNone KeyboardHint = iota
	// KeyboardOptions shows the numbered 1..5 option keyboard.
	KeyboardOptions
	// KeyboardRemove hides any previously shown keyboard.
	KeyboardRemove
)

// Document is a rendered file to be delivered as an attachment.
type Document struct {
	Name string
	Data []byte
}

// Reply is a single outbound message produced by a step.
type Reply struct {
	Text     string
	Markdown bool
	Keyboard KeyboardHint
	Document *Document
}

// CompletedOrder is the snapshot of a confirmed order, handed to the caller
// for archival. The session itself is already reset when a step returns one.
type CompletedOrder struct {
	CustomerID int64
	Items      []Item
	Totals     Totals
	Address    string
	Payment    string
	Change     string
	Receipt    string
	PlacedAt   time.Time
}

// StepResult carries the outbound replies of a step and, when the step
// confirmed an order, its completed snapshot.
type StepResult struct {
	Replies   []Reply
	Completed *CompletedOrder
}

const (
	msgInvalidItem   = "❌ Opção inválida! Digite o número de um item do cardápio."
	msgInvalidOption = "❌ Opção inválida!"
	msgEmptyCart     = "🛒 Seu carrinho está vazio! Adicione itens antes de finalizar."
	msgAddressPrompt = "📍 Digite o *endereço completo* para entrega:"
	msgChangePrompt  = "💵 *Troco para quanto?*\nDigite o valor (ex: 50) ou *não* se não precisar de troco:"
	msgCancelled     = "❌ Pedido cancelado! Envie qualquer mensagem para começar de novo."
	msgHandoff       = "👨‍🍳 Um atendente irá falar com você em breve!"
	msgConfirmed     = "✅ *Pedido confirmado!* Obrigado pela preferência! 🍔"
)

// Engine is the conversational ordering state machine. A step never fails:
// unexpected input produces a clarifying reply and leaves the state alone.
type Engine struct {
	catalog  *Catalog
	receipts *ReceiptBuilder
	now      func() time.Time
}

// NewEngine builds an engine over the given catalog and receipt builder.
func NewEngine(catalog *Catalog, receipts *ReceiptBuilder, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{catalog: catalog, receipts: receipts, now: now}
}

// Step advances a session with one inbound text and returns the outbound
// replies. The caller must hold the session lock.
func (e *Engine) Step(s *Session, text string) StepResult {
	text = strings.TrimSpace(text)
	switch s.State {
	case StateBrowsing:
		return e.stepBrowsing(s, text)
	case StateItemChosen:
		return e.stepOptions(s, text)
	case StateAwaitingAddress:
		return e.stepAddress(s, text)
	case StateAwaitingPayment:
		return e.stepPayment(s, text)
	case StateAwaitingChange:
		return e.stepChange(s, text)
	default:
		// Initial or unknown: greet with the menu.
		s.State = StateBrowsing
		return replies(markdown(renderMenu(e.catalog), KeyboardRemove))
	}
}

func (e *Engine) stepBrowsing(s *Session, text string) StepResult {
	id, ok := decodeBrowsing(text)
	if !ok {
		return replies(
			plain(msgInvalidItem, KeyboardNone),
			markdown(renderMenu(e.catalog), KeyboardNone),
		)
	}
	item, err := e.catalog.Find(id)
	if err != nil {
		return replies(
			plain(msgInvalidItem, KeyboardNone),
			markdown(renderMenu(e.catalog), KeyboardNone),
		)
	}

	s.Cart = append(s.Cart, item)
	s.State = StateItemChosen
	return replies(
		plain("✅ "+item.Name+" adicionado ao carrinho!", KeyboardNone),
		markdown(renderOptions(), KeyboardOptions),
	)
}

func (e *Engine) stepOptions(s *Session, text string) StepResult {
	switch decodeOption(text) {
	case optAddMore:
		s.State = StateBrowsing
		return replies(markdown(renderMenu(e.catalog), KeyboardRemove))
	case optFinalize:
		if len(s.Cart) == 0 {
			return replies(
				plain(msgEmptyCart, KeyboardNone),
				markdown(renderOptions(), KeyboardOptions),
			)
		}
		s.State = StateAwaitingAddress
		return replies(markdown(msgAddressPrompt, KeyboardRemove))
	case optCancel:
		s.reset()
		return replies(plain(msgCancelled, KeyboardRemove))
	case optHandoff:
		return replies(plain(msgHandoff, KeyboardNone))
	case optCatalogDoc:
		return replies(Reply{
			Document: &Document{Name: "cardapio.txt", Data: renderCatalogDocument(e.catalog)},
		})
	default:
		return replies(
			plain(msgInvalidOption, KeyboardNone),
			markdown(renderOptions(), KeyboardOptions),
		)
	}
}

func (e *Engine) stepAddress(s *Session, text string) StepResult {
	if text == "" {
		return replies(markdown(msgAddressPrompt, KeyboardNone))
	}
	s.Address = text
	s.State = StateAwaitingPayment
	return replies(markdown(renderPaymentPrompt(), KeyboardNone))
}

func (e *Engine) stepPayment(s *Session, text string) StepResult {
	label, cash, ok := decodePayment(text)
	if !ok {
		return replies(
			plain(msgInvalidOption, KeyboardNone),
			markdown(renderPaymentPrompt(), KeyboardNone),
		)
	}
	s.Payment = label
	if cash {
		s.State = StateAwaitingChange
		return replies(markdown(msgChangePrompt, KeyboardNone))
	}
	return e.confirm(s)
}

func (e *Engine) stepChange(s *Session, text string) StepResult {
	if change, needed := ParseChange(text); needed {
		s.Change = change
	}
	return e.confirm(s)
}

// confirm builds the receipt, snapshots the order, and resets the session.
func (e *Engine) confirm(s *Session) StepResult {
	receipt := e.receipts.Build(s.Cart, s.Address, s.Payment, s.Change)
	completed := &CompletedOrder{
		CustomerID: s.CustomerID,
		Items:      append([]Item(nil), s.Cart...),
		Totals:     OrderTotals(s.Cart),
		Address:    s.Address,
		Payment:    s.Payment,
		Change:     s.Change,
		Receipt:    receipt,
		PlacedAt:   e.now(),
	}
	s.reset()

	res := replies(
		plain(receipt, KeyboardRemove),
		markdown(msgConfirmed, KeyboardNone),
	)
	res.Completed = completed
	return res
}

func replies(rs ...Reply) StepResult {
	return StepResult{Replies: rs}
}

func plain(text string, kb KeyboardHint) Reply {
	return Reply{Text: text, Keyboard: kb}
}

func markdown(text string, kb KeyboardHint) Reply {
	return Reply{Text: text, Markdown: true, Keyboard: kb}
}
