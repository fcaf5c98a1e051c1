package order

import (
	"strconv"
	"strings"
)

// Accepted payment method labels, stored verbatim on the session and echoed
// on the receipt.
const (
	PaymentCash = "1. Dinheiro 💵"
	PaymentPix  = "2. Pix"
	PaymentCard = "3. Cartão 💳"
)

// menuOption is the decoded post-selection action menu input.
type menuOption int

const (
	optInvalid menuOption = iota
	optAddMore
	optFinalize
	optCancel
	optHandoff
	optCatalogDoc
)

// decodeBrowsing parses menu input as an item id. Invalid text yields ok=false.
func decodeBrowsing(text string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeOption maps the numbered action menu input to its typed variant.
func decodeOption(text string) menuOption {
	switch strings.TrimSpace(text) {
	case "1":
		return optAddMore
	case "2":
		return optFinalize
	case "3":
		return optCancel
	case "4":
		return optHandoff
	case "5":
		return optCatalogDoc
	default:
		return optInvalid
	}
}

// decodePayment resolves a payment selection by option number or by name.
// Customers reply with "1", "2. Pix", "pix" and everything in between.
func decodePayment(text string) (label string, cash bool, ok bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(t, "1"), strings.Contains(t, "dinheiro"):
		return PaymentCash, true, true
	case strings.HasPrefix(t, "2"), strings.Contains(t, "pix"):
		return PaymentPix, false, true
	case strings.HasPrefix(t, "3"), strings.Contains(t, "cartão"), strings.Contains(t, "cartao"):
		return PaymentCard, false, true
	default:
		return "", false, false
	}
}
