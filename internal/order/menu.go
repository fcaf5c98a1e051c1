package order

import (
	"fmt"
	"strings"
)

const menuDivider = "══════════════════════════"

// renderMenu produces the grouped catalog listing shown when browsing starts.
func renderMenu(c *Catalog) string {
	var sb strings.Builder
	sb.WriteString("🌟 *CARDÁPIO SMASH BURGER* 🌟\n\n")
	for i, cat := range c.Categories() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(menuDivider + "\n")
		fmt.Fprintf(&sb, "%s *%s*\n", cat.Icon, strings.ToUpper(cat.Name))
		sb.WriteString(menuDivider + "\n")
		for _, it := range cat.Items {
			fmt.Fprintf(&sb, "🔹 *%d* %s - %s\n", it.ID, it.Name, FormatCents(it.PriceCents))
		}
	}
	sb.WriteString("\n" + menuDivider + "\n")
	sb.WriteString("🔢 Digite o *NÚMERO* do item desejado:")
	return sb.String()
}

// renderOptions produces the post-selection action menu.
func renderOptions() string {
	return "✨ *O QUE DESEJA FAZER?* ✨\n\n" +
		menuDivider + "\n" +
		"1️⃣  Adicionar mais itens\n" +
		"2️⃣  Finalizar compra\n" +
		"3️⃣  Cancelar pedido\n" +
		"4️⃣  Falar com atendente\n" +
		"5️⃣  📄 Ver Cardápio (arquivo)\n" +
		menuDivider + "\n" +
		"🔢 Digite o número da opção:"
}

// renderPaymentPrompt lists the accepted payment methods.
func renderPaymentPrompt() string {
	return "💰 *FORMA DE PAGAMENTO*\n\n" +
		menuDivider + "\n" +
		PaymentCash + "\n" +
		PaymentPix + "\n" +
		PaymentCard + "\n" +
		menuDivider + "\n" +
		"🔢 Digite o número da opção:"
}

// renderCatalogDocument renders the full menu as a shareable plain-text file.
func renderCatalogDocument(c *Catalog) []byte {
	var sb strings.Builder
	sb.WriteString("CARDÁPIO SMASH BURGER\n")
	for _, cat := range c.Categories() {
		sb.WriteString("\n" + strings.ToUpper(cat.Name) + "\n")
		for _, it := range cat.Items {
			fmt.Fprintf(&sb, "%d. %s - %s\n", it.ID, it.Name, FormatCents(it.PriceCents))
		}
	}
	return []byte(sb.String())
}
