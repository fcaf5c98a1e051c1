package order

import (
	"fmt"
	"strings"
)

// FormatCents renders an amount in centavos as a pt-BR currency string,
// e.g. 2999 -> "R$ 29,99". Output is deterministic and locale-independent.
func FormatCents(cents int64) string {
	if cents < 0 {
		cents = 0
	}
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}

// ParseChange normalizes a free-form "troco para" utterance. It returns the
// formatted amount and true, or ("", false) when the customer declined change
// ("não"/"nao", case-insensitive). Garbage input degrades to "R$ 0,00" rather
// than failing.
func ParseChange(raw string) (string, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "não" || trimmed == "nao" {
		return "", false
	}

	var cleaned strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			cleaned.WriteRune(r)
		}
	}

	// The first separator is the decimal point, everything after it centavos.
	intPart := cleaned.String()
	fracPart := ""
	if i := strings.IndexAny(intPart, ",."); i >= 0 {
		fracPart = intPart[i+1:]
		intPart = intPart[:i]
	}

	intPart = digitsOnly(intPart)
	if intPart == "" {
		intPart = "0"
	}
	fracPart = digitsOnly(fracPart)
	for len(fracPart) < 2 {
		fracPart += "0"
	}
	fracPart = fracPart[:2]

	return "R$ " + intPart + "," + fracPart, true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
