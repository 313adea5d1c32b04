package order

import (
	"strings"

	"github.com/shopspring/decimal"

	"bakehouse/internal/domain/entity"
)

// Subtotal sums unit price times quantity over all committed lines. It is
// recomputed on every view derivation; nothing caches it.
func Subtotal(lines []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Total())
	}

	return sum
}

// FormatMoney renders a decimal amount as US-style currency, two decimal
// places with thousands grouping.
func FormatMoney(value decimal.Decimal) string {
	negative := value.IsNegative()
	fixed := value.Abs().StringFixed(2)

	wholePart, fraction, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range wholePart {
		if i > 0 && (len(wholePart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	out := "$" + grouped.String() + "." + fraction
	if negative {
		out = "-" + out
	}

	return out
}
