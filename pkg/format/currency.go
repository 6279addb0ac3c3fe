// Package format provides display formatting helpers for money and percentages.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// WholeCurrency returns a currency string without cents (e.g., "$189,900").
// Issue messages use this form since list prices and down payments are
// whole-dollar amounts in source data.
func WholeCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	intPart := fmt.Sprintf("%.0f", math.Abs(amount))
	return sign + "$" + groupThousands(intPart)
}

// Percent returns a percentage string with one decimal place (e.g., "12.5%").
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}
	return groupThousands(intPart) + "." + decPart
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
