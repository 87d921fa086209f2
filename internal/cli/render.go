package cli

import (
	"fmt"
	"strings"
)

const barWidth = 20

// Money formats an amount with a currency symbol. Negative amounts
// keep the sign ahead of the symbol.
func Money(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// SignedMoney renders income green and expenses red.
func SignedMoney(amount float64) string {
	if amount < 0 {
		return ExpenseStyle.Render(Money(amount))
	}
	return IncomeStyle.Render(Money(amount))
}

// PercentBar renders a fixed-width usage bar, colored by how close the
// percentage is to its limit. Values outside 0-100 are clamped for
// display only.
func PercentBar(percent float64) string {
	clamped := percent
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}

	filled := int(clamped / 100 * barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	style := SuccessStyle
	switch {
	case percent >= 100:
		style = ErrorStyle
	case percent >= 90:
		style = WarningStyle
	}

	return style.Render(bar) + fmt.Sprintf(" %3.0f%%", percent)
}
