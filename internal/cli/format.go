// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a dollar amount, always with cents.
// Negative amounts get a leading minus before the dollar sign.
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	whole := int64(amount)
	cents := int64(math.Round((amount - float64(whole)) * 100))
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return fmt.Sprintf("$%s.%02d", FormatNumber(whole), cents)
}

// FormatMoneyShort formats a dollar amount compactly, dropping cents
// once the amount is large enough that they add noise.
func FormatMoneyShort(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoneyShort(-amount)
	}
	if amount >= 1000 {
		return "$" + FormatNumber(int64(math.Round(amount)))
	}
	if amount >= 100 {
		return fmt.Sprintf("$%.0f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage value (already 0-100 scaled).
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatSignedPercent formats a percentage with an explicit sign,
// for month-over-month changes.
func FormatSignedPercent(pct float64) string {
	if pct >= 0 {
		return fmt.Sprintf("+%.1f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDelta formats a money delta with an explicit sign.
func FormatDelta(delta float64) string {
	if delta >= 0 {
		return "+" + FormatMoneyShort(delta)
	}
	return "-" + FormatMoneyShort(-delta)
}

// FormatMonth turns a "2006-01" key into "Jan 2006" for display.
// Unparseable keys are returned as-is.
func FormatMonth(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}
