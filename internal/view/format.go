package view

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fraction digits shown for prices and market caps.
const maxFractionDigits = 3

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount formats d with thousands separators and at most three
// fraction digits, e.g. 1234567.891 -> "1,234,567.891".
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(maxFractionDigits)))
}

// FormatUSD prefixes FormatAmount with a dollar sign.
func FormatUSD(d decimal.Decimal) string {
	return "$" + FormatAmount(d)
}

// FormatRank renders the raw rank, or an empty string when absent.
func FormatRank(rank decimal.NullDecimal) string {
	if !rank.Valid {
		return ""
	}
	return rank.Decimal.String()
}

// FormatChange renders a 24h change fixed to two decimals with a percent sign,
// or "N/A" when absent.
func FormatChange(change decimal.NullDecimal) string {
	if !change.Valid {
		return NotAvailable
	}
	s := change.Decimal.StringFixed(2)
	// Small negatives round to zero but keep their sign
	if change.Decimal.IsNegative() && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s + "%"
}
