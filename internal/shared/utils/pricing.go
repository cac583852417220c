package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var itPrinter = message.NewPrinter(language.Italian)

// FormatCents formats an amount in euro cents for display using Italian
// number conventions (1.234,56).
func FormatCents(cents int64) string {
	return itPrinter.Sprintf("€ %.2f", float64(cents)/100.0)
}

// FormatCentsPlain formats an amount in euro cents without the currency
// symbol, for CSV exports and emails.
func FormatCentsPlain(cents int64) string {
	return itPrinter.Sprintf("%.2f", float64(cents)/100.0)
}
