package ledger

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is the locale amounts are grouped for unless configured otherwise
const DefaultLocale = "en-IN"

// AmountFormatter renders whole currency amounts with locale digit grouping
type AmountFormatter struct {
	printer *message.Printer
}

// NewAmountFormatter returns a formatter for locale, falling back to DefaultLocale when the
// tag cannot be parsed
func NewAmountFormatter(locale string) *AmountFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &AmountFormatter{printer: message.NewPrinter(tag)}
}

// Format groups n, e.g. 10000 -> "10,000"
func (f *AmountFormatter) Format(n int64) string {
	return f.printer.Sprintf("%d", n)
}
