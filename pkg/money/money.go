package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	ErrInvalidAmount  = errors.New("amount must be a number")
	ErrNegativeAmount = errors.New("amount must not be negative")
)

var (
	defaultPrinter = message.NewPrinter(language.English)
	printers       = map[string]*message.Printer{
		"INR": message.NewPrinter(language.MustParse("en-IN")),
	}
)

var symbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Parse reads a fee as typed into a form field.
func Parse(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// ParseNullable returns an invalid NullDecimal for an empty or unparseable value.
func ParseNullable(value string) decimal.NullDecimal {
	if strings.TrimSpace(value) == "" {
		return decimal.NullDecimal{}
	}
	d, err := Parse(value)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Format renders an amount for display, e.g. "₹ 1,50,000" for INR (Indian
// digit grouping) or "$ 150,000.50" for other currencies. Empty input
// formats to "".
func Format(value, currency string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	d, err := Parse(value)
	if err != nil {
		return value
	}

	places := int32(0)
	if !d.Equal(d.Truncate(0)) {
		places = 2
	}
	d = d.Round(places)
	frac := ""
	if places > 0 {
		text := d.StringFixed(places)
		frac = text[strings.IndexByte(text, '.'):]
	}

	printer := printers[currency]
	if printer == nil {
		printer = defaultPrinter
	}
	intPart := printer.Sprint(number.Decimal(d.Truncate(0).IntPart()))

	symbol, ok := symbols[currency]
	if !ok {
		symbol = currency
	}
	return symbol + " " + intPart + frac
}
