package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		value    string
		currency string
		expected string
	}{
		{value: "", currency: "INR", expected: ""},
		{value: "500", currency: "INR", expected: "₹ 500"},
		{value: "1500", currency: "INR", expected: "₹ 1,500"},
		{value: "150000", currency: "INR", expected: "₹ 1,50,000"},
		{value: "1234567", currency: "INR", expected: "₹ 12,34,567"},
		{value: "12345678", currency: "INR", expected: "₹ 1,23,45,678"},
		{value: "1234567.89", currency: "INR", expected: "₹ 12,34,567.89"},
		{value: "299.5", currency: "INR", expected: "₹ 299.50"},
		{value: "150000.5", currency: "USD", expected: "$ 150,000.50"},
		{value: "1000000", currency: "EUR", expected: "€ 1,000,000"},
		{value: "999.999", currency: "USD", expected: "$ 1,000.00"},
		{value: "1234567", currency: "GBP", expected: "£ 1,234,567"},
		{value: "42", currency: "CHF", expected: "CHF 42"},
		{value: "abc", currency: "INR", expected: "abc"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, Format(c.value, c.currency), "Format(%q, %q)", c.value, c.currency)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse(" 300.25 ")
	require.NoError(t, err)
	assert.Equal(t, "300.25", d.String())

	_, err = Parse("three hundred")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Parse("-1")
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestParseNullable(t *testing.T) {
	assert.False(t, ParseNullable("").Valid)
	assert.False(t, ParseNullable("x").Valid)

	n := ParseNullable("500")
	require.True(t, n.Valid)
	assert.Equal(t, "500", n.Decimal.String())
}
