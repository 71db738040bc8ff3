package sautil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
	}{
		{"0", "R 0,00"},
		{"12.5", "R 12,50"},
		{"999.999", "R 1 000,00"},
		{"1234.5", "R 1 234,50"},
		{"1234567.89", "R 1 234 567,89"},
		{"-45.1", "-R 45,10"},
	}
	for _, c := range cases {
		got := FormatCurrency(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "FormatCurrency(%s)", c.in)
	}
}

func TestValidateSAID(t *testing.T) {
	t.Parallel()
	assert.True(t, ValidateSAID("8001015009087"))
	assert.False(t, ValidateSAID(""))
	assert.False(t, ValidateSAID("800101500908"))
	assert.False(t, ValidateSAID("80010150090X7"))
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in string
		ok bool
	}{
		{"0821234567", true},
		{"082 123 4567", true},
		{"+27821234567", true},
		{"0021234567", false},
		{"082123456", false},
		{"+1 555 1234567", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, ValidatePhone(c.in), "ValidatePhone(%q)", c.in)
	}
}

func TestFormatPhone(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "+27821234567", FormatPhone("082 123 4567"))
	assert.Equal(t, "+27821234567", FormatPhone("+27 82 123 4567"))
	assert.Equal(t, "+27821234567", FormatPhone("821234567"))
}

func TestCalculateShipping(t *testing.T) {
	t.Parallel()
	got := CalculateShipping("Gauteng", decimal.NewFromInt(2))
	assert.True(t, got.Equal(decimal.RequireFromString("70.00")), "got %s", got)

	got = CalculateShipping("Atlantis", decimal.NewFromInt(1))
	assert.True(t, got.Equal(decimal.RequireFromString("87.50")), "got %s", got)

	for _, p := range Provinces {
		_, ok := shippingBase[p]
		assert.True(t, ok, "province %q missing from shipping table", p)
	}
}
