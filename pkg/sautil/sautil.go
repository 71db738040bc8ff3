// Package sautil holds South African formatting and validation helpers used by
// the storefront: provinces, rand amounts, phone numbers, ID numbers and the
// flat-rate shipping table.
package sautil

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Provinces lists the nine provinces in display order.
var Provinces = []string{
	"Eastern Cape", "Free State", "Gauteng", "KwaZulu-Natal",
	"Limpopo", "Mpumalanga", "North West", "Northern Cape", "Western Cape",
}

var (
	saIDPattern  = regexp.MustCompile(`^\d{13}$`)
	phonePattern = regexp.MustCompile(`^(\+27|0)[1-9][0-9]{8}$`)
	whitespace   = regexp.MustCompile(`\s`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// shippingBase is the courier base cost per province in rand.
var shippingBase = map[string]decimal.Decimal{
	"Gauteng":       decimal.RequireFromString("65.00"),
	"Western Cape":  decimal.RequireFromString("85.00"),
	"KwaZulu-Natal": decimal.RequireFromString("95.00"),
	"Eastern Cape":  decimal.RequireFromString("105.00"),
	"Free State":    decimal.RequireFromString("90.00"),
	"Limpopo":       decimal.RequireFromString("110.00"),
	"Mpumalanga":    decimal.RequireFromString("100.00"),
	"North West":    decimal.RequireFromString("95.00"),
	"Northern Cape": decimal.RequireFromString("120.00"),
}

var (
	defaultShippingBase = decimal.RequireFromString("85.00")
	perKilogram         = decimal.RequireFromString("2.50")
)

// FormatCurrency renders amount the en-ZA way: "R 1 234,50".
func FormatCurrency(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("R ")
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// ValidateSAID reports whether id looks like a 13-digit South African ID number.
// Checksum digits are not verified.
func ValidateSAID(id string) bool {
	return saIDPattern.MatchString(id)
}

// ValidatePhone accepts local (0xx) and international (+27xx) mobile and
// landline numbers. Whitespace is ignored.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(whitespace.ReplaceAllString(phone, ""))
}

// FormatPhone normalises a phone number to +27 form. Numbers already written
// with a leading "+" keep their country code.
func FormatPhone(phone string) string {
	digits := nonDigit.ReplaceAllString(phone, "")
	switch {
	case strings.HasPrefix(strings.TrimSpace(phone), "+"):
		return "+" + digits
	case strings.HasPrefix(digits, "0"):
		return "+27" + digits[1:]
	default:
		return "+27" + digits
	}
}

// CalculateShipping quotes delivery to province for a parcel of weightKg.
// Unknown provinces use the default base rate.
func CalculateShipping(province string, weightKg decimal.Decimal) decimal.Decimal {
	base, ok := shippingBase[province]
	if !ok {
		base = defaultShippingBase
	}
	return base.Add(weightKg.Mul(perKilogram))
}
