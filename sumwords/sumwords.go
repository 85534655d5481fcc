// Package sumwords spells out monetary amounts in Russian.
//
// Every numeral, scale word and currency word agrees in gender and number
// with the quantity it counts:
//
//	Convert("123.12", false)          // "сто двадцать три рубля 12 копеек"
//	Convert("21000", true)            // "двадцать одна тысяча рублей"
//	ConvertCurrency("2", "UAH", true) // "две гривны"
//
// The integer part is spelled out in full; the fractional part is
// truncated to two digits and written as digits followed by the minor
// unit ("07 копеек"). Integer parts up to 36 digits (дециллионы) are
// supported; longer ones fail with ErrOverflow.
//
// A leading minus sign is rendered as "минус". Negative zero is rendered
// without it.
//
// All functions are safe for concurrent use by multiple goroutines.
package sumwords

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	// ErrOverflow is returned when the integer part needs a scale beyond
	// the largest named one (дециллион, 10^33).
	ErrOverflow = errors.New("sumwords: amount exceeds the largest supported scale")

	// ErrSyntax is returned for input that is not a decimal number.
	ErrSyntax = errors.New("sumwords: invalid amount")

	// ErrUnknownCurrency is returned by ConvertCurrency for codes missing
	// from the built-in table.
	ErrUnknownCurrency = errors.New("sumwords: unknown currency")
)

// Convert returns the Russian text for amount in roubles and kopecks.
// amount is a decimal string; dot or comma is accepted as the separator.
// When whole is true the kopecks are omitted (dropped, not rounded).
func Convert(amount string, whole bool) (string, error) {
	return ConvertWith(amount, rouble, whole)
}

// ConvertCurrency is like Convert for the built-in currency with the
// given ISO 4217 code. See Currencies for the list.
func ConvertCurrency(amount, code string, whole bool) (string, error) {
	cur, ok := LookupCurrency(code)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return ConvertWith(amount, cur, whole)
}

// ConvertWith is like Convert with a caller-supplied currency.
// Empty forms in cur are skipped in the output.
func ConvertWith(amount string, cur Currency, whole bool) (string, error) {
	if g := cur.Major.Gender; g < Masculine || g > Neuter {
		return "", fmt.Errorf("sumwords: currency %q: invalid major gender %v", cur.Code, g)
	}
	a, err := parseAmount(amount)
	if err != nil {
		return "", err
	}
	return convert(a, cur, whole)
}

// ConvertDecimal is like Convert for a decimal value.
func ConvertDecimal(d decimal.Decimal, whole bool) (string, error) {
	return Convert(d.String(), whole)
}

// ConvertFloat is like Convert for a float64. The value is formatted with
// the fewest digits that represent it exactly, so 123.12 yields 12 kopecks.
// NaN and infinities return ErrSyntax.
func ConvertFloat(f float64, whole bool) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrSyntax, f)
	}
	return Convert(strconv.FormatFloat(f, 'f', -1, 64), whole)
}
