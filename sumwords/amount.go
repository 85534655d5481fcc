// Amount normalisation: raw input string to integer digits and a
// two-digit fraction.
package sumwords

import (
	"fmt"
	"strings"
)

const fracDigits = 2

// amount is a normalised non-negative decimal with a sign flag.
type amount struct {
	negative bool
	integer  string // ASCII digits, no leading zeros, "0" for zero
	fraction string // exactly fracDigits ASCII digits
}

// parseAmount normalises s. A comma is accepted as the decimal
// separator. Fractional digits past the second are truncated, never
// rounded.
func parseAmount(s string) (amount, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return amount{}, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	var a amount
	switch s[0] {
	case '-':
		a.negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	s = strings.ReplaceAll(s, ",", ".")
	intPart, fracPart, hasSep := strings.Cut(s, ".")

	if hasSep {
		if intPart == "" && fracPart == "" {
			return amount{}, fmt.Errorf("%w: %q has no digits", ErrSyntax, raw)
		}
		if fracPart != "" && !allDigits(fracPart) {
			return amount{}, fmt.Errorf("%w: %q", ErrSyntax, raw)
		}
		if intPart == "" {
			intPart = "0"
		}
	}
	if !allDigits(intPart) {
		return amount{}, fmt.Errorf("%w: %q", ErrSyntax, raw)
	}

	a.integer = strings.TrimLeft(intPart, "0")
	if a.integer == "" {
		a.integer = "0"
	}

	if len(fracPart) > fracDigits {
		fracPart = fracPart[:fracDigits]
	}
	a.fraction = fracPart + strings.Repeat("0", fracDigits-len(fracPart))

	// "-0" and "-0.00" carry no sign.
	if a.negative && a.integer == "0" && allZeros(a.fraction) {
		a.negative = false
	}

	return a, nil
}

// fractionValue returns the numeric value of the two fraction digits.
func (a amount) fractionValue() uint64 {
	return uint64(a.fraction[0]-'0')*10 + uint64(a.fraction[1]-'0')
}

// allDigits reports whether s consists entirely of ASCII digit characters.
// An empty string returns false.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// allZeros reports whether s consists entirely of '0' characters.
func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
