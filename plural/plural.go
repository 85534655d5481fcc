// Package plural selects Russian plural forms for a count.
//
// Russian nouns take one of three forms after a numeral:
//
//   - One:  1, 21, 31, 101 … ("рубль")
//   - Few:  2–4, 22–24, 102–104 … ("рубля")
//   - Many: 0, 5–20, 25–30, 111–114 … ("рублей")
//
// The last two digits decide: 11–14 (and the whole 5–19 range) always take
// Many regardless of the last digit.
//
// All functions are safe for concurrent use by multiple goroutines.
package plural

import "strconv"

// Category is a Russian cardinal plural category.
type Category int

const (
	// One is the singular form used after 1, 21, 31 …
	One Category = iota

	// Few is the paucal form used after 2–4, 22–24 …
	Few

	// Many is the genitive plural used after 0, 5–20, 25–30 …
	Many
)

// String returns the CLDR name of the category.
func (c Category) String() string {
	switch c {
	case One:
		return "one"
	case Few:
		return "few"
	case Many:
		return "many"
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// Forms holds the three inflected forms of a noun, indexed by Category:
// {One, Few, Many}, e.g. {"рубль", "рубля", "рублей"}.
type Forms [3]string

// Pick returns the form for category c.
func (f Forms) Pick(c Category) string {
	return f[c]
}

// byLastDigit maps min(n%10, 5) to a category.
var byLastDigit = [6]Category{Many, One, Few, Few, Few, Many}

// Of returns the plural category for n.
func Of(n uint64) Category {
	lastTwo := n % 100
	if lastTwo > 4 && lastTwo < 20 {
		return Many
	}
	return byLastDigit[min(n%10, 5)]
}

// Select returns the form of forms that agrees with n.
//
//	Select(23, Forms{"рубль", "рубля", "рублей"}) // "рубля"
func Select(n uint64, forms Forms) string {
	return forms[Of(n)]
}

// SelectWithNumber is like Select but prefixes the decimal numeral:
//
//	SelectWithNumber(5, Forms{"рубль", "рубля", "рублей"}) // "5 рублей"
func SelectWithNumber(n uint64, forms Forms) string {
	return strconv.FormatUint(n, 10) + " " + Select(n, forms)
}
