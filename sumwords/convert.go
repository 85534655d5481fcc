// Unexported conversion functions for Russian amount-to-text conversion.
package sumwords

import (
	"fmt"
	"strings"

	"github.com/nook-ru/sum-in-words/plural"
)

// growWords is the estimated word count of a typical conversion.
const growWords = 16

// convert renders a in words using cur for the units scale and the
// fraction.
func convert(a amount, cur Currency, whole bool) (string, error) {
	groups := splitGroups(a.integer)
	top := len(groups) - 1
	if top > maxScale {
		return "", fmt.Errorf("%w: %d integer digits, at most %d supported",
			ErrOverflow, len(a.integer), maxDigits)
	}

	words := make([]string, 0, growWords)
	if a.negative {
		words = append(words, wordMinus)
	}
	lead := len(words)

	for i, g := range groups {
		idx := top - i
		sc := scaleWord(idx, cur)
		h, r := groupDigits(g)

		if h > 0 {
			words = append(words, hundreds[h])
		}
		switch {
		case r > 19:
			words = append(words, tens[r/10])
			if r%10 > 0 {
				words = append(words, units[sc.Gender][r%10])
			}
		case r >= 10:
			words = append(words, teens[r-10])
		case r > 0:
			words = append(words, units[sc.Gender][r])
		}

		if h == 0 && r == 0 && idx > 0 && !noDigitsAfter(groups, i+1) {
			// Empty group in the middle: no scale word.
			continue
		}
		if idx == 0 && len(words) == lead {
			words = append(words, wordZero)
		}
		if noDigitsAfter(groups, i) {
			words = append(words, cur.Major.Forms.Pick(plural.Many))
			break
		}
		words = append(words, plural.Select(uint64(r), sc.Forms))
	}

	if !whole {
		words = append(words, a.fraction, plural.Select(a.fractionValue(), cur.Minor.Forms))
	}

	return join(words), nil
}

// scaleWord returns the word for scale idx. Callers must check idx
// against maxScale.
func scaleWord(idx int, cur Currency) Word {
	if idx == 0 {
		return cur.Major
	}
	return scales[idx]
}

// splitGroups splits a digit string into groups of three counting from
// the right. The first group holds 1–3 digits.
func splitGroups(digits string) []string {
	n := (len(digits) + groupSize - 1) / groupSize
	groups := make([]string, n)
	head := len(digits) - (n-1)*groupSize
	groups[0] = digits[:head]
	for i := 1; i < n; i++ {
		start := head + (i-1)*groupSize
		groups[i] = digits[start : start+groupSize]
	}
	return groups
}

// groupDigits returns the hundreds digit and the value of the last two
// digits of a group of 1–3 digits.
func groupDigits(g string) (h, r int) {
	var v int
	for i := 0; i < len(g); i++ {
		v = v*10 + int(g[i]-'0')
	}
	return v / 100, v % 100
}

// noDigitsAfter reports whether groups[i:] are all zero.
// An index past the end counts as all zero.
func noDigitsAfter(groups []string, i int) bool {
	for _, g := range groups[min(i, len(groups)):] {
		if !allZeros(g) {
			return false
		}
	}
	return true
}

// join joins words with single spaces, skipping empty words.
func join(words []string) string {
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return b.String()
}
