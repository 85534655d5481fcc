package sumwords

import (
	"strings"
	"sync"
	"testing"

	"github.com/govalues/decimal"
)

// TestConcurrentSafety verifies all functions are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			Convert("123.12", false)
			Convert("0", true)
			Convert("-21000", true)
			ConvertCurrency("1001", "UAH", false)
			ConvertDecimal(decimal.MustParse("42.42"), false)
			ConvertFloat(123.12, true)
			LookupCurrency("eur")
			Currencies()
		}()
	}

	wg.Wait()
}

// TestConvertMalformed verifies Convert handles malformed input without panicking.
func TestConvertMalformed(t *testing.T) {
	malformed := []string{
		"",
		" ",
		".",
		"..",
		",,",
		"-.",
		"+-1",
		"1..2",
		"1.2.3",
		"NaN",
		"Inf",
		"0x1F",
		"1_000",
		"\xff\xfe",
		string([]byte{0x00}),
		strings.Repeat("9", 10000),
		strings.Repeat("0", 10000),
		"1." + strings.Repeat("9", 10000),
	}

	for _, input := range malformed {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Convert(%q) panicked: %v", input, r)
				}
			}()
			_, _ = Convert(input, false)
		})
	}
}
