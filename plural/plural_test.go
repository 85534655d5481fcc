// Tests for the plural package: Of, Select, SelectWithNumber.
package plural

import (
	"fmt"
	"testing"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ru"
)

var rouble = Forms{"рубль", "рубля", "рублей"}

func TestOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input uint64
		want  Category
	}{
		{"zero", 0, Many},
		{"one", 1, One},
		{"two", 2, Few},
		{"four", 4, Few},
		{"five", 5, Many},
		{"ten", 10, Many},
		{"eleven", 11, Many},
		{"twelve", 12, Many},
		{"fourteen", 14, Many},
		{"nineteen", 19, Many},
		{"twenty", 20, Many},
		{"twenty-one", 21, One},
		{"twenty-two", 22, Few},
		{"twenty-five", 25, Many},
		{"hundred", 100, Many},
		{"hundred one", 101, One},
		{"hundred eleven", 111, Many},
		{"hundred twelve", 112, Many},
		{"hundred twenty-three", 123, Few},
		{"thousand one", 1001, One},
		{"max uint64", 18446744073709551615, Many},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Of(tt.input)
			if got != tt.want {
				t.Errorf("Of(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOfRule(t *testing.T) {
	t.Parallel()

	for n := uint64(0); n <= 10000; n++ {
		lastTwo, last := n%100, n%10
		var want Category
		switch {
		case lastTwo >= 5 && lastTwo <= 19:
			want = Many
		case last == 1:
			want = One
		case last >= 2 && last <= 4:
			want = Few
		default:
			want = Many
		}
		if got := Of(n); got != want {
			t.Fatalf("Of(%d) = %v, want %v", n, got, want)
		}
	}
}

// TestOfMatchesCLDR cross-checks Of against the CLDR cardinal rules
// generated for the ru locale.
func TestOfMatchesCLDR(t *testing.T) {
	t.Parallel()

	tr := ru.New()
	want := map[locales.PluralRule]Category{
		locales.PluralRuleOne:  One,
		locales.PluralRuleFew:  Few,
		locales.PluralRuleMany: Many,
	}

	for n := uint64(0); n <= 10000; n++ {
		rule := tr.CardinalPluralRule(float64(n), 0)
		c, ok := want[rule]
		if !ok {
			t.Fatalf("ru CardinalPluralRule(%d) = %v, not an integer category", n, rule)
		}
		if got := Of(n); got != c {
			t.Errorf("Of(%d) = %v, CLDR says %v", n, got, c)
		}
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input uint64
		want  string
	}{
		{0, "рублей"},
		{1, "рубль"},
		{3, "рубля"},
		{7, "рублей"},
		{13, "рублей"},
		{21, "рубль"},
		{23, "рубля"},
		{111, "рублей"},
		{1_000_002, "рубля"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(fmt.Sprintf("%d", tt.input), func(t *testing.T) {
			t.Parallel()
			got := Select(tt.input, rouble)
			if got != tt.want {
				t.Errorf("Select(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSelectWithNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input uint64
		want  string
	}{
		{0, "0 рублей"},
		{1, "1 рубль"},
		{42, "42 рубля"},
		{115, "115 рублей"},
	}

	for _, tt := range cases {
		got := SelectWithNumber(tt.input, rouble)
		if got != tt.want {
			t.Errorf("SelectWithNumber(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	cases := map[Category]string{
		One:          "one",
		Few:          "few",
		Many:         "many",
		Category(42): "Category(42)",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("Category(%d).String() = %q, want %q", int(c), got, want)
		}
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	if got := rouble.Pick(Few); got != "рубля" {
		t.Errorf("Pick(Few) = %q, want %q", got, "рубля")
	}
}

func ExampleSelect() {
	fmt.Println(Select(23, Forms{"рубль", "рубля", "рублей"}))
	// Output: рубля
}

func ExampleSelectWithNumber() {
	fmt.Println(SelectWithNumber(5, Forms{"копейка", "копейки", "копеек"}))
	// Output: 5 копеек
}

func BenchmarkOf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Of(2300095)
	}
}

func BenchmarkSelect(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Select(2300095, rouble)
	}
}
