package sumwords

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nook-ru/sum-in-words/data"
	"github.com/nook-ru/sum-in-words/plural"
)

// Gender is the grammatical gender of a counted word. It selects the
// form of "one" and "two" in the group that counts it.
type Gender int

const (
	Masculine Gender = iota // один, два
	Feminine                // одна, две
	Neuter                  // одно, два
)

// String returns the lowercase English name of the gender.
func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// UnmarshalText parses the names returned by String.
func (g *Gender) UnmarshalText(text []byte) error {
	switch string(text) {
	case "masculine":
		*g = Masculine
	case "feminine":
		*g = Feminine
	case "neuter":
		*g = Neuter
	default:
		return fmt.Errorf("sumwords: unknown gender %q", text)
	}
	return nil
}

// Word is a counted noun: its three plural forms and its gender.
type Word struct {
	Forms  plural.Forms `yaml:"forms"`
	Gender Gender       `yaml:"gender"`
}

// Currency names the major unit (рубль) and the minor unit (копейка).
type Currency struct {
	Code  string `yaml:"code"`
	Major Word   `yaml:"major"`
	Minor Word   `yaml:"minor"`
}

// defaultCode is the currency used by Convert, ConvertDecimal and ConvertFloat.
const defaultCode = "RUB"

// Parsed currency table, populated by init().
var (
	currencies    map[string]Currency
	currencyCodes []string // sorted
	rouble        Currency
)

func init() {
	var list []Currency
	if err := yaml.Unmarshal(data.Currencies, &list); err != nil {
		panic("sumwords: parsing embedded currency table: " + err.Error())
	}

	currencies = make(map[string]Currency, len(list))
	for _, c := range list {
		if c.Code == "" || slices.Contains(c.Major.Forms[:], "") || slices.Contains(c.Minor.Forms[:], "") {
			panic(fmt.Sprintf("sumwords: incomplete currency entry %+v", c))
		}
		if _, dup := currencies[c.Code]; dup {
			panic("sumwords: duplicate currency " + c.Code)
		}
		currencies[c.Code] = c
		currencyCodes = append(currencyCodes, c.Code)
	}
	slices.Sort(currencyCodes)

	var ok bool
	if rouble, ok = currencies[defaultCode]; !ok {
		panic("sumwords: embedded currency table has no " + defaultCode)
	}
}

// LookupCurrency returns the built-in currency with the given ISO 4217
// code. The lookup ignores case and surrounding whitespace.
func LookupCurrency(code string) (Currency, bool) {
	c, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Currencies returns the codes of all built-in currencies in sorted order.
func Currencies() []string {
	return slices.Clone(currencyCodes)
}
