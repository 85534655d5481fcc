package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ru"

	"github.com/nook-ru/sum-in-words/plural"
	"github.com/nook-ru/sum-in-words/sumwords"
)

const (
	chunkSize    = 10_000 // amounts per worker task
	maxWorkers   = 4
	expectedArgs = 3
	maxLogged    = 10 // failures printed per kind
	cldrModulus  = 1_000_000
)

var rouble = plural.Forms{"рубль", "рубля", "рублей"}

// cldrCategory maps the CLDR integer plural rules for ru to categories.
var cldrCategory = map[locales.PluralRule]plural.Category{
	locales.PluralRuleOne:  plural.One,
	locales.PluralRuleFew:  plural.Few,
	locales.PluralRuleMany: plural.Many,
}

type Stats struct {
	mu             sync.Mutex
	rendered       int
	convertFail    int
	spacingFail    int
	unstableFail   int
	agreementFail  int
	fractionFail   int
	logged         map[string]int
	categoryCounts map[plural.Category]int
}

type chunkState struct {
	rendered       int
	convertFail    int
	spacingFail    int
	unstableFail   int
	agreementFail  int
	fractionFail   int
	categoryCounts map[plural.Category]int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <from> <to>\n", os.Args[0])
		os.Exit(1)
	}

	from, err := strconv.ParseUint(os.Args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing <from>: %v\n", err)
		os.Exit(1)
	}
	to, err := strconv.ParseUint(os.Args[2], 10, 64)
	if err != nil || to < from {
		fmt.Fprintf(os.Stderr, "Error parsing <to>: must be an integer >= %d\n", from)
		os.Exit(1)
	}

	stats := &Stats{
		logged:         make(map[string]int),
		categoryCounts: make(map[plural.Category]int),
	}

	checkOverflow()

	fmt.Fprintf(os.Stderr, "Rendering amounts %d..%d\n", from, to)
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for lo := from; ; lo += chunkSize {
		hi := to
		if to-lo >= chunkSize {
			hi = lo + chunkSize - 1
		}
		wg.Add(1)
		semaphore <- struct{}{}
		go func(lo, hi uint64) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processChunk(lo, hi, stats)
		}(lo, hi)
		if hi == to {
			break
		}
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if stats.failures() > 0 {
		os.Exit(1)
	}
}

// checkOverflow verifies the boundary of the scale table.
func checkOverflow() {
	largest := strings.Repeat("9", 36)
	if _, err := sumwords.Convert(largest, true); err != nil {
		fmt.Fprintf(os.Stderr, "OVERFLOW_FAIL: %s: %v\n", largest, err)
		os.Exit(1)
	}
	tooLarge := "1" + strings.Repeat("0", 36)
	if _, err := sumwords.Convert(tooLarge, true); !errors.Is(err, sumwords.ErrOverflow) {
		fmt.Fprintf(os.Stderr, "OVERFLOW_FAIL: %s: got %v, want ErrOverflow\n", tooLarge, err)
		os.Exit(1)
	}
}

func processChunk(lo, hi uint64, stats *Stats) {
	tr := ru.New()
	cs := &chunkState{
		categoryCounts: make(map[plural.Category]int),
	}

	for n := lo; ; n++ {
		cs.check(n, tr, stats)
		if n == hi {
			break
		}
	}

	mergeChunkState(cs, stats)
}

func (cs *chunkState) check(n uint64, tr locales.Translator, stats *Stats) {
	s := strconv.FormatUint(n, 10)
	text, err := sumwords.Convert(s, true)
	if err != nil {
		cs.convertFail++
		stats.logFailure("CONVERT_FAIL", "%s: %v", s, err)
		return
	}
	cs.rendered++

	if strings.Contains(text, "  ") || strings.TrimSpace(text) != text {
		cs.spacingFail++
		stats.logFailure("SPACING_FAIL", "%s: %q", s, text)
	}

	if again, _ := sumwords.Convert(s, true); again != text {
		cs.unstableFail++
		stats.logFailure("UNSTABLE_FAIL", "%s: %q then %q", s, text, again)
	}

	rule := tr.CardinalPluralRule(float64(n%cldrModulus), 0)
	want := cldrCategory[rule]
	last := text[strings.LastIndexByte(text, ' ')+1:]
	if last != rouble.Pick(want) {
		cs.agreementFail++
		stats.logFailure("AGREEMENT_FAIL", "%s: %q ends in %q, CLDR %v wants %q", s, text, last, rule, rouble.Pick(want))
	}
	cs.categoryCounts[want]++

	frac := fmt.Sprintf("%02d", n%100)
	withFrac, err := sumwords.Convert(s+"."+frac, false)
	wantSuffix := text + " " + frac + " " + plural.Select(n%100, plural.Forms{"копейка", "копейки", "копеек"})
	if err != nil || withFrac != wantSuffix {
		cs.fractionFail++
		stats.logFailure("FRACTION_FAIL", "%s.%s: %q, want %q", s, frac, withFrac, wantSuffix)
	}
}

// logFailure prints the first maxLogged failures of each kind.
func (s *Stats) logFailure(kind, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logged[kind]++
	if s.logged[kind] > maxLogged {
		return
	}
	fmt.Fprintf(os.Stderr, kind+": "+format+"\n", args...)
}

func (s *Stats) failures() int {
	return s.convertFail + s.spacingFail + s.unstableFail + s.agreementFail + s.fractionFail
}

func mergeChunkState(cs *chunkState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.rendered += cs.rendered
	stats.convertFail += cs.convertFail
	stats.spacingFail += cs.spacingFail
	stats.unstableFail += cs.unstableFail
	stats.agreementFail += cs.agreementFail
	stats.fractionFail += cs.fractionFail

	for c, count := range cs.categoryCounts {
		stats.categoryCounts[c] += count
	}
}

func printStats(stats *Stats) {
	fmt.Printf("Amounts rendered:        %d\n", stats.rendered)
	fmt.Printf("Convert FAIL:            %d\n", stats.convertFail)
	fmt.Printf("Spacing FAIL:            %d\n", stats.spacingFail)
	fmt.Printf("Determinism FAIL:        %d\n", stats.unstableFail)
	fmt.Printf("Agreement FAIL:          %d\n", stats.agreementFail)
	fmt.Printf("Fraction FAIL:           %d\n", stats.fractionFail)
	fmt.Println()

	total := 0
	for _, count := range stats.categoryCounts {
		total += count
	}

	fmt.Println("Closing word distribution:")
	printCategoryStats(plural.One, stats.categoryCounts, total)
	printCategoryStats(plural.Few, stats.categoryCounts, total)
	printCategoryStats(plural.Many, stats.categoryCounts, total)
}

func printCategoryStats(c plural.Category, counts map[plural.Category]int, total int) {
	count := counts[c]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", rouble.Pick(c)+":", count, percentage)
}
