// Command sumwords prints monetary amounts in Russian words.
//
//	sumwords 123.12              # сто двадцать три рубля 12 копеек
//	sumwords -whole 21000        # двадцать одна тысяча рублей
//	sumwords -currency UAH 2.5   # две гривны 50 копеек
//	echo 1000 | sumwords         # одна тысяча рублей 00 копеек
//
// With no amount arguments, amounts are read from stdin one per line.
// Defaults come from a YAML file (-config or SUMWORDS_CONFIG) and the
// SUMWORDS_CURRENCY and SUMWORDS_WHOLE variables; a .env file in the
// working directory is loaded first. Flags override everything.
//
// Exit status is 1 if any amount could not be converted.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/nook-ru/sum-in-words/sumwords"
)

const appName = "sumwords"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "%s: load .env: %v\n", appName, err)
		os.Exit(1)
	}
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := logharbour.NewLogger(logharbour.NewLoggerContext(logharbour.DefaultPriority), appName, stderr)

	fset := flag.NewFlagSet(appName, flag.ContinueOnError)
	fset.SetOutput(stderr)
	configPath := fset.String("config", getenv(envConfig), "path to YAML config file")
	currency := fset.String("currency", "", "ISO 4217 currency code (default "+defaultCurrency+")")
	whole := fset.Bool("whole", false, "omit the fractional part")
	list := fset.Bool("list", false, "list supported currencies and exit")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, code := range sumwords.Currencies() {
			fmt.Fprintln(stdout, code)
		}
		return 0
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			logger.Error(err).LogActivity("config load failed", map[string]any{"path": *configPath})
			return 1
		}
	}
	if err := applyEnv(&cfg, getenv); err != nil {
		logger.Error(err).LogActivity("invalid environment", nil)
		return 1
	}
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "currency":
			cfg.Currency = *currency
		case "whole":
			cfg.Whole = *whole
		}
	})

	if _, ok := sumwords.LookupCurrency(cfg.Currency); !ok {
		logger.Error(fmt.Errorf("%w: %q", sumwords.ErrUnknownCurrency, cfg.Currency)).
			LogActivity("unsupported currency", map[string]any{"supported": sumwords.Currencies()})
		return 1
	}

	amounts := fset.Args()
	if len(amounts) == 0 {
		var err error
		amounts, err = readLines(stdin)
		if err != nil {
			logger.Error(err).LogActivity("reading stdin failed", nil)
			return 1
		}
	}

	failed := 0
	for _, a := range amounts {
		text, err := sumwords.ConvertCurrency(a, cfg.Currency, cfg.Whole)
		if err != nil {
			failed++
			logger.Error(err).LogActivity("conversion failed", map[string]any{"amount": a})
			continue
		}
		fmt.Fprintln(stdout, text)
	}

	logger.Info().LogActivity("amounts processed", map[string]any{
		"total":    len(amounts),
		"failed":   failed,
		"currency": cfg.Currency,
	})

	if failed > 0 {
		return 1
	}
	return 0
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
