package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"

	"csvfileiterator/pkg/filters"
	"csvfileiterator/pkg/iterator"
)

var (
	filePath string
	column   string
	win1252  bool
	verbose  bool

	sumCtx apd.Context = apd.Context{
		Precision:   100,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}

	avgCtx apd.Context = apd.Context{
		Precision:   50,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven, // Banker's rounding for final result
	}
)

func cmdLineParse() {
	pflag.StringVarP(&filePath, "file", "f", "", "path to the CSV file to process")
	pflag.StringVarP(&column, "column", "c", "Price", "name of the column to average")
	pflag.BoolVar(&win1252, "windows-1252", false, "decode the input as Windows-1252")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.Parse()
}

func main() {
	cmdLineParse()

	if filePath == "" {
		log.Fatal("Please provide a CSV file path using --file flag")
	}

	logCfg := slog.HandlerOptions{Level: slog.LevelError}
	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &logCfg)))

	var opts []iterator.Option
	if win1252 {
		opts = append(opts, iterator.WithEncoding(charmap.Windows1252))
	}

	it, err := iterator.New(filePath, opts...)
	if err != nil {
		log.Fatalf("failed to open CSV file %q: %v", filePath, err)
	}
	defer it.Close()

	it.UseFirstRowAsHeader(nil)
	found := false
	for _, name := range it.GetColumnNames() {
		if name == column {
			found = true
			break
		}
	}
	if !found {
		log.Fatalf("column %q not found in CSV header", column)
	}

	// Normalize values after header resolution so column names stay raw.
	it.SetValueFilter(filters.Chain(filters.TrimSpace, filters.NormalizeDecimal))

	sum := apd.New(0, 0)
	count := 0
	for !it.AtEnd() {
		row := it.Current()
		value, _, err := apd.NewFromString(row[column])
		if err != nil {
			slog.Warn("skipping row with non-numeric value",
				slog.Int("row", it.CurrentIndex()),
				slog.String("value", row[column]),
			)
			it.Advance()
			continue
		}
		if _, err := sumCtx.Add(sum, sum, value); err != nil {
			log.Fatalf("failed to accumulate sum: %v", err)
		}
		count++
		it.Advance()
	}

	if count == 0 {
		fmt.Println("No valid records found")
		return
	}
	avg := apd.New(0, 0)
	if _, err := avgCtx.Quo(avg, sum, apd.New(int64(count), 0)); err != nil {
		log.Fatalf("failed to compute average: %v", err)
	}
	fmt.Printf("Processed %d records\n", count)
	fmt.Printf("Average %s: %s\n", column, avg.String())
}
