package main

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"csvfileiterator/pkg/iterator"
)

var (
	filePath  string
	outPath   string
	delimiter string
	header    bool
	verbose   bool
)

func cmdLineParse() {
	pflag.StringVarP(&filePath, "file", "f", "", "path to the CSV file to convert")
	pflag.StringVarP(&outPath, "out", "o", "", "path to the JSONL output. Default is stdout")
	pflag.StringVarP(&delimiter, "delimiter", "d", ",", "field delimiter (one character)")
	pflag.BoolVar(&header, "header", true, "treat the first row as a header")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	it, err := iterator.New(filePath, iterator.WithDelimiter(delimiter))
	if err != nil {
		log.Fatalf("failed to open CSV file %q: %v", filePath, err)
	}
	defer it.Close()

	if header {
		it.UseFirstRowAsHeader(nil)
	}

	var output = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("failed to create output file %q: %v", outPath, err)
		}
		defer f.Close()
		output = f
	}

	rowsCh := make(chan map[string]string, 1024)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(rowsCh)
		for !it.AtEnd() {
			row := it.Current()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rowsCh <- row:
			}
			it.Advance()
		}
		return nil
	})
	eg.Go(func() error {
		w := bufio.NewWriter(output)
		defer w.Flush()
		written := 0
		for row := range rowsCh {
			b, err := sonic.Marshal(row)
			if err != nil {
				slog.Warn("skipping row that failed to marshal", slog.Any("error", err))
				continue
			}
			if _, err := w.Write(append(b, '\n')); err != nil {
				return err
			}
			written++
		}
		slog.Debug("conversion finished", slog.Int("rows", written))
		return nil
	})

	if err := eg.Wait(); err != nil {
		log.Fatalf("conversion failed: %v", err)
	}
}
