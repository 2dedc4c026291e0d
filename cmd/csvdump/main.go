package main

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"

	"csvfileiterator/pkg/filters"
	"csvfileiterator/pkg/iterator"
)

var (
	filePath  string
	delimiter string
	enclosure string
	escape    string
	encoding  string
	header    bool
	trim      bool
	renames   []string
	limit     int
	logPath   string
	verbose   bool
	logCfg    slog.HandlerOptions = slog.HandlerOptions{
		Level: slog.LevelError,
	}
)

func cmdLineParse() {
	pflag.StringVarP(&filePath, "file", "f", "", "path to the CSV file to dump")
	pflag.StringVarP(&delimiter, "delimiter", "d", ",", "field delimiter (one character)")
	pflag.StringVarP(&enclosure, "enclosure", "q", `"`, "field enclosure (one character)")
	pflag.StringVarP(&escape, "escape", "e", `\`, "escape character; empty disables escaping")
	pflag.StringVar(&encoding, "encoding", "", "input encoding: windows-1252 or latin-1; default UTF-8")
	pflag.BoolVar(&header, "header", false, "treat the first row as a header")
	pflag.BoolVar(&trim, "trim", false, "trim whitespace around every value")
	pflag.StringSliceVar(&renames, "rename", nil, "header renames as old=new (repeatable)")
	pflag.IntVarP(&limit, "limit", "n", 0, "stop after this many rows; 0 means all")
	pflag.StringVarP(&logPath, "log", "l", "", "path to log file. Default is stdout")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) logging")
	pflag.Parse()
}

func lookupEncoding(name string) (*charmap.Charmap, error) {
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

func renameMap(pairs []string) map[string]string {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		old, with, ok := strings.Cut(p, "=")
		if !ok {
			log.Fatalf("invalid --rename %q, want old=new", p)
		}
		m[old] = with
	}
	return m
}

func main() {
	cmdLineParse()

	if filePath == "" {
		log.Fatal("Please provide a CSV file path using --file flag")
	}

	if verbose {
		logCfg.Level = slog.LevelDebug
	}
	var output = os.Stdout
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file %q: %v", logPath, err)
		}
		defer f.Close()
		output = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(output, &logCfg)))

	opts := []iterator.Option{
		iterator.WithDelimiter(delimiter),
		iterator.WithEnclosure(enclosure),
		iterator.WithEscape(escape),
	}
	cm, err := lookupEncoding(encoding)
	if err != nil {
		log.Fatalf("failed to resolve encoding: %v", err)
	}
	if cm != nil {
		opts = append(opts, iterator.WithEncoding(cm))
	}

	it, err := iterator.New(filePath, opts...)
	if err != nil {
		log.Fatalf("failed to open CSV file %q: %v", filePath, err)
	}
	defer it.Close()

	if trim {
		it.SetValueFilter(filters.TrimSpace)
	}
	if header {
		it.UseFirstRowAsHeader(renameMap(renames))
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	printed := 0
	for !it.AtEnd() {
		if limit > 0 && printed >= limit {
			break
		}
		row := it.Current()
		parts := make([]string, 0, len(row))
		for _, name := range it.ColumnOrder() {
			parts = append(parts, fmt.Sprintf("%s=%s", name, row[name]))
		}
		fmt.Fprintln(w, strings.Join(parts, "\t"))
		printed++
		it.Advance()
	}
	slog.Debug("dump finished", slog.Int("rows", printed))
}
