// Command srcfacts reads a srcML document from stdin and prints a Markdown
// table of summary measures, grounded on srcFacts.cpp's main().
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/srcfacts/srcxml/internal/lexer"
	"github.com/srcfacts/srcxml/internal/srcfacts"
)

func main() {
	bufferSize := flag.Int("buffer-size", 0, "override the parser's internal buffer capacity (0 uses the default)")
	flag.Parse()

	start := time.Now()

	var opts []lexer.Option
	if *bufferSize > 0 {
		opts = append(opts, lexer.WithBufferSize(*bufferSize))
	}

	var stats srcfacts.Stats
	p := lexer.New(os.Stdin, &stats, opts...)
	if err := p.Parse(); err != nil {
		fmt.Fprintf(os.Stderr, "srcfacts: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start).Seconds()
	report := srcfacts.Report{Stats: stats, TotalBytes: p.TotalBytes(), ElapsedSecs: elapsed}
	if err := report.WriteMarkdown(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "srcfacts: %v\n", err)
		os.Exit(1)
	}

	slog.New(slog.NewTextHandler(os.Stderr, nil)).Info("parse complete",
		"elapsed_sec", elapsed,
		"mloc_per_sec", report.MLOCPerSecond(),
		"total_bytes", p.TotalBytes(),
	)
}
