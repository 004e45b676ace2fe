// Command identity reads XML from stdin and writes an equivalent
// serialization to stdout, grounded on identity.cpp's registered-callback
// transform.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/srcfacts/srcxml/internal/identity"
	"github.com/srcfacts/srcxml/internal/lexer"
)

func main() {
	bufferSize := flag.Int("buffer-size", 0, "override the parser's internal buffer capacity (0 uses the default)")
	flag.Parse()

	var opts []lexer.Option
	if *bufferSize > 0 {
		opts = append(opts, lexer.WithBufferSize(*bufferSize))
	}

	printer := identity.NewPrinter(os.Stdout)
	p := lexer.New(os.Stdin, printer, opts...)

	parseErr := p.Parse()
	flushErr := printer.Flush()

	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "identity: %v\n", parseErr)
		os.Exit(1)
	}
	if flushErr != nil {
		fmt.Fprintf(os.Stderr, "identity: %v\n", flushErr)
		os.Exit(1)
	}
}
