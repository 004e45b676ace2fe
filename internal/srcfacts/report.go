package srcfacts

import (
	"fmt"
	"io"
	"math"
)

// Report holds the figures srcFacts.cpp prints alongside the accumulated
// Stats: total bytes consumed and wall-clock elapsed time, both unknown to
// Stats itself since they come from the parser and the caller's clock.
type Report struct {
	Stats       Stats
	TotalBytes  int64
	ElapsedSecs float64
}

// WriteMarkdown renders the measures table the same layout as
// srcFacts.cpp's std::cout sequence: a title line naming the URL, then one
// right-aligned row per measure. valueWidth mirrors
// `log10(totalBytes) * 1.3 + 1`, floored at 5.
func (r Report) WriteMarkdown(w io.Writer) error {
	width := 5
	if r.TotalBytes > 0 {
		if computed := int(math.Log10(float64(r.TotalBytes))*1.3 + 1); computed > width {
			width = computed
		}
	}

	rows := []struct {
		label string
		value int
	}{
		{"srcML bytes", int(r.TotalBytes)},
		{"Characters", r.Stats.TextSize},
		{"Files", r.Stats.Files()},
		{"LOC", r.Stats.LOC},
		{"Classes", r.Stats.ClassCount},
		{"Functions", r.Stats.FunctionCount},
		{"Declarations", r.Stats.DeclCount},
		{"Expressions", r.Stats.ExprCount},
		{"Comments", r.Stats.CommentCount},
		{"Returns", r.Stats.ReturnCount},
		{"Lit Strings", r.Stats.LiteralStrCount},
		{"Line Comments", r.Stats.LineCommentCount},
	}

	if _, err := fmt.Fprintf(w, "# srcFacts: %s\n", r.Stats.URL); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "| Measure       | %*s |\n", width, "Value"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "|:--------------|-%s:|\n", dashes(width+1)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "| %-13s | %*d |\n", row.label, width, row.value); err != nil {
			return err
		}
	}
	return nil
}

func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}

// MLOCPerSecond mirrors srcFacts.cpp's throughput figure, reported on
// stderr alongside ElapsedSecs.
func (r Report) MLOCPerSecond() float64 {
	if r.ElapsedSecs <= 0 {
		return 0
	}
	return float64(r.Stats.LOC) / r.ElapsedSecs / 1_000_000
}
