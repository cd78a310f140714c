// Package report formats bench/demo output using golang.org/x/text/message
// for locale-aware number formatting of hit counts and areas; timings are
// printed in time.Duration's own String form.
package report

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/duskfall/swept2d/bench"
)

// Printer wraps a golang.org/x/text/message.Printer for a fixed locale.
type Printer struct {
	p *message.Printer
}

// NewPrinter builds a Printer for the given BCP 47 language tag (e.g.
// "en", "en-GB"). An unrecognized tag falls back to message.MatchLanguage's
// default behavior.
func NewPrinter(tag string) Printer {
	return Printer{p: message.NewPrinter(language.Make(tag))}
}

// WriteBenchResults writes a human-readable table of bench.Result rows to
// w, with locale-aware formatting of hit counts and timings.
func (pr Printer) WriteBenchResults(w io.Writer, results []bench.Result) error {
	var totalHits int
	for i, r := range results {
		if _, err := pr.p.Fprintf(w, "%d: kind=%s hits=%d took=%s\n", i, r.Query.Kind, r.Hits, r.Took); err != nil {
			return err
		}
		totalHits += r.Hits
	}
	_, err := pr.p.Fprintf(w, "total queries=%d total hits=%d\n", len(results), totalHits)
	return err
}

// FormatArea renders an overlap area (as used by the already-intersecting
// collision case's ti = -(overlap area)) with locale-aware grouping.
func (pr Printer) FormatArea(area float64) string {
	return pr.p.Sprintf("%.4f", area)
}
