// Package report summarizes scan output for downstream consumers. It
// reads the amber record table only and never reaches back into the
// pipeline.
package report

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ambertools/amberscan/internal/scan"
)

// Summary holds length statistics over the candidate extensions of
// suppressed records.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Median float64
	Min    int
	Max    int
}

// ExtensionLengths returns the extension length of every record with an
// assembled suppression product, in record order.
func ExtensionLengths(records []*scan.AmberRecord) []int {
	var lengths []int
	for _, r := range records {
		if r.Status == scan.StatusOK {
			lengths = append(lengths, len(r.Extension()))
		}
	}
	return lengths
}

// Summarize computes length statistics over suppressed records.
// Returns a zero Summary when no record carries an extension.
func Summarize(records []*scan.AmberRecord) Summary {
	lengths := ExtensionLengths(records)
	if len(lengths) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(lengths))
	mn, mx := lengths[0], lengths[0]
	for i, l := range lengths {
		xs[i] = float64(l)
		if l < mn {
			mn = l
		}
		if l > mx {
			mx = l
		}
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(xs, nil)
	return Summary{
		Count:  len(lengths),
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    mn,
		Max:    mx,
	}
}

// FilterMinExtension returns the suppressed records whose extension is
// at least minLen residues long.
func FilterMinExtension(records []*scan.AmberRecord, minLen int) []*scan.AmberRecord {
	var out []*scan.AmberRecord
	for _, r := range records {
		if r.Status == scan.StatusOK && len(r.Extension()) >= minLen {
			out = append(out, r)
		}
	}
	return out
}

// WriteSummary writes a human-readable summary of one scan.
func WriteSummary(w io.Writer, res *scan.Result) {
	c := res.Counts
	fmt.Fprintf(w, "records parsed:        %d\n", c.Parsed)
	fmt.Fprintf(w, "  malformed header:    %d\n", c.MalformedHeader)
	fmt.Fprintf(w, "  frame inconsistent:  %d\n", c.FrameInconsistent)
	fmt.Fprintf(w, "  unknown stop codon:  %d\n", c.UnknownStop)
	fmt.Fprintf(w, "stop codon classes:    TAG=%d TAA=%d TGA=%d\n", c.Amber, c.Ochre, c.Opal)
	fmt.Fprintf(w, "amber outcomes:\n")
	fmt.Fprintf(w, "  suppressed:          %d\n", c.Suppressed)
	fmt.Fprintf(w, "  no 3'UTR:            %d\n", c.No3UTR)
	fmt.Fprintf(w, "  no internal stop:    %d\n", c.NoInternalStop)
	fmt.Fprintf(w, "  translation failed:  %d\n", c.TranslationFailed)

	if s := Summarize(res.Amber); s.Count > 0 {
		fmt.Fprintf(w, "extension length:      n=%d mean=%.1f sd=%.1f median=%.0f min=%d max=%d\n",
			s.Count, s.Mean, s.StdDev, s.Median, s.Min, s.Max)
	}
}
