// Package output provides scan result formatters.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ambertools/amberscan/internal/scan"
)

// TabWriter writes amber readthrough records in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"transcript_id",
			"full_sequence",
			"cds_start",
			"cds_end",
			"stop_codon",
			"has_3utr",
			"status",
			"extension_segments",
			"suppressed_sequence",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single amber record.
func (tw *TabWriter) Write(rec *scan.AmberRecord) error {
	has3UTR := "false"
	if rec.Has3UTR() {
		has3UTR = "true"
	}

	segments := "-"
	if len(rec.Segments) > 0 {
		segments = strings.Join(rec.Segments, ";")
	}

	suppressed := "-"
	if rec.Suppressed != "" {
		suppressed = rec.Suppressed
	}

	_, err := fmt.Fprintf(tw.w, "%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\t%s\n",
		rec.ID,
		rec.Sequence,
		rec.CDSStart,
		rec.CDSEnd,
		rec.StopCodon,
		has3UTR,
		rec.Status,
		segments,
		suppressed,
	)
	return err
}

// WriteAll writes the header and every record, then flushes.
func (tw *TabWriter) WriteAll(records []*scan.AmberRecord) error {
	if err := tw.WriteHeader(); err != nil {
		return err
	}
	for _, rec := range records {
		if err := tw.Write(rec); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Flush flushes buffered output.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
