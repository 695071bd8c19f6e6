package fasta

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedHeader is returned when a header carries no usable CDS
// annotation. Affected records are excluded from the scan, not fatal.
var ErrMalformedHeader = fmt.Errorf("malformed header")

// Annotation is the positional metadata recovered from a GENCODE-style
// header. CDS bounds are 0-based half-open into the record sequence.
type Annotation struct {
	TranscriptID string
	CDSStart     int
	CDSEnd       int
}

// ParseHeader extracts the transcript ID and CDS bounds from a
// pipe-delimited GENCODE header, e.g.
//
//	ENST00000456328.2|ENSG00000290825.1|...|CDS:201-459|UTR3:460-1657|
//
// The transcript ID is the first field, verbatim. Exactly one field must
// carry a CDS:<start>-<end> range (1-based inclusive, per GENCODE
// convention); it is converted to 0-based half-open form. Zero or
// multiple CDS fields, non-numeric bounds, and empty ranges all fail
// with ErrMalformedHeader.
func ParseHeader(header string) (*Annotation, error) {
	fields := strings.Split(header, "|")

	id := fields[0]
	if id == "" {
		return nil, fmt.Errorf("%w: empty transcript id", ErrMalformedHeader)
	}

	var (
		start, end int
		found      bool
	)
	for _, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if !strings.HasPrefix(field, "CDS:") {
			continue
		}
		if found {
			return nil, fmt.Errorf("%w: multiple CDS fields in %q", ErrMalformedHeader, id)
		}

		s, e, err := parseRange(field[len("CDS:"):])
		if err != nil {
			return nil, fmt.Errorf("%w: %s in %q", ErrMalformedHeader, err, id)
		}
		start, end = s, e
		found = true
	}

	if !found {
		return nil, fmt.Errorf("%w: no CDS field in %q", ErrMalformedHeader, id)
	}

	// 1-based inclusive -> 0-based half-open: start shifts down by one,
	// the inclusive end is already the exclusive upper bound.
	return &Annotation{
		TranscriptID: id,
		CDSStart:     start - 1,
		CDSEnd:       end,
	}, nil
}

// parseRange parses a "<start>-<end>" pair of 1-based positions.
func parseRange(s string) (start, end int, err error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("CDS range %q is not start-end", s)
	}
	start, err1 := strconv.Atoi(parts[0])
	end, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("CDS range %q is not numeric", s)
	}
	if start < 1 || end < start {
		return 0, 0, fmt.Errorf("CDS range %q is not a valid span", s)
	}
	return start, end, nil
}
