package fasta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	ann, err := ParseHeader("ENST00000456328.2|ENSG00000290825.1|OTTHUMG00000002860.3|DDX11L2-202|DDX11L2|1657|UTR5:1-200|CDS:201-459|UTR3:460-1657|")
	require.NoError(t, err)

	// First field verbatim, version suffix included.
	assert.Equal(t, "ENST00000456328.2", ann.TranscriptID)
	// 1-based inclusive 201-459 -> 0-based half-open 200-459.
	assert.Equal(t, 200, ann.CDSStart)
	assert.Equal(t, 459, ann.CDSEnd)
}

func TestParseHeader_BoundaryConversion(t *testing.T) {
	ann, err := ParseHeader("ENST00001|CDS:101-200|")
	require.NoError(t, err)
	assert.Equal(t, 100, ann.CDSStart)
	assert.Equal(t, 200, ann.CDSEnd)
	// Span length is 100, a frame inconsistency the validator catches
	// downstream; the extractor only converts coordinates.
	assert.Equal(t, 100, ann.CDSEnd-ann.CDSStart)
}

func TestParseHeader_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no CDS field", "ENST00000001.1|ENSG00000001.1|GENE-201|GENE|459|"},
		{"two CDS fields", "ENST1|CDS:1-9|CDS:10-18|"},
		{"non-numeric start", "ENST1|CDS:x-9|"},
		{"non-numeric end", "ENST1|CDS:1-y|"},
		{"missing dash", "ENST1|CDS:19|"},
		{"zero start", "ENST1|CDS:0-9|"},
		{"end before start", "ENST1|CDS:9-1|"},
		{"empty transcript id", "|CDS:1-9|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.header)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedHeader)
		})
	}
}

func TestParseHeader_CDSFieldWithWhitespace(t *testing.T) {
	ann, err := ParseHeader("ENST1|567| CDS:1-567 |")
	require.NoError(t, err)
	assert.Equal(t, 0, ann.CDSStart)
	assert.Equal(t, 567, ann.CDSEnd)
}
