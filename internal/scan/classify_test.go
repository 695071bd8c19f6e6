package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambertools/amberscan/internal/fasta"
)

func mustTranscript(t *testing.T, seq string, start, end int) *Transcript {
	t.Helper()
	tr, err := NewTranscript(
		&fasta.Record{Header: "test", Sequence: seq},
		&fasta.Annotation{TranscriptID: "test", CDSStart: start, CDSEnd: end},
	)
	require.NoError(t, err)
	return tr
}

func TestNewTranscript_BoundsChecked(t *testing.T) {
	rec := &fasta.Record{Sequence: "ATGTAG"}

	_, err := NewTranscript(rec, &fasta.Annotation{TranscriptID: "x", CDSStart: 0, CDSEnd: 9})
	assert.ErrorIs(t, err, fasta.ErrMalformedHeader)

	_, err = NewTranscript(rec, &fasta.Annotation{TranscriptID: "x", CDSStart: 4, CDSEnd: 6})
	assert.ErrorIs(t, err, fasta.ErrMalformedHeader, "CDS shorter than one codon")
}

func TestValidateFrame(t *testing.T) {
	ok := mustTranscript(t, "ATGAAATAG", 0, 9)
	assert.NoError(t, ValidateFrame(ok))

	// A CDS:101-200 annotation converts to a span of 100 nucleotides,
	// which is not a whole number of codons.
	seq := make([]byte, 250)
	for i := range seq {
		seq[i] = 'A'
	}
	bad := mustTranscript(t, string(seq), 100, 200)
	assert.ErrorIs(t, ValidateFrame(bad), ErrFrameInconsistent)
}

func TestClassifyStop(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		stop string
	}{
		{"amber", "ATGAAATAG", StopAmber},
		{"ochre", "ATGAAATAA", StopOchre},
		{"opal", "ATGAAATGA", StopOpal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mustTranscript(t, tt.seq, 0, 9)
			_, err := ClassifyStop(tr)
			require.NoError(t, err)
			assert.Equal(t, tt.stop, tr.StopCodon)
		})
	}
}

func TestClassifyStop_NonCanonical(t *testing.T) {
	tr := mustTranscript(t, "ATGAAAGGG", 0, 9)
	_, err := ClassifyStop(tr)
	assert.ErrorIs(t, err, ErrUnknownStop)
	// The offending codon is still recorded for the warning path.
	assert.Equal(t, "GGG", tr.StopCodon)
}

func TestClassifyStop_UsesCDSEnd(t *testing.T) {
	// Stop codon comes from the CDS boundary, not the sequence end.
	tr := mustTranscript(t, "ATGAAATAGCCCCCC", 0, 9)
	_, err := ClassifyStop(tr)
	require.NoError(t, err)
	assert.Equal(t, StopAmber, tr.StopCodon)
	assert.True(t, tr.Has3UTR())
}

func TestHas3UTR(t *testing.T) {
	withUTR := mustTranscript(t, "ATGAAATAGAAA", 0, 9)
	assert.True(t, withUTR.Has3UTR())

	without := mustTranscript(t, "ATGAAATAG", 0, 9)
	assert.False(t, without.Has3UTR())
}

func TestCDS(t *testing.T) {
	tr := mustTranscript(t, "CCATGAAATAGGG", 2, 11)
	assert.Equal(t, "ATGAAATAG", tr.CDS())
}
