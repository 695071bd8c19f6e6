package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amberTranscript(t *testing.T, seq string, start, end int) *Transcript {
	t.Helper()
	tr := mustTranscript(t, seq, start, end)
	_, err := ClassifyStop(tr)
	require.NoError(t, err)
	return tr
}

func TestSimulate_SuppressionProduct(t *testing.T) {
	// CDS ATG AAA TAG followed by UTR AAACCCTGATTT. The extended frame
	// reads ATG AAA TAG AAA CCC TGA TTT; the final triplet terminates
	// the frame and is not translated, giving MK*KP* which splits into
	// ["MK", "KP", ""].
	tr := amberTranscript(t, "ATGAAATAG"+"AAACCCTGATTT", 0, 9)

	rec, err := NewSimulator().Simulate(tr)
	require.NoError(t, err)

	assert.Equal(t, StatusOK, rec.Status)
	assert.Equal(t, []string{"MK", "KP", ""}, rec.Segments)
	assert.Equal(t, "MKKKP", rec.Suppressed)
	assert.Equal(t, "KP", rec.Extension())
	assert.False(t, rec.PartialCodon)
}

func TestSimulate_CustomResidue(t *testing.T) {
	tr := amberTranscript(t, "ATGAAATAG"+"AAACCCTGATTT", 0, 9)

	sim := NewSimulator()
	sim.Residue = 'Q'
	rec, err := sim.Simulate(tr)
	require.NoError(t, err)
	assert.Equal(t, "MKQKP", rec.Suppressed)
}

func TestSimulate_No3UTR(t *testing.T) {
	tr := amberTranscript(t, "ATGAAATAG", 0, 9)

	rec, err := NewSimulator().Simulate(tr)
	require.NoError(t, err)
	assert.Equal(t, StatusNo3UTR, rec.Status)
	assert.Empty(t, rec.Segments)
	assert.Empty(t, rec.Suppressed)
}

func TestSimulate_NoInternalStop(t *testing.T) {
	// A 2-nt UTR leaves the amber codon as the excluded terminal
	// triplet, so the translation carries no stop at all and the
	// extension boundary is unknown, not zero-length.
	tr := amberTranscript(t, "ATGAAATAG"+"AA", 0, 9)

	rec, err := NewSimulator().Simulate(tr)
	require.NoError(t, err)
	assert.Equal(t, StatusNoInternalStop, rec.Status)
	assert.Empty(t, rec.Suppressed)
}

func TestSimulate_UTRWithoutDownstreamStop(t *testing.T) {
	// The UTR frame has no further stop: the amber split still yields
	// two segments, and the extension runs to the end of the translated
	// region (the excluded terminal triplet CCC is not a stop).
	tr := amberTranscript(t, "ATGAAATAG"+"AAACCC", 0, 9)

	rec, err := NewSimulator().Simulate(tr)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, rec.Status)
	assert.Equal(t, []string{"MK", "K"}, rec.Segments)
	assert.Equal(t, "MKKK", rec.Suppressed)
	assert.Equal(t, "K", rec.Extension())
}

func TestSimulate_PartialTrailingCodon(t *testing.T) {
	// Sequence length leaves a dangling 2-nt triplet; it is dropped and
	// flagged, and the last complete triplet (TGA) terminates the frame.
	tr := amberTranscript(t, "ATGAAATAG"+"AAACCCTGATT", 0, 9)

	rec, err := NewSimulator().Simulate(tr)
	require.NoError(t, err)
	assert.True(t, rec.PartialCodon)
	assert.Equal(t, StatusOK, rec.Status)
	assert.Equal(t, []string{"MK", "KP"}, rec.Segments)
	assert.Equal(t, "MKKKP", rec.Suppressed)
}

func TestSimulate_AmbiguousBaseFailsTranslation(t *testing.T) {
	tr := amberTranscript(t, "ATGAAATAG"+"ANACCCTGATTT", 0, 9)

	rec, err := NewSimulator().Simulate(tr)
	require.NoError(t, err)
	assert.Equal(t, StatusTranslationFailed, rec.Status)
	assert.Empty(t, rec.Segments)
	assert.Empty(t, rec.Suppressed)
}

func TestSimulate_TinyUTR(t *testing.T) {
	// A 1-nt UTR leaves only the CDS triplets: translation excludes the
	// terminal TAG, the partial base is dropped, and no internal stop
	// remains.
	tr := amberTranscript(t, "ATGAAATAG"+"A", 0, 9)

	rec, err := NewSimulator().Simulate(tr)
	require.NoError(t, err)
	assert.True(t, rec.PartialCodon)
	assert.Equal(t, StatusNoInternalStop, rec.Status)
}

func TestSimulate_MultipleDownstreamStops(t *testing.T) {
	// Two in-frame stops in the UTR: only the single-suppression
	// product is assembled, later segments stay available.
	tr := amberTranscript(t, "ATGTAG"+"AAATAGCCCTAGGGGTGA", 0, 6)

	rec, err := NewSimulator().Simulate(tr)
	require.NoError(t, err)
	assert.Equal(t, StatusOK, rec.Status)
	assert.Equal(t, []string{"M", "K", "P", "G"}, rec.Segments)
	assert.Equal(t, "MKK", rec.Suppressed)
}

func TestSimulate_NonAmberRejected(t *testing.T) {
	tr := mustTranscript(t, "ATGAAATAAAAA", 0, 9)
	_, err := ClassifyStop(tr)
	require.NoError(t, err)

	_, err = NewSimulator().Simulate(tr)
	assert.Error(t, err)
}

func TestSimulate_OKAlwaysHasTwoSegments(t *testing.T) {
	seqs := []string{
		"ATGAAATAG" + "AAACCCTGATTT",
		"ATGTAG" + "TAGTAG",
		"ATGTAG" + "AAATAGCCCTAGGGGTGA",
	}
	for _, seq := range seqs {
		tr := amberTranscript(t, seq, 0, cdsLen(seq))
		rec, err := NewSimulator().Simulate(tr)
		require.NoError(t, err)
		if rec.Status == StatusOK {
			assert.GreaterOrEqual(t, len(rec.Segments), 2)
		}
	}
}

// cdsLen finds the end of the leading CDS for the fixtures above, which
// all place the amber codon at the first in-frame TAG.
func cdsLen(seq string) int {
	for i := 3; i+3 <= len(seq); i += 3 {
		if seq[i:i+3] == StopAmber {
			return i + 3
		}
	}
	return len(seq)
}
