package scan

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultResidue is the amino acid assumed to be incorporated at the
// amber codon by the suppressor tRNA. Lysine matches the most common
// near-cognate decoding, but different suppressors insert different
// residues, so the simulator keeps it configurable.
const DefaultResidue byte = 'K'

// Simulator computes hypothetical amber-suppression readthrough
// products for amber-terminated transcripts.
type Simulator struct {
	// Residue replaces the amber stop in the suppressed product.
	Residue byte
}

// NewSimulator creates a Simulator with the default suppressor residue.
func NewSimulator() *Simulator {
	return &Simulator{Residue: DefaultResidue}
}

// Simulate produces the readthrough record for an amber-terminated
// transcript. All data-quality outcomes are reported through the record
// Status, never as errors; the only error is calling Simulate on a
// transcript that does not end in the amber codon.
func (s *Simulator) Simulate(t *Transcript) (*AmberRecord, error) {
	if t.StopCodon != StopAmber {
		return nil, fmt.Errorf("transcript %q ends in %q, not %s", t.ID, t.StopCodon, StopAmber)
	}

	rec := &AmberRecord{Transcript: t}

	if !t.Has3UTR() {
		rec.Status = StatusNo3UTR
		return rec, nil
	}

	// Reinterpret the whole CDS+UTR region as one reading frame.
	region := t.Sequence[t.CDSStart:]
	codons := len(region) / 3
	if len(region)%3 != 0 {
		// A trailing partial triplet cannot be a codon; drop it.
		rec.PartialCodon = true
	}

	// The final complete triplet terminates the extended frame and is
	// not translated, matching translation halting before its stop.
	translated, err := TranslateSequence(region[:3*(codons-1)])
	if err != nil {
		if !errors.Is(err, ErrInvalidCodon) {
			return nil, err
		}
		rec.Status = StatusTranslationFailed
		return rec, nil
	}

	segments := strings.Split(translated, string(StopSymbol))
	if len(segments) < 2 {
		// No in-frame stop before the end of the sequence: the
		// extension boundary is unknown, not zero-length.
		rec.Status = StatusNoInternalStop
		return rec, nil
	}

	rec.Status = StatusOK
	rec.Segments = segments
	rec.Suppressed = segments[0] + string(s.Residue) + segments[1]
	return rec, nil
}
