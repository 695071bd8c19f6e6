package scan

import "fmt"

// ErrFrameInconsistent marks a CDS whose length is not a whole number
// of codons; the annotation and sequence disagree about the frame.
var ErrFrameInconsistent = fmt.Errorf("CDS length not divisible by 3")

// ErrUnknownStop marks a CDS whose terminal codon is not a canonical
// stop. This usually indicates a reference annotation bug upstream.
var ErrUnknownStop = fmt.Errorf("terminal codon is not a stop codon")

// ValidateFrame checks that the CDS spans a whole number of codons.
func ValidateFrame(t *Transcript) error {
	if (t.CDSEnd-t.CDSStart)%3 != 0 {
		return fmt.Errorf("%w: %q spans %d nt", ErrFrameInconsistent, t.ID, t.CDSEnd-t.CDSStart)
	}
	return nil
}

// ClassifyStop extracts the terminal CDS codon and verifies it is one
// of TAG, TAA, TGA. The codon is recorded on the transcript; the
// returned transcript is the input, for chaining. Callers must have
// validated the frame first.
func ClassifyStop(t *Transcript) (*Transcript, error) {
	codon := t.Sequence[t.CDSEnd-3 : t.CDSEnd]
	t.StopCodon = codon
	if !IsStopCodon(codon) {
		return t, fmt.Errorf("%w: %q ends in %q", ErrUnknownStop, t.ID, codon)
	}
	return t, nil
}
