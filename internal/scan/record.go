package scan

import (
	"fmt"

	"github.com/ambertools/amberscan/internal/fasta"
)

// Transcript is one annotated protein-coding transcript. CDS bounds are
// 0-based half-open into Sequence. Instances are immutable once built.
type Transcript struct {
	ID        string
	Sequence  string
	CDSStart  int
	CDSEnd    int
	StopCodon string // terminal CDS codon, set by the classifier
}

// NewTranscript builds a Transcript from a parsed record and its header
// annotation, validating that the CDS span fits inside the sequence and
// is long enough to carry a stop codon. Out-of-range annotations count
// as malformed headers.
func NewTranscript(rec *fasta.Record, ann *fasta.Annotation) (*Transcript, error) {
	if ann.CDSEnd > len(rec.Sequence) || ann.CDSEnd-ann.CDSStart < 3 {
		return nil, fmt.Errorf("%w: CDS %d-%d outside sequence of length %d in %q",
			fasta.ErrMalformedHeader, ann.CDSStart, ann.CDSEnd, len(rec.Sequence), ann.TranscriptID)
	}
	return &Transcript{
		ID:       ann.TranscriptID,
		Sequence: rec.Sequence,
		CDSStart: ann.CDSStart,
		CDSEnd:   ann.CDSEnd,
	}, nil
}

// Has3UTR reports whether sequence remains downstream of the CDS.
func (t *Transcript) Has3UTR() bool {
	return t.CDSEnd != len(t.Sequence)
}

// CDS returns the coding subsequence.
func (t *Transcript) CDS() string {
	return t.Sequence[t.CDSStart:t.CDSEnd]
}

// Status classifies the outcome of readthrough simulation for one
// amber-terminated transcript.
type Status string

const (
	// StatusOK means a single-suppression product was assembled.
	StatusOK Status = "ok"
	// StatusNo3UTR means no sequence exists downstream of the CDS, so
	// the extension cannot be determined. Reported, never merged with
	// extended records.
	StatusNo3UTR Status = "no_3utr"
	// StatusNoInternalStop means the 3'UTR reading frame contains no
	// further in-frame stop, leaving the extension end indeterminate.
	StatusNoInternalStop Status = "no_internal_stop"
	// StatusTranslationFailed means a downstream codon was outside the
	// genetic code table (e.g. an ambiguous base).
	StatusTranslationFailed Status = "translation_failed"
)

// AmberRecord is the readthrough simulation result for one
// amber-terminated transcript.
type AmberRecord struct {
	*Transcript

	Status Status

	// Segments is the translated CDS+UTR (terminal codon excluded)
	// split at in-frame stops: segment 0 is the CDS-encoded protein,
	// segment 1 the candidate extension. Empty unless Status is ok.
	Segments []string

	// Suppressed is segment 0, the suppressor residue, and segment 1
	// concatenated. Empty unless Status is ok.
	Suppressed string

	// PartialCodon flags a trailing triplet of length < 3 that was
	// dropped before translation (malformed transcript length).
	PartialCodon bool
}

// Extension returns the candidate C-terminal extension (segment 1), or
// "" when the record produced none.
func (a *AmberRecord) Extension() string {
	if len(a.Segments) < 2 {
		return ""
	}
	return a.Segments[1]
}

// Counts carries per-category record tallies for one scan. Every parsed
// record lands in exactly one exclusion bucket or one stop class.
type Counts struct {
	Parsed            int
	MalformedHeader   int
	FrameInconsistent int
	UnknownStop       int

	Amber int // TAG
	Ochre int // TAA
	Opal  int // TGA

	No3UTR            int
	NoInternalStop    int
	TranslationFailed int
	Suppressed        int // amber records with an assembled product
}
