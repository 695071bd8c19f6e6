// Package scan identifies amber-terminated coding transcripts and
// simulates stop-codon readthrough.
package scan

import (
	"fmt"
	"strings"
)

// Canonical stop codons (DNA alphabet).
const (
	StopAmber = "TAG"
	StopOchre = "TAA"
	StopOpal  = "TGA"
)

// StopSymbol marks a stop codon in translated sequences.
const StopSymbol = '*'

// ErrInvalidCodon is returned when a codon is not a triplet over {A,C,G,T}.
var ErrInvalidCodon = fmt.Errorf("invalid codon")

// Standard genetic code: DNA codon to amino acid (single letter).
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// reverseTable maps each amino acid (and '*') to its codons.
// Reporting-only; the pipeline itself never decodes.
var reverseTable = func() map[byte][]string {
	rt := make(map[byte][]string, 21)
	for codon, aa := range codonTable {
		rt[aa] = append(rt[aa], codon)
	}
	return rt
}()

// TranslateCodon translates a DNA codon to its amino acid, with '*' for
// stop codons. Input must be an uppercase triplet over {A,C,G,T};
// anything else (e.g. an ambiguous base N) fails with ErrInvalidCodon.
func TranslateCodon(codon string) (byte, error) {
	if len(codon) != 3 {
		return 0, fmt.Errorf("%w: %q is not a triplet", ErrInvalidCodon, codon)
	}
	aa, ok := codonTable[codon]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCodon, codon)
	}
	return aa, nil
}

// IsStopCodon returns true if the codon is a stop codon (TAA, TAG, TGA).
func IsStopCodon(codon string) bool {
	aa, err := TranslateCodon(codon)
	return err == nil && aa == StopSymbol
}

// TranslateSequence translates a DNA sequence codon by codon. The
// sequence length must be divisible by 3; the first invalid codon
// aborts the translation.
func TranslateSequence(seq string) (string, error) {
	if len(seq)%3 != 0 {
		return "", fmt.Errorf("sequence length %d is not divisible by 3", len(seq))
	}

	var result strings.Builder
	result.Grow(len(seq) / 3)

	for i := 0; i < len(seq); i += 3 {
		aa, err := TranslateCodon(seq[i : i+3])
		if err != nil {
			return "", fmt.Errorf("translate position %d: %w", i, err)
		}
		result.WriteByte(aa)
	}

	return result.String(), nil
}

// CodonsFor returns all codons encoding the given amino acid (or '*').
// The returned slice is a copy and safe to modify.
func CodonsFor(aa byte) []string {
	codons, ok := reverseTable[aa]
	if !ok {
		return nil
	}
	out := make([]string, len(codons))
	copy(out, codons)
	return out
}
