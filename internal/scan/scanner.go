package scan

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/ambertools/amberscan/internal/fasta"
)

// RecordSource yields FASTA records; *fasta.Reader satisfies it.
type RecordSource interface {
	Next() (*fasta.Record, error)
}

// Scanner runs the full pipeline: annotation extraction, frame
// validation, stop classification, and readthrough simulation for
// amber-terminated transcripts.
type Scanner struct {
	sim     *Simulator
	workers int
	logger  *zap.Logger
}

// Result is the output of one scan over a reference file.
type Result struct {
	// Transcripts holds every frame-valid, canonically terminated
	// transcript in input order.
	Transcripts []*Transcript
	// ByStop partitions Transcripts by terminal codon.
	ByStop map[string][]*Transcript
	// Amber holds the simulation outcome for every TAG-terminated
	// transcript, in input order.
	Amber []*AmberRecord
	// Counts tallies every record, including the excluded ones.
	Counts Counts
}

// NewScanner creates a Scanner with the given simulator. A nil
// simulator gets the defaults.
func NewScanner(sim *Simulator) *Scanner {
	if sim == nil {
		sim = NewSimulator()
	}
	return &Scanner{
		sim:    sim,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for data-quality warnings.
func (sc *Scanner) SetLogger(l *zap.Logger) {
	sc.logger = l
}

// SetWorkers sets the simulation worker count. Zero means NumCPU.
func (sc *Scanner) SetWorkers(n int) {
	sc.workers = n
}

// ScanAll processes every record from the source in a single pass over
// the file: records are classified as they are read, then the amber
// subset is simulated on a worker pool. Per-record data-quality
// failures are counted and logged, never fatal; only a read failure
// aborts the scan. Output slices follow input order, so repeated scans
// of the same file produce identical results.
func (sc *Scanner) ScanAll(src RecordSource) (*Result, error) {
	res := &Result{
		ByStop: make(map[string][]*Transcript),
	}

	var amber []*Transcript
	for {
		rec, err := src.Next()
		if err != nil {
			return nil, fmt.Errorf("read fasta record: %w", err)
		}
		if rec == nil {
			break
		}

		t := sc.classify(rec, res)
		if t != nil && t.StopCodon == StopAmber {
			amber = append(amber, t)
		}
	}

	items := make(chan WorkItem, 2*runtime.NumCPU())
	go func() {
		defer close(items)
		for seq, t := range amber {
			items <- WorkItem{Seq: seq, Transcript: t}
		}
	}()

	results := sc.sim.ParallelSimulate(items, sc.workers)

	if err := OrderedCollect(results, func(r WorkResult) error {
		if r.Err != nil {
			return r.Err
		}
		sc.tally(r.Record, res)
		res.Amber = append(res.Amber, r.Record)
		return nil
	}); err != nil {
		return nil, err
	}

	if res.Counts.Parsed == 0 {
		sc.logger.Info("0 records parsed")
	}

	return res, nil
}

// classify takes a raw record through header extraction, frame
// validation, and stop classification, updating counts. Returns nil for
// excluded records.
func (sc *Scanner) classify(rec *fasta.Record, res *Result) *Transcript {
	res.Counts.Parsed++

	ann, err := fasta.ParseHeader(rec.Header)
	if err != nil {
		res.Counts.MalformedHeader++
		sc.logger.Warn("record excluded",
			zap.String("reason", "malformed_header"),
			zap.Error(err))
		return nil
	}

	t, err := NewTranscript(rec, ann)
	if err != nil {
		res.Counts.MalformedHeader++
		sc.logger.Warn("record excluded",
			zap.String("transcript", ann.TranscriptID),
			zap.String("reason", "malformed_header"),
			zap.Error(err))
		return nil
	}

	if err := ValidateFrame(t); err != nil {
		res.Counts.FrameInconsistent++
		sc.logger.Warn("record excluded",
			zap.String("transcript", t.ID),
			zap.String("reason", "frame_inconsistency"),
			zap.Error(err))
		return nil
	}

	if _, err := ClassifyStop(t); err != nil {
		res.Counts.UnknownStop++
		sc.logger.Warn("record excluded",
			zap.String("transcript", t.ID),
			zap.String("reason", "unknown_stop_codon"),
			zap.String("codon", t.StopCodon),
			zap.Error(err))
		return nil
	}

	res.Transcripts = append(res.Transcripts, t)
	res.ByStop[t.StopCodon] = append(res.ByStop[t.StopCodon], t)

	switch t.StopCodon {
	case StopAmber:
		res.Counts.Amber++
	case StopOchre:
		res.Counts.Ochre++
	case StopOpal:
		res.Counts.Opal++
	}

	return t
}

// tally updates simulation outcome counters.
func (sc *Scanner) tally(rec *AmberRecord, res *Result) {
	switch rec.Status {
	case StatusNo3UTR:
		res.Counts.No3UTR++
	case StatusNoInternalStop:
		res.Counts.NoInternalStop++
	case StatusTranslationFailed:
		res.Counts.TranslationFailed++
		sc.logger.Warn("translation failed",
			zap.String("transcript", rec.ID))
	case StatusOK:
		res.Counts.Suppressed++
	}
	if rec.PartialCodon {
		sc.logger.Warn("trailing partial codon dropped",
			zap.String("transcript", rec.ID))
	}
}

// IsDataQuality reports whether an error is one of the per-record
// exclusion reasons rather than a pipeline failure.
func IsDataQuality(err error) bool {
	return errors.Is(err, fasta.ErrMalformedHeader) ||
		errors.Is(err, ErrFrameInconsistent) ||
		errors.Is(err, ErrUnknownStop) ||
		errors.Is(err, ErrInvalidCodon)
}
