// Package fasta provides streaming multi-FASTA parsing for GENCODE
// transcript reference files.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single FASTA entry: the header line without the leading
// '>' and the sequence body with newlines stripped. No case
// normalization is performed on the sequence.
type Record struct {
	Header   string
	Sequence string
}

// Reader streams records from a multi-FASTA file.
// Supports both plain and gzipped (.gz) files.
type Reader struct {
	scanner    *bufio.Scanner
	file       *os.File
	gzipReader *gzip.Reader

	// pending holds the header of the next record, read while
	// scanning the body of the previous one.
	pending   string
	hasHeader bool
	done      bool
}

// Open creates a Reader for the given file path. The file is held open
// until Close is called; a fresh Reader on the same path restarts the
// record sequence from the beginning.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta file: %w", err)
	}

	r := &Reader{file: file}

	var src io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		r.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		src = r.gzipReader
	}

	r.scanner = newScanner(src)
	return r, nil
}

// NewReader creates a Reader from an io.Reader of uncompressed FASTA
// text. Intended for tests and in-memory input.
func NewReader(src io.Reader) *Reader {
	return &Reader{scanner: newScanner(src)}
}

func newScanner(src io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(src)
	// Transcript sequences can be written on a single long line.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)
	return scanner
}

// Next returns the next record with a non-empty sequence body.
// Returns nil, nil at end of input. Records whose body is empty after
// concatenation (truncated entries) are skipped.
func (r *Reader) Next() (*Record, error) {
	for {
		rec, err := r.next()
		if err != nil || rec == nil {
			return nil, err
		}
		if rec.Sequence != "" {
			return rec, nil
		}
	}
}

// next returns the next raw record, empty bodies included.
func (r *Reader) next() (*Record, error) {
	if r.done {
		return nil, nil
	}

	// Skip ahead to the first header on the initial call.
	if !r.hasHeader {
		for r.scanner.Scan() {
			line := r.scanner.Text()
			if strings.HasPrefix(line, ">") {
				r.pending = strings.TrimPrefix(line, ">")
				r.hasHeader = true
				break
			}
		}
		if !r.hasHeader {
			r.done = true
			return nil, r.scanner.Err()
		}
	}

	rec := &Record{Header: r.pending}
	var body strings.Builder

	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.HasPrefix(line, ">") {
			r.pending = strings.TrimPrefix(line, ">")
			rec.Sequence = body.String()
			return rec, nil
		}
		body.WriteString(strings.TrimSpace(line))
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan fasta: %w", err)
	}

	r.done = true
	rec.Sequence = body.String()
	return rec, nil
}

// ReadAll consumes the remaining records into a slice.
func (r *Reader) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := r.Next()
		if err != nil {
			return records, err
		}
		if rec == nil {
			return records, nil
		}
		records = append(records, rec)
	}
}

// Close closes the underlying file, if any.
func (r *Reader) Close() error {
	if r.gzipReader != nil {
		r.gzipReader.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
