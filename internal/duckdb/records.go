package duckdb

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/ambertools/amberscan/internal/scan"
)

// WriteAmberRecords batch-inserts amber records into DuckDB using the
// Appender API. Duplicate transcript IDs are deduplicated before
// writing (the reference file can carry the same transcript twice).
func (s *Store) WriteAmberRecords(records []*scan.AmberRecord) error {
	if len(records) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(records))
	deduped := make([]*scan.AmberRecord, 0, len(records))
	for _, r := range records {
		if !seen[r.ID] {
			seen[r.ID] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "amber_records")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		if err := appender.AppendRow(
			r.ID,
			r.Sequence,
			int64(r.CDSStart),
			int64(r.CDSEnd),
			r.StopCodon,
			r.Has3UTR(),
			string(r.Status),
			strings.Join(r.Segments, ";"),
			r.Suppressed,
			int64(len(r.Extension())),
		); err != nil {
			return fmt.Errorf("append amber record: %w", err)
		}
	}

	return appender.Flush()
}

// CountByStatus returns the number of stored records per status.
func (s *Store) CountByStatus() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM amber_records GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("query status counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// Count returns the total number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM amber_records`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count amber records: %w", err)
	}
	return n, nil
}
