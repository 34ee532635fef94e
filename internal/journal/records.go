package journal

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MergeRecord captures one merge pipeline run.
type MergeRecord struct {
	ID            int64
	CreatedAt     time.Time
	Date          string
	OutputPath    string
	InputCount    int
	TotalSeconds  float64
	TargetSeconds float64
	Shortened     bool
	VideoRate     float64
	TempoChain    []float64
}

// SyncRecord captures one device sync run.
type SyncRecord struct {
	ID          int64
	CreatedAt   time.Time
	RemoteDir   string
	LocalDir    string
	RemoteCount int
	Pulled      int
	Failed      int
}

// RecordMerge appends a merge run to the journal.
func (s *Store) RecordMerge(ctx context.Context, rec MergeRecord) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	err := s.execWithoutResultRetry(ctx, `
		INSERT INTO merge_runs
			(created_at, date, output_path, input_count, total_seconds, target_seconds, shortened, video_rate, tempo_chain)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		createdAt.Format(time.RFC3339),
		rec.Date,
		rec.OutputPath,
		rec.InputCount,
		rec.TotalSeconds,
		rec.TargetSeconds,
		boolToInt(rec.Shortened),
		rec.VideoRate,
		encodeChain(rec.TempoChain),
	)
	if err != nil {
		return fmt.Errorf("record merge run: %w", err)
	}
	return nil
}

// RecordSync appends a sync run to the journal.
func (s *Store) RecordSync(ctx context.Context, rec SyncRecord) error {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	err := s.execWithoutResultRetry(ctx, `
		INSERT INTO sync_runs
			(created_at, remote_dir, local_dir, remote_count, pulled, failed)
		VALUES (?, ?, ?, ?, ?, ?)`,
		createdAt.Format(time.RFC3339),
		rec.RemoteDir,
		rec.LocalDir,
		rec.RemoteCount,
		rec.Pulled,
		rec.Failed,
	)
	if err != nil {
		return fmt.Errorf("record sync run: %w", err)
	}
	return nil
}

// RecentMerges returns the newest merge runs, most recent first.
func (s *Store) RecentMerges(ctx context.Context, limit int) ([]MergeRecord, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, date, output_path, input_count, total_seconds, target_seconds, shortened, video_rate, tempo_chain
		FROM merge_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query merge runs: %w", err)
	}
	defer rows.Close()

	var records []MergeRecord
	for rows.Next() {
		var (
			rec       MergeRecord
			createdAt string
			shortened int
			chain     string
		)
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Date, &rec.OutputPath, &rec.InputCount,
			&rec.TotalSeconds, &rec.TargetSeconds, &shortened, &rec.VideoRate, &chain); err != nil {
			return nil, fmt.Errorf("scan merge run: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		rec.Shortened = shortened != 0
		rec.TempoChain = decodeChain(chain)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// RecentSyncs returns the newest sync runs, most recent first.
func (s *Store) RecentSyncs(ctx context.Context, limit int) ([]SyncRecord, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, remote_dir, local_dir, remote_count, pulled, failed
		FROM sync_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sync runs: %w", err)
	}
	defer rows.Close()

	var records []SyncRecord
	for rows.Next() {
		var (
			rec       SyncRecord
			createdAt string
		)
		if err := rows.Scan(&rec.ID, &createdAt, &rec.RemoteDir, &rec.LocalDir,
			&rec.RemoteCount, &rec.Pulled, &rec.Failed); err != nil {
			return nil, fmt.Errorf("scan sync run: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func encodeChain(chain []float64) string {
	parts := make([]string, len(chain))
	for i, stage := range chain {
		parts[i] = strconv.FormatFloat(stage, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func decodeChain(encoded string) []float64 {
	if encoded == "" {
		return nil
	}
	parts := strings.Split(encoded, ",")
	chain := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			continue
		}
		chain = append(chain, value)
	}
	return chain
}
