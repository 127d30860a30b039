// Package repository mirrors extraction log entries into Postgres. The
// spreadsheet log tab stays the primary sink; the mirror exists for ad-hoc
// querying and is skipped entirely when no database is configured.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/linkedin-extractor/api/internal/entity"
)

// ExtractionLogsRepository describes persistence operations for extraction
// attempt logs.
type ExtractionLogsRepository interface {
	AppendLog(ctx context.Context, entry entity.ExtractionLog) error
	ListRecent(ctx context.Context, limit int) ([]entity.ExtractionLog, error)
}

// pgxPool is the subset of pgxpool.Pool the repository needs; narrowing it
// keeps the repository testable without a live database.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PGXExtractionLogsRepository implements ExtractionLogsRepository with pgx.
type PGXExtractionLogsRepository struct {
	pool pgxPool
}

// NewPGXExtractionLogsRepository wires a pgx backed repository.
func NewPGXExtractionLogsRepository(pool *pgxpool.Pool) *PGXExtractionLogsRepository {
	return &PGXExtractionLogsRepository{pool: pool}
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// AppendLog inserts one extraction attempt. The table is append-only; there
// is nothing to conflict with.
func (r *PGXExtractionLogsRepository) AppendLog(ctx context.Context, entry entity.ExtractionLog) error {
	query := `
        INSERT INTO extraction_logs (
            logged_at, extraction_type, subject_url, status, record_count,
            duration_seconds, error_message, channel
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `

	_, err := r.pool.Exec(ctx, query,
		entry.Timestamp,
		entry.Type,
		entry.SubjectURL,
		entry.Status,
		entry.RecordCount,
		entry.DurationSeconds,
		entry.ErrorMessage,
		entry.Channel,
	)
	if err != nil {
		return fmt.Errorf("insert extraction log: %w", err)
	}

	return nil
}

// ListRecent returns the newest log entries, most recent first.
func (r *PGXExtractionLogsRepository) ListRecent(ctx context.Context, limit int) ([]entity.ExtractionLog, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
        SELECT logged_at, extraction_type, subject_url, status, record_count,
               duration_seconds, error_message, channel
        FROM extraction_logs
        ORDER BY logged_at DESC
        LIMIT $1;
    `

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list extraction logs: %w", err)
	}
	defer rows.Close()

	var entries []entity.ExtractionLog
	for rows.Next() {
		var entry entity.ExtractionLog
		if err := rows.Scan(
			&entry.Timestamp,
			&entry.Type,
			&entry.SubjectURL,
			&entry.Status,
			&entry.RecordCount,
			&entry.DurationSeconds,
			&entry.ErrorMessage,
			&entry.Channel,
		); err != nil {
			return nil, fmt.Errorf("scan extraction log: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate extraction logs: %w", err)
	}

	return entries, nil
}
