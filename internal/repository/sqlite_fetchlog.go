package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ksaito/studypace/internal/db"
)

// SQLiteFetchLogRepo implements FetchLogRepo over the snapshot database.
type SQLiteFetchLogRepo struct {
	db db.DBTX
}

// NewSQLiteFetchLogRepo creates a new SQLiteFetchLogRepo.
func NewSQLiteFetchLogRepo(dbtx db.DBTX) *SQLiteFetchLogRepo {
	return &SQLiteFetchLogRepo{db: dbtx}
}

func (r *SQLiteFetchLogRepo) Record(ctx context.Context, rec *FetchRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	query := `INSERT INTO fetch_log (id, database_id, pages, records, fetched_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.DatabaseID,
		rec.Pages,
		rec.Records,
		rec.FetchedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting fetch record: %w", err)
	}
	return nil
}

func (r *SQLiteFetchLogRepo) Latest(ctx context.Context) (*FetchRecord, error) {
	query := `SELECT id, database_id, pages, records, fetched_at
		FROM fetch_log ORDER BY fetched_at DESC, rowid DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	var rec FetchRecord
	var fetchedStr string
	err := row.Scan(&rec.ID, &rec.DatabaseID, &rec.Pages, &rec.Records, &fetchedStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("fetch record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning fetch record: %w", err)
	}
	rec.FetchedAt, err = time.Parse(time.RFC3339, fetchedStr)
	if err != nil {
		return nil, fmt.Errorf("parsing fetched_at: %w", err)
	}
	return &rec, nil
}
