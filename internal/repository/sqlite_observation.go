package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ksaito/studypace/internal/db"
	"github.com/ksaito/studypace/internal/domain"
)

const dateLayout = "2006-01-02"

// SQLiteObservationRepo implements ObservationRepo over the snapshot
// database. Constructed against db.DBTX so it can be scoped to either
// a *sql.DB or a transaction.
type SQLiteObservationRepo struct {
	db db.DBTX
}

// NewSQLiteObservationRepo creates a new SQLiteObservationRepo.
func NewSQLiteObservationRepo(dbtx db.DBTX) *SQLiteObservationRepo {
	return &SQLiteObservationRepo{db: dbtx}
}

func (r *SQLiteObservationRepo) ReplaceAll(ctx context.Context, obs []domain.Observation, fetchedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM observations`); err != nil {
		return fmt.Errorf("clearing observations: %w", err)
	}

	query := `INSERT INTO observations (id, date, minutes, fetched_at) VALUES (?, ?, ?, ?)`
	fetched := fetchedAt.UTC().Format(time.RFC3339)
	for _, o := range obs {
		_, err := r.db.ExecContext(ctx, query,
			uuid.NewString(),
			o.Date.Format(dateLayout),
			o.Minutes,
			fetched,
		)
		if err != nil {
			return fmt.Errorf("inserting observation: %w", err)
		}
	}
	return nil
}

func (r *SQLiteObservationRepo) ListAll(ctx context.Context) ([]domain.Observation, error) {
	query := `SELECT date, minutes FROM observations ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing observations: %w", err)
	}
	defer rows.Close()

	var obs []domain.Observation
	for rows.Next() {
		var dateStr string
		var o domain.Observation
		if err := rows.Scan(&dateStr, &o.Minutes); err != nil {
			return nil, fmt.Errorf("scanning observation row: %w", err)
		}
		o.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing observation date: %w", err)
		}
		obs = append(obs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating observations: %w", err)
	}
	return obs, nil
}
