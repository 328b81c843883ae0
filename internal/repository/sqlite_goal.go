package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ksaito/studypace/internal/db"
	"github.com/ksaito/studypace/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo over the snapshot database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(dbtx db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: dbtx}
}

func (r *SQLiteGoalRepo) ReplaceAll(ctx context.Context, goals []domain.MonthlyGoal, fetchedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM monthly_goals`); err != nil {
		return fmt.Errorf("clearing monthly goals: %w", err)
	}

	query := `INSERT INTO monthly_goals (id, year, month, goal_minutes, fetched_at) VALUES (?, ?, ?, ?, ?)`
	fetched := fetchedAt.UTC().Format(time.RFC3339)
	for _, g := range goals {
		_, err := r.db.ExecContext(ctx, query,
			uuid.NewString(),
			g.Month.Year,
			int(g.Month.Month),
			g.GoalMinutes,
			fetched,
		)
		if err != nil {
			return fmt.Errorf("inserting monthly goal: %w", err)
		}
	}
	return nil
}

func (r *SQLiteGoalRepo) ListAll(ctx context.Context) ([]domain.MonthlyGoal, error) {
	// rowid preserves insertion order, which downstream first-match
	// goal lookup depends on.
	query := `SELECT year, month, goal_minutes FROM monthly_goals ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing monthly goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.MonthlyGoal
	for rows.Next() {
		var year, month int
		var g domain.MonthlyGoal
		if err := rows.Scan(&year, &month, &g.GoalMinutes); err != nil {
			return nil, fmt.Errorf("scanning monthly goal row: %w", err)
		}
		g.Month = domain.Month{Year: year, Month: time.Month(month)}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly goals: %w", err)
	}
	return goals, nil
}
