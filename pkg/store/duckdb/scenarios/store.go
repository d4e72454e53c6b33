package scenarios

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/zyphery/cfo-core/pkg/models/store"
)

// Store is the append-only audit log of applied what-if forecasts.
type Store interface {
	Add(ctx context.Context, run store.ScenarioRun) error
	GetRuns(ctx context.Context, company string, limit int) ([]store.ScenarioRun, error)
}

type scenarioStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &scenarioStore{db: db}, nil
}

func (s *scenarioStore) Add(ctx context.Context, run store.ScenarioRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	query := `
		INSERT INTO scenario_runs (
			id, company, requested_at, spend_change, hiring_rate, revenue_growth, burn, runway
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		run.ID, run.Company, run.RequestedAt,
		run.SpendChangePct, run.HiringRate, run.RevenueGrowthPct,
		run.Burn, run.Runway,
	)
	if err != nil {
		return fmt.Errorf("insert scenario run: %w", err)
	}
	return nil
}

func (s *scenarioStore) GetRuns(ctx context.Context, company string, limit int) ([]store.ScenarioRun, error) {
	query := `
		SELECT id, company, requested_at, spend_change, hiring_rate, revenue_growth, burn, runway
		FROM scenario_runs
		WHERE company = ?
		ORDER BY requested_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, company, limit)
	if err != nil {
		return nil, fmt.Errorf("query scenario runs: %w", err)
	}
	defer rows.Close()

	runs := make([]store.ScenarioRun, 0)
	for rows.Next() {
		var run store.ScenarioRun
		if err := rows.Scan(&run.ID, &run.Company, &run.RequestedAt,
			&run.SpendChangePct, &run.HiringRate, &run.RevenueGrowthPct,
			&run.Burn, &run.Runway); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
