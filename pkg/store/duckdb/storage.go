package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const CreditScoresSchema = `
	CREATE TABLE IF NOT EXISTS credit_scores (
		company VARCHAR NOT NULL,
		name VARCHAR,
		industry VARCHAR,
		score INTEGER NOT NULL,
		last_updated TIMESTAMP NOT NULL,
		breakdown JSON,
		PRIMARY KEY (company)
	);
`

const ScoreHistorySchema = `
	CREATE TABLE IF NOT EXISTS score_history (
		id VARCHAR NOT NULL,
		company VARCHAR NOT NULL,
		recorded_at TIMESTAMP NOT NULL,
		factors JSON,
		PRIMARY KEY (id)
	);
`

const ScenarioRunsSchema = `
	CREATE TABLE IF NOT EXISTS scenario_runs (
		id VARCHAR NOT NULL,
		company VARCHAR NOT NULL,
		requested_at TIMESTAMP NOT NULL,
		spend_change DOUBLE,
		hiring_rate DOUBLE,
		revenue_growth DOUBLE,
		burn DOUBLE,
		runway DOUBLE,
		PRIMARY KEY (id)
	);
`

var bootQueries = []string{
	CreditScoresSchema,
	ScoreHistorySchema,
	ScenarioRunsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		bootQueries := append([]string{}, bootQueries...)

		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
