package scores

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zyphery/cfo-core/pkg/models/store"
	"github.com/zyphery/cfo-core/pkg/store/duckdb"
)

// Store persists the latest credit score per company plus the append-only
// factor history behind recalculations.
type Store interface {
	Upsert(ctx context.Context, record store.ScoreRecord) error
	Get(ctx context.Context, company string) (*store.ScoreRecord, error)
	AddHistory(ctx context.Context, company string, factors map[string]float64, recordedAt time.Time) error
	GetHistory(ctx context.Context, company string, limit int) ([]store.FactorHistory, error)
	Ranked(ctx context.Context, minScore int, industry string, limit int) ([]store.ScoreRecord, error)
}

type scoreStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &scoreStore{db: db}, nil
}

func (s *scoreStore) Upsert(ctx context.Context, record store.ScoreRecord) error {
	breakdown, err := json.Marshal(record.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}

	query := `
		INSERT INTO credit_scores (company, name, industry, score, last_updated, breakdown)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (company) DO UPDATE SET
			name = excluded.name,
			industry = excluded.industry,
			score = excluded.score,
			last_updated = excluded.last_updated,
			breakdown = excluded.breakdown`

	tx := duckdb.GetTransaction(ctx)
	if tx != nil {
		_, err = tx.ExecContext(ctx, query,
			record.Company, record.Name, record.Industry, record.Score, record.LastUpdated, breakdown)
	} else {
		_, err = s.db.ExecContext(ctx, query,
			record.Company, record.Name, record.Industry, record.Score, record.LastUpdated, breakdown)
	}
	if err != nil {
		return fmt.Errorf("upsert credit score: %w", err)
	}
	return nil
}

func (s *scoreStore) Get(ctx context.Context, company string) (*store.ScoreRecord, error) {
	// JSON columns come back from the driver as maps; cast to VARCHAR so we
	// can unmarshal the text ourselves.
	query := `
		SELECT company, name, industry, score, last_updated, breakdown::VARCHAR
		FROM credit_scores
		WHERE company = ?`

	var (
		record       store.ScoreRecord
		breakdownRaw []byte
	)
	err := s.db.QueryRowContext(ctx, query, company).Scan(
		&record.Company, &record.Name, &record.Industry,
		&record.Score, &record.LastUpdated, &breakdownRaw,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get credit score: %w", err)
	}

	if len(breakdownRaw) > 0 {
		if err := json.Unmarshal(breakdownRaw, &record.Breakdown); err != nil {
			return nil, fmt.Errorf("unmarshal breakdown: %w", err)
		}
	}
	return &record, nil
}

func (s *scoreStore) AddHistory(
	ctx context.Context,
	company string,
	factors map[string]float64,
	recordedAt time.Time,
) error {
	raw, err := json.Marshal(factors)
	if err != nil {
		return fmt.Errorf("marshal factors: %w", err)
	}

	query := `INSERT INTO score_history (id, company, recorded_at, factors) VALUES (?, ?, ?, ?)`

	tx := duckdb.GetTransaction(ctx)
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, uuid.NewString(), company, recordedAt, raw)
	} else {
		_, err = s.db.ExecContext(ctx, query, uuid.NewString(), company, recordedAt, raw)
	}
	if err != nil {
		return fmt.Errorf("insert score history: %w", err)
	}
	return nil
}

func (s *scoreStore) GetHistory(ctx context.Context, company string, limit int) ([]store.FactorHistory, error) {
	query := `
		SELECT id, company, recorded_at, factors::VARCHAR
		FROM score_history
		WHERE company = ?
		ORDER BY recorded_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, company, limit)
	if err != nil {
		return nil, fmt.Errorf("query score history: %w", err)
	}
	defer rows.Close()

	entries := make([]store.FactorHistory, 0)
	for rows.Next() {
		var (
			entry      store.FactorHistory
			factorsRaw []byte
		)
		if err := rows.Scan(&entry.ID, &entry.Company, &entry.RecordedAt, &factorsRaw); err != nil {
			return nil, err
		}
		entry.Factors = map[string]float64{}
		if len(factorsRaw) > 0 {
			if err := json.Unmarshal(factorsRaw, &entry.Factors); err != nil {
				return nil, fmt.Errorf("unmarshal factors: %w", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *scoreStore) Ranked(
	ctx context.Context,
	minScore int,
	industry string,
	limit int,
) ([]store.ScoreRecord, error) {
	query := `
		SELECT company, name, industry, score, last_updated, breakdown::VARCHAR
		FROM credit_scores
		WHERE score >= ?`
	args := []interface{}{minScore}
	if industry != "" {
		query += " AND industry = ?"
		args = append(args, industry)
	}
	query += " ORDER BY score DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ranked scores: %w", err)
	}
	defer rows.Close()

	records := make([]store.ScoreRecord, 0)
	for rows.Next() {
		var (
			record       store.ScoreRecord
			breakdownRaw []byte
		)
		if err := rows.Scan(&record.Company, &record.Name, &record.Industry,
			&record.Score, &record.LastUpdated, &breakdownRaw); err != nil {
			return nil, err
		}
		if len(breakdownRaw) > 0 {
			if err := json.Unmarshal(breakdownRaw, &record.Breakdown); err != nil {
				return nil, fmt.Errorf("unmarshal breakdown: %w", err)
			}
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
