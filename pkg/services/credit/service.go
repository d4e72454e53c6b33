package credit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/zyphery/cfo-core/pkg/models/domain"
	modelstore "github.com/zyphery/cfo-core/pkg/models/store"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/scoring"
	"github.com/zyphery/cfo-core/pkg/store/duckdb"
	"github.com/zyphery/cfo-core/pkg/store/duckdb/scores"
)

// Service computes credit scores and owns their persistence: the latest
// score per company, the factor history behind each recalculation, and the
// investor-facing ranking.
type Service struct {
	scorer *scoring.Scorer
	store  scores.Store
	db     *sql.DB
	clock  func() time.Time
}

func NewService(scorer *scoring.Scorer, store scores.Store, db *sql.DB) *Service {
	return &Service{
		scorer: scorer,
		store:  store,
		db:     db,
		clock:  time.Now,
	}
}

// Latest returns the persisted score for a company, nil when never computed.
func (s *Service) Latest(ctx context.Context, companyID string) (*modelstore.ScoreRecord, error) {
	return s.store.Get(ctx, companyID)
}

// Recalculate scores a snapshot against the company baseline, upserts the
// latest score and appends a factor-history row. Mock companies get their
// snapshot regenerated from the seed instead, so demo scores can be
// reproduced on demand.
func (s *Service) Recalculate(
	ctx context.Context,
	c domain.Company,
	snapshot domain.FinancialSnapshot,
	seed *int64,
) (domain.CreditScore, error) {
	if c.Mock && seed != nil {
		snapshot = company.MockSnapshot(c.Baseline, *seed)
	}

	score := s.scorer.Score(snapshot, c.Baseline)
	factors := s.scorer.Factors(snapshot, c.Baseline)
	now := s.clock().UTC()

	breakdown := make(map[string]modelstore.FactorPoints, len(score.Breakdown))
	for _, f := range score.Breakdown {
		breakdown[f.Name] = modelstore.FactorPoints{Value: f.Value, Points: f.Points}
	}

	record := modelstore.ScoreRecord{
		Company:     c.ID,
		Name:        c.Name,
		Industry:    c.Industry,
		Score:       score.Total,
		LastUpdated: now,
		Breakdown:   breakdown,
	}
	// The latest score and its history row land together or not at all.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.CreditScore{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	txCtx := duckdb.WithTransaction(ctx, tx)
	if err := s.store.Upsert(txCtx, record); err != nil {
		return domain.CreditScore{}, fmt.Errorf("persist credit score: %w", err)
	}
	if err := s.store.AddHistory(txCtx, c.ID, factors, now); err != nil {
		return domain.CreditScore{}, fmt.Errorf("record factor history: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.CreditScore{}, fmt.Errorf("commit recalculation: %w", err)
	}

	return score, nil
}

// History returns the most recent factor-history rows for a company.
func (s *Service) History(ctx context.Context, companyID string, limit int) ([]modelstore.FactorHistory, error) {
	return s.store.GetHistory(ctx, companyID, limit)
}

// Ranked lists companies with score >= minScore, optionally filtered by
// industry, sorted by score descending.
func (s *Service) Ranked(
	ctx context.Context,
	minScore int,
	industry string,
	limit int,
) ([]domain.RankedCompany, error) {
	records, err := s.store.Ranked(ctx, minScore, industry, limit)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.RankedCompany, 0, len(records))
	for _, r := range records {
		ranked = append(ranked, domain.RankedCompany{
			ID:         r.Company,
			Name:       r.Name,
			Industry:   r.Industry,
			Score:      r.Score,
			GrowthRate: r.Breakdown[scoring.FactorRevenueGrowth].Value,
		})
	}
	return ranked, nil
}
