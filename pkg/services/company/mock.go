package company

import (
	"math/rand"

	"github.com/zyphery/cfo-core/pkg/models/domain"
	"github.com/zyphery/cfo-core/pkg/services/scenario"
)

// MockSnapshot generates a plausible financial snapshot for a company that
// has no real data feed, jittering its baseline. The same seed always yields
// the same snapshot so recalculations can be reproduced.
func MockSnapshot(baseline domain.FinancialSnapshot, seed int64) domain.FinancialSnapshot {
	rng := rand.New(rand.NewSource(seed))

	// Jitter expenses by up to +/-15% and revenue by -10%..+25%.
	jitter := func(v float64) float64 {
		return v * (1 + (rng.Float64()*0.3 - 0.15))
	}
	expenses := domain.ExpenseBreakdown{
		Engineering:    jitter(baseline.Expenses.Engineering),
		Marketing:      jitter(baseline.Expenses.Marketing),
		Sales:          jitter(baseline.Expenses.Sales),
		Operations:     jitter(baseline.Expenses.Operations),
		Infrastructure: jitter(baseline.Expenses.Infrastructure),
	}

	revenue := baseline.Revenue * (1 + (rng.Float64()*0.35 - 0.10))
	burn := expenses.Total() - revenue
	growth := baseline.Growth * (0.6 + rng.Float64()*0.8)

	return domain.FinancialSnapshot{
		MRR:      revenue,
		Revenue:  revenue,
		Burn:     burn,
		Runway:   scenario.Runway(baseline.Cash, burn),
		Cash:     baseline.Cash,
		Growth:   growth,
		Expenses: expenses,
	}
}
