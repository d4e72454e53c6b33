package scenario

import (
	"fmt"

	"github.com/zyphery/cfo-core/pkg/models/domain"
)

const (
	// hiringCostPerUnit is the incremental monthly spend per headcount unit.
	hiringCostPerUnit = 15000

	// hiring spend split across categories; marketing and infrastructure
	// receive no hiring contribution.
	hiringShareEngineering = 0.6
	hiringShareSales       = 0.3
	hiringShareOperations  = 0.1

	// growthDamping scales the revenue delta before it passes into the
	// month-over-month growth figure.
	growthDamping = 0.4
)

// ValidateParams rejects parameters outside the declared domain. A spend cut
// below -100% would flip expenses negative and a negative hiring rate has no
// meaning in this model.
func ValidateParams(p domain.ScenarioParams) error {
	if p.HiringRate < 0 {
		return fmt.Errorf("hiring rate must be non-negative, got %v", p.HiringRate)
	}
	if p.SpendChangePct < -100 {
		return fmt.Errorf("spend change must be >= -100%%, got %v", p.SpendChangePct)
	}
	return nil
}

// Project derives a what-if snapshot from a baseline. It is a pure function
// of its inputs and never mutates the baseline.
//
// All-zero parameters return the baseline verbatim: demo baselines carry
// observed burn and runway figures that predate the recomputation formula,
// and the identity scenario must preserve them.
func Project(baseline domain.FinancialSnapshot, p domain.ScenarioParams) domain.FinancialSnapshot {
	if p.IsZero() {
		return baseline
	}

	spendFactor := 1 + p.SpendChangePct/100
	hiring := p.HiringRate * hiringCostPerUnit

	expenses := domain.ExpenseBreakdown{
		Engineering: baseline.Expenses.Engineering*spendFactor + hiring*hiringShareEngineering,
		Marketing:   baseline.Expenses.Marketing * spendFactor,
		Sales:       baseline.Expenses.Sales*spendFactor + hiring*hiringShareSales,
		Operations:  baseline.Expenses.Operations*spendFactor + hiring*hiringShareOperations,
		// Infrastructure scales at half sensitivity to spend change.
		Infrastructure: baseline.Expenses.Infrastructure * (1 + p.SpendChangePct/200),
	}

	revenue := baseline.Revenue * (1 + p.RevenueGrowthPct/100)
	burn := expenses.Total() - revenue

	return domain.FinancialSnapshot{
		MRR:      revenue,
		Revenue:  revenue,
		Burn:     burn,
		Runway:   Runway(baseline.Cash, burn),
		Cash:     baseline.Cash,
		Growth:   baseline.Growth + p.RevenueGrowthPct*growthDamping,
		Expenses: expenses,
	}
}

// Runway returns months of cash remaining at the given burn, the
// InfiniteRunway sentinel when burn is non-positive, and never less than 0.
func Runway(cash, burn float64) float64 {
	if burn <= 0 {
		return domain.InfiniteRunway
	}
	runway := cash / burn
	if runway < 0 {
		return 0
	}
	return runway
}
