package adapters

import (
	"github.com/zyphery/cfo-core/pkg/models/api"
	"github.com/zyphery/cfo-core/pkg/models/domain"
	"github.com/zyphery/cfo-core/pkg/models/store"
)

func MapSnapshotDomainToApi(s domain.FinancialSnapshot) api.FinancialSnapshot {
	return api.FinancialSnapshot{
		MRR:     s.MRR,
		Revenue: s.Revenue,
		Burn:    s.Burn,
		Runway:  s.Runway,
		Cash:    s.Cash,
		Growth:  s.Growth,
		Expenses: api.ExpenseBreakdown{
			Engineering:    s.Expenses.Engineering,
			Marketing:      s.Expenses.Marketing,
			Sales:          s.Expenses.Sales,
			Operations:     s.Expenses.Operations,
			Infrastructure: s.Expenses.Infrastructure,
		},
	}
}

func MapParamsApiToDomain(p api.ScenarioParams) domain.ScenarioParams {
	return domain.ScenarioParams{
		SpendChangePct:   p.SpendChangePct,
		HiringRate:       p.HiringRate,
		RevenueGrowthPct: p.RevenueGrowthPct,
	}
}

func MapScenarioRunStoreToApi(run store.ScenarioRun) api.ScenarioRun {
	return api.ScenarioRun{
		ID:               run.ID,
		RequestedAt:      run.RequestedAt,
		SpendChangePct:   run.SpendChangePct,
		HiringRate:       run.HiringRate,
		RevenueGrowthPct: run.RevenueGrowthPct,
		Burn:             run.Burn,
		Runway:           run.Runway,
	}
}

func MapCompanyDomainToApi(c domain.Company) api.Company {
	return api.Company{
		ID:       c.ID,
		Name:     c.Name,
		Industry: c.Industry,
	}
}

// MapSnapshotToProfitAndLoss summarizes a snapshot for the P&L panel. The
// margin is 0 when there is no revenue to divide by.
func MapSnapshotToProfitAndLoss(companyID string, s domain.FinancialSnapshot) api.ProfitAndLoss {
	total := s.Expenses.Total()
	net := s.Revenue - total
	margin := 0.0
	if s.Revenue != 0 {
		margin = net / s.Revenue * 100
	}
	return api.ProfitAndLoss{
		Company:         companyID,
		TotalRevenue:    s.Revenue,
		TotalExpenses:   total,
		NetProfit:       net,
		ProfitMarginPct: margin,
		ExpenseBreakdown: api.ExpenseBreakdown{
			Engineering:    s.Expenses.Engineering,
			Marketing:      s.Expenses.Marketing,
			Sales:          s.Expenses.Sales,
			Operations:     s.Expenses.Operations,
			Infrastructure: s.Expenses.Infrastructure,
		},
	}
}
