package api

import "time"

type ExpenseBreakdown struct {
	Engineering    float64 `json:"engineering"`
	Marketing      float64 `json:"marketing"`
	Sales          float64 `json:"sales"`
	Operations     float64 `json:"operations"`
	Infrastructure float64 `json:"infrastructure"`
}

type FinancialSnapshot struct {
	MRR      float64          `json:"mrr"`
	Revenue  float64          `json:"revenue"`
	Burn     float64          `json:"burn"`
	Runway   float64          `json:"runway"`
	Cash     float64          `json:"cash"`
	Growth   float64          `json:"growth"`
	Expenses ExpenseBreakdown `json:"expenses"`
}

type ScenarioParams struct {
	SpendChangePct   float64 `json:"spend_change_pct"`
	HiringRate       float64 `json:"hiring_rate"`
	RevenueGrowthPct float64 `json:"revenue_growth_pct"`
}

// Forecast pairs the untouched baseline with the projected scenario, the way
// the dashboard renders a what-if side by side.
type Forecast struct {
	Company   string            `json:"company_id"`
	Inputs    ScenarioParams    `json:"inputs"`
	Baseline  FinancialSnapshot `json:"baseline"`
	Projected FinancialSnapshot `json:"projected"`
}

// ScenarioRun is one audit-log entry of an applied what-if forecast.
type ScenarioRun struct {
	ID               string    `json:"id"`
	RequestedAt      time.Time `json:"requested_at"`
	SpendChangePct   float64   `json:"spend_change_pct"`
	HiringRate       float64   `json:"hiring_rate"`
	RevenueGrowthPct float64   `json:"revenue_growth_pct"`
	Burn             float64   `json:"burn"`
	Runway           float64   `json:"runway"`
}

type Company struct {
	ID       string `json:"company_id"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

// ProfitAndLoss summarizes a snapshot for the P&L panel.
type ProfitAndLoss struct {
	Company          string           `json:"company_id"`
	TotalRevenue     float64          `json:"total_revenue"`
	TotalExpenses    float64          `json:"total_expenses"`
	NetProfit        float64          `json:"net_profit"`
	ProfitMarginPct  float64          `json:"profit_margin_pct"`
	ExpenseBreakdown ExpenseBreakdown `json:"expenses_breakdown"`
}
