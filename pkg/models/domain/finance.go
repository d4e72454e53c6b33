package domain

// InfiniteRunway is the sentinel reported when burn is non-positive and the
// company is not consuming cash.
const InfiniteRunway = 99

type ExpenseBreakdown struct {
	Engineering    float64
	Marketing      float64
	Sales          float64
	Operations     float64
	Infrastructure float64
}

func (e ExpenseBreakdown) Total() float64 {
	return e.Engineering + e.Marketing + e.Sales + e.Operations + e.Infrastructure
}

// FinancialSnapshot is one point-in-time (or one scenario) financial state.
// MRR and Revenue are equal by construction; both are kept because downstream
// consumers read them under different names.
type FinancialSnapshot struct {
	MRR      float64
	Revenue  float64
	Burn     float64 // expenses minus revenue; negative means net-positive cash flow
	Runway   float64 // months of cash at current burn; InfiniteRunway when burn <= 0
	Cash     float64 // constant across derived scenarios
	Growth   float64 // month-over-month growth rate, percent
	Expenses ExpenseBreakdown
}

// ScenarioParams are the what-if adjustments applied to a baseline snapshot.
type ScenarioParams struct {
	SpendChangePct   float64 // percentage delta on variable expense categories
	HiringRate       float64 // headcount-equivalent units, must be >= 0
	RevenueGrowthPct float64 // percentage delta on revenue, damped into growth
}

func (p ScenarioParams) IsZero() bool {
	return p.SpendChangePct == 0 && p.HiringRate == 0 && p.RevenueGrowthPct == 0
}
