package domain

// Company is a registered demo company with its baseline snapshot.
type Company struct {
	ID       string
	Name     string
	Industry string
	Mock     bool // baseline is regenerated from a seed on recalculation
	Baseline FinancialSnapshot
}

// RankedCompany is one row of the investor-facing ranking.
type RankedCompany struct {
	ID         string
	Name       string
	Industry   string
	Score      int
	GrowthRate float64
}
