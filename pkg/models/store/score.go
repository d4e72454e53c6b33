package store

import "time"

// ScoreRecord is the latest persisted credit score for a company.
type ScoreRecord struct {
	Company     string
	Name        string
	Industry    string
	Score       int
	LastUpdated time.Time
	Breakdown   map[string]FactorPoints
}

// FactorPoints mirrors one breakdown entry as stored.
type FactorPoints struct {
	Value  float64 `json:"value"`
	Points int     `json:"points"`
}

// FactorHistory is one append-only row of raw factor values per recalculation.
type FactorHistory struct {
	ID         string
	Company    string
	RecordedAt time.Time
	Factors    map[string]float64
}

// ScenarioRun is the audit log entry of one applied what-if forecast.
type ScenarioRun struct {
	ID               string
	Company          string
	RequestedAt      time.Time
	SpendChangePct   float64
	HiringRate       float64
	RevenueGrowthPct float64
	Burn             float64
	Runway           float64
}
