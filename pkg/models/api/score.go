package api

import "time"

type FactorScore struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
	Points int     `json:"points"`
}

type CreditScore struct {
	Company     string        `json:"company_id"`
	Score       int           `json:"score"`
	LastUpdated time.Time     `json:"last_updated"`
	Breakdown   []FactorScore `json:"breakdown"`
}

type RecalcResponse struct {
	Message  string `json:"message"`
	Company  string `json:"company_id"`
	NewScore int    `json:"new_score"`
}

// FactorHistoryEntry is one recalculation's raw factor values.
type FactorHistoryEntry struct {
	RecordedAt time.Time          `json:"recorded_at"`
	Factors    map[string]float64 `json:"factors"`
}

type RankedCompany struct {
	ID         string  `json:"company_id"`
	Name       string  `json:"name"`
	Industry   string  `json:"industry"`
	Score      int     `json:"score"`
	GrowthRate float64 `json:"growth_rate"`
}
