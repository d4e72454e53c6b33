package domain

type ReadinessStatus string

const (
	StatusGood     ReadinessStatus = "good"
	StatusWarning  ReadinessStatus = "warning"
	StatusCritical ReadinessStatus = "critical"
)

// ReadinessFactor is one of the five funding-readiness components, scored 0-100.
// The cash-runway factor is not clamped and can exceed 100 for long-runway
// companies.
type ReadinessFactor struct {
	Name   string
	Score  int
	Status ReadinessStatus
}

// FundingReadiness is a composite assessment of raise timing suitability.
// Score is the rounded unweighted mean of the factor scores.
type FundingReadiness struct {
	Score          int
	Factors        []ReadinessFactor
	Recommendation string
}
