package domain

// FactorScore is one weighted component of a credit score. Value is the
// normalized factor in [0,1], Points its rounded contribution on the
// 1000-point scale.
type FactorScore struct {
	Name   string
	Value  float64
	Weight float64
	Points int
}

// CreditScore is a 0-1000 composite index summarizing financial health.
// Breakdown points sum to Total within per-factor rounding.
type CreditScore struct {
	Total     int
	Breakdown []FactorScore
}
