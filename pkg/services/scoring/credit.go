package scoring

import (
	"math"

	"github.com/zyphery/cfo-core/pkg/models/domain"
)

// Factor names as they appear in breakdowns and persisted history.
const (
	FactorRevenueGrowth      = "revenue_growth"
	FactorBurnStability      = "burn_stability"
	FactorCashRunway         = "cash_runway"
	FactorDebtRatio          = "debt_ratio"
	FactorPaymentReliability = "payment_reliability"
	FactorProfitability      = "profitability_index"
	FactorLiquidity          = "liquidity_index"
)

// Fixed factor weights, summing to 1.0.
var weights = map[string]float64{
	FactorRevenueGrowth:      0.25,
	FactorBurnStability:      0.15,
	FactorCashRunway:         0.20,
	FactorDebtRatio:          0.10,
	FactorPaymentReliability: 0.10,
	FactorProfitability:      0.10,
	FactorLiquidity:          0.10,
}

// factorOrder fixes breakdown ordering for stable output.
var factorOrder = []string{
	FactorRevenueGrowth,
	FactorBurnStability,
	FactorCashRunway,
	FactorDebtRatio,
	FactorPaymentReliability,
	FactorProfitability,
	FactorLiquidity,
}

const (
	// growthSaturationPct is the MoM growth treated as perfect.
	growthSaturationPct = 30
	// runwaySaturationMonths saturates the cash-runway factor.
	runwaySaturationMonths = 12
	// liquidityCoverageMonths of burn covered by cash saturates liquidity.
	liquidityCoverageMonths = 3
)

// FactorDefaults hold factor values for data not modeled in a snapshot.
// Real data providers can replace them without touching the formulas.
type FactorDefaults struct {
	DebtRatio          float64
	PaymentReliability float64
}

func DefaultFactors() FactorDefaults {
	return FactorDefaults{
		DebtRatio:          0.85,
		PaymentReliability: 0.92,
	}
}

// Scorer derives 0-1000 credit scores from snapshots against a fixed
// reference baseline.
type Scorer struct {
	defaults FactorDefaults
}

func NewScorer(defaults FactorDefaults) *Scorer {
	return &Scorer{defaults: defaults}
}

// Score evaluates a snapshot against the reference baseline. The baseline is
// only consulted for burn stability: deviation is measured from a known-good
// reference, not from the snapshot's own history.
func (s *Scorer) Score(snapshot, baseline domain.FinancialSnapshot) domain.CreditScore {
	factors := s.Factors(snapshot, baseline)

	var weighted float64
	breakdown := make([]domain.FactorScore, 0, len(factorOrder))
	for _, name := range factorOrder {
		value := factors[name]
		weight := weights[name]
		weighted += value * weight
		breakdown = append(breakdown, domain.FactorScore{
			Name:   name,
			Value:  value,
			Weight: weight,
			Points: int(math.Round(1000 * value * weight)),
		})
	}

	return domain.CreditScore{
		Total:     int(math.Round(1000 * weighted)),
		Breakdown: breakdown,
	}
}

// Factors returns the raw normalized factor values in [0,1].
func (s *Scorer) Factors(snapshot, baseline domain.FinancialSnapshot) map[string]float64 {
	return map[string]float64{
		FactorRevenueGrowth:      clamp01(snapshot.Growth / growthSaturationPct),
		FactorBurnStability:      burnStability(snapshot.Burn, baseline.Burn),
		FactorCashRunway:         clamp01(snapshot.Runway / runwaySaturationMonths),
		FactorDebtRatio:          s.defaults.DebtRatio,
		FactorPaymentReliability: s.defaults.PaymentReliability,
		FactorProfitability:      profitability(snapshot.Burn, snapshot.Revenue),
		FactorLiquidity:          liquidity(snapshot.Cash, snapshot.Burn),
	}
}

// burnStability penalizes burn deviating from the reference in either
// direction. A non-positive reference burn has no meaningful scale: the
// snapshot scores 1 when it is also cash-flow positive, 0 otherwise.
func burnStability(burn, baselineBurn float64) float64 {
	if baselineBurn <= 0 {
		if burn <= 0 {
			return 1
		}
		return 0
	}
	return clamp01(1 - math.Abs(burn-baselineBurn)/baselineBurn)
}

// profitability fails toward 0 as burn approaches or exceeds revenue.
// Zero or negative revenue is worst profitability, not an undefined result.
func profitability(burn, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return clamp01(1 - burn/revenue)
}

// liquidity saturates when cash covers three months of burn. A company that
// is not burning cash is fully liquid.
func liquidity(cash, burn float64) float64 {
	if burn <= 0 {
		return 1
	}
	return clamp01(cash / (burn * liquidityCoverageMonths))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
