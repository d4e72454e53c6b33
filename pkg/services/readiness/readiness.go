package readiness

import (
	"math"

	"github.com/zyphery/cfo-core/pkg/models/domain"
)

// Factor names as rendered on the funding-readiness board.
const (
	FactorValuation  = "Valuation Multiple"
	FactorGrowth     = "Growth Rate"
	FactorCompliance = "Compliance & Audit"
	FactorTeam       = "Team Scale"
	FactorRunway     = "Cash Runway"
)

// Placeholder factors for data not modeled in the snapshot.
const (
	valuationScore  = 72
	complianceScore = 95
	teamScore       = 68
)

const (
	growthSaturationPct = 20
	runwayTargetMonths  = 12
)

// Recommendation texts, selected by overall score band.
const (
	RecommendDelay   = "Delay raise by 2 months for better multiple"
	RecommendReady   = "Ready to raise now"
	RecommendPremium = "Strong position — raise at premium valuation"
)

// Assess scores a snapshot across five raise-readiness factors, each 0-100
// except cash runway, which runs past 100 when runway exceeds the target.
func Assess(snapshot domain.FinancialSnapshot) domain.FundingReadiness {
	growthScore := int(math.Round(clamp(snapshot.Growth/growthSaturationPct*100, 0, 100)))
	growthStatus := domain.StatusWarning
	if snapshot.Growth > 15 {
		growthStatus = domain.StatusGood
	}

	runwayScore := int(math.Round(snapshot.Runway / runwayTargetMonths * 100))
	runwayStatus := domain.StatusCritical
	switch {
	case snapshot.Runway > 9:
		runwayStatus = domain.StatusGood
	case snapshot.Runway > 6:
		runwayStatus = domain.StatusWarning
	}

	factors := []domain.ReadinessFactor{
		{Name: FactorValuation, Score: valuationScore, Status: domain.StatusGood},
		{Name: FactorGrowth, Score: growthScore, Status: growthStatus},
		{Name: FactorCompliance, Score: complianceScore, Status: domain.StatusGood},
		{Name: FactorTeam, Score: teamScore, Status: domain.StatusWarning},
		{Name: FactorRunway, Score: runwayScore, Status: runwayStatus},
	}

	var sum float64
	for _, f := range factors {
		sum += float64(f.Score)
	}
	overall := int(math.Round(sum / float64(len(factors))))

	return domain.FundingReadiness{
		Score:          overall,
		Factors:        factors,
		Recommendation: recommend(overall),
	}
}

func recommend(score int) string {
	switch {
	case score < 70:
		return RecommendDelay
	case score > 85:
		return RecommendPremium
	default:
		return RecommendReady
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
