package insight

import (
	"fmt"

	"github.com/zyphery/cfo-core/pkg/models/domain"
)

// ForecastReport lays out a what-if projection next to its baseline.
func ForecastReport(c domain.Company, params domain.ScenarioParams, baseline, projected domain.FinancialSnapshot) *domain.Report {
	return &domain.Report{
		Title:   "What-If Forecast",
		Company: c.Name,
		Sections: []domain.ReportSection{
			{
				Title: "Scenario",
				Summary: map[string]interface{}{
					"Spend Change":   fmt.Sprintf("%+.1f%%", params.SpendChangePct),
					"Hiring Rate":    fmt.Sprintf("%.0f", params.HiringRate),
					"Revenue Growth": fmt.Sprintf("%+.1f%%", params.RevenueGrowthPct),
				},
			},
			snapshotSection("Baseline", baseline),
			snapshotSection("Projected", projected),
		},
	}
}

// ScoreReport lays out a credit score with its weighted factor breakdown.
func ScoreReport(c domain.Company, score domain.CreditScore) *domain.Report {
	details := make([]domain.ReportDetail, 0, len(score.Breakdown))
	for _, f := range score.Breakdown {
		details = append(details, domain.ReportDetail{
			Name:        f.Name,
			Value:       f.Points,
			Unit:        "pts",
			Description: fmt.Sprintf("value %.4f at weight %.2f", f.Value, f.Weight),
		})
	}

	return &domain.Report{
		Title:   "Credit Score",
		Company: c.Name,
		Sections: []domain.ReportSection{
			{
				Title: "Score",
				Summary: map[string]interface{}{
					"Total": fmt.Sprintf("%d / 1000", score.Total),
				},
				Details: details,
			},
		},
	}
}

// ReadinessReport lays out the funding-readiness board.
func ReadinessReport(c domain.Company, fr domain.FundingReadiness) *domain.Report {
	details := make([]domain.ReportDetail, 0, len(fr.Factors))
	for _, f := range fr.Factors {
		details = append(details, domain.ReportDetail{
			Name:        f.Name,
			Value:       f.Score,
			Unit:        "/100",
			Description: string(f.Status),
		})
	}

	return &domain.Report{
		Title:   "Funding Readiness",
		Company: c.Name,
		Sections: []domain.ReportSection{
			{
				Title: "Assessment",
				Summary: map[string]interface{}{
					"Overall":        fr.Score,
					"Recommendation": fr.Recommendation,
				},
				Details: details,
			},
		},
	}
}

func snapshotSection(title string, s domain.FinancialSnapshot) domain.ReportSection {
	runway := fmt.Sprintf("%.1f months", s.Runway)
	if s.Runway >= domain.InfiniteRunway {
		runway = "infinite (profitable)"
	}

	return domain.ReportSection{
		Title: title,
		Summary: map[string]interface{}{
			"MRR":    fmt.Sprintf("%.0f", s.MRR),
			"Burn":   fmt.Sprintf("%.0f", s.Burn),
			"Runway": runway,
			"Growth": fmt.Sprintf("%.1f%%", s.Growth),
		},
		Details: []domain.ReportDetail{
			{Name: "Engineering", Value: fmt.Sprintf("%.0f", s.Expenses.Engineering), Unit: "USD"},
			{Name: "Marketing", Value: fmt.Sprintf("%.0f", s.Expenses.Marketing), Unit: "USD"},
			{Name: "Sales", Value: fmt.Sprintf("%.0f", s.Expenses.Sales), Unit: "USD"},
			{Name: "Operations", Value: fmt.Sprintf("%.0f", s.Expenses.Operations), Unit: "USD"},
			{Name: "Infrastructure", Value: fmt.Sprintf("%.0f", s.Expenses.Infrastructure), Unit: "USD"},
		},
	}
}
