package adapters

import (
	"sort"

	"github.com/zyphery/cfo-core/pkg/models/api"
	"github.com/zyphery/cfo-core/pkg/models/domain"
	"github.com/zyphery/cfo-core/pkg/models/store"
)

func MapScoreRecordStoreToApi(record store.ScoreRecord) api.CreditScore {
	breakdown := make([]api.FactorScore, 0, len(record.Breakdown))
	for name, fp := range record.Breakdown {
		breakdown = append(breakdown, api.FactorScore{
			Name:   name,
			Value:  fp.Value,
			Points: fp.Points,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool { return breakdown[i].Name < breakdown[j].Name })
	return api.CreditScore{
		Company:     record.Company,
		Score:       record.Score,
		LastUpdated: record.LastUpdated,
		Breakdown:   breakdown,
	}
}

func MapFactorHistoryStoreToApi(entry store.FactorHistory) api.FactorHistoryEntry {
	return api.FactorHistoryEntry{
		RecordedAt: entry.RecordedAt,
		Factors:    entry.Factors,
	}
}

func MapRankedCompanyDomainToApi(r domain.RankedCompany) api.RankedCompany {
	return api.RankedCompany{
		ID:         r.ID,
		Name:       r.Name,
		Industry:   r.Industry,
		Score:      r.Score,
		GrowthRate: r.GrowthRate,
	}
}

func MapReadinessDomainToApi(companyID string, fr domain.FundingReadiness) api.FundingReadiness {
	factors := make([]api.ReadinessFactor, 0, len(fr.Factors))
	for _, f := range fr.Factors {
		factors = append(factors, api.ReadinessFactor{
			Name:   f.Name,
			Score:  f.Score,
			Status: string(f.Status),
		})
	}
	return api.FundingReadiness{
		Company:        companyID,
		Score:          fr.Score,
		Factors:        factors,
		Recommendation: fr.Recommendation,
	}
}
