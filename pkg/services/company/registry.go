package company

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zyphery/cfo-core/pkg/models/domain"
)

// ErrUnknownCompany is returned when a company ID is not registered.
var ErrUnknownCompany = errors.New("unknown company")

// Registry holds the demo companies and their baseline snapshots. It is
// read-only after construction.
type Registry struct {
	companies map[string]domain.Company
}

// NewRegistry builds a registry from configured companies; with none
// configured the built-in demo fixtures are used.
func NewRegistry(companies []domain.Company) (*Registry, error) {
	if len(companies) == 0 {
		companies = Fixtures()
	}

	byID := make(map[string]domain.Company, len(companies))
	for _, c := range companies {
		if c.ID == "" {
			return nil, fmt.Errorf("company %q has no id", c.Name)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate company id %q", c.ID)
		}
		byID[c.ID] = c
	}

	return &Registry{companies: byID}, nil
}

func (r *Registry) Get(id string) (domain.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return domain.Company{}, fmt.Errorf("%w: %s", ErrUnknownCompany, id)
	}
	return c, nil
}

// List returns all companies sorted by ID.
func (r *Registry) List() []domain.Company {
	out := make([]domain.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Fixtures are the built-in demo companies shown when no config is supplied:
// the AI-CFO dashboard startup plus the vendor-market comparables.
func Fixtures() []domain.Company {
	return []domain.Company{
		{
			ID:       "zyphery",
			Name:     "Zyphery",
			Industry: "fintech",
			Baseline: domain.FinancialSnapshot{
				MRR:     45000,
				Revenue: 45000,
				Burn:    85000,
				Runway:  6.2,
				Cash:    527000,
				Growth:  12.5,
				Expenses: domain.ExpenseBreakdown{
					Engineering:    45000,
					Marketing:      18000,
					Sales:          12000,
					Operations:     7000,
					Infrastructure: 3000,
				},
			},
		},
		{
			ID:       "acme",
			Name:     "Acme Analytics",
			Industry: "saas",
			Mock:     true,
			Baseline: domain.FinancialSnapshot{
				MRR:     416000,
				Revenue: 416000,
				Burn:    112000,
				Runway:  10.7,
				Cash:    1200000,
				Growth:  12.5,
				Expenses: domain.ExpenseBreakdown{
					Engineering:    280000,
					Marketing:      120000,
					Sales:          80000,
					Operations:     32000,
					Infrastructure: 16000,
				},
			},
		},
		{
			ID:       "bytecorp",
			Name:     "ByteCorp Metrics",
			Industry: "saas",
			Mock:     true,
			Baseline: domain.FinancialSnapshot{
				MRR:     625000,
				Revenue: 625000,
				Burn:    95000,
				Runway:  18.9,
				Cash:    1800000,
				Growth:  15,
				Expenses: domain.ExpenseBreakdown{
					Engineering:    380000,
					Marketing:      160000,
					Sales:          110000,
					Operations:     45000,
					Infrastructure: 25000,
				},
			},
		},
		{
			ID:       "datavue",
			Name:     "DataVue Labs",
			Industry: "saas",
			Mock:     true,
			Baseline: domain.FinancialSnapshot{
				MRR:     250000,
				Revenue: 250000,
				Burn:    68000,
				Runway:  8.8,
				Cash:    600000,
				Growth:  10,
				Expenses: domain.ExpenseBreakdown{
					Engineering:    170000,
					Marketing:      70000,
					Sales:          48000,
					Operations:     20000,
					Infrastructure: 10000,
				},
			},
		},
	}
}
