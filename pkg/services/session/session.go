package session

import (
	"sync"

	"github.com/zyphery/cfo-core/pkg/models/domain"
	"github.com/zyphery/cfo-core/pkg/services/scenario"
)

// Session owns the scenario state for one company: its baseline and the
// last-applied what-if parameters. The engine itself stays pure; everything
// stateful lives here, on the caller's side.
type Session struct {
	mu      sync.Mutex
	company domain.Company
	params  domain.ScenarioParams
}

func New(company domain.Company) *Session {
	return &Session{company: company}
}

func (s *Session) Company() domain.Company {
	return s.company
}

func (s *Session) Baseline() domain.FinancialSnapshot {
	return s.company.Baseline
}

// Project validates and applies params, retains them, and returns the
// derived snapshot.
func (s *Session) Project(params domain.ScenarioParams) (domain.FinancialSnapshot, error) {
	if err := scenario.ValidateParams(params); err != nil {
		return domain.FinancialSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = params
	return scenario.Project(s.company.Baseline, params), nil
}

// Current re-derives the snapshot from the retained parameters; with no
// scenario applied it is the baseline.
func (s *Session) Current() domain.FinancialSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scenario.Project(s.company.Baseline, s.params)
}

// Params returns the last-applied scenario parameters.
func (s *Session) Params() domain.ScenarioParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Reset discards the retained parameters, returning the session to baseline.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = domain.ScenarioParams{}
}
