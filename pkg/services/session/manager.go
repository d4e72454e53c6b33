package session

import (
	"fmt"
	"sync"

	"github.com/zyphery/cfo-core/pkg/services/company"
)

// Manager hands out one session per company. HTTP handlers are concurrent
// callers, so the map is guarded; each Session serializes its own state.
type Manager struct {
	registry *company.Registry

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(registry *company.Registry) *Manager {
	return &Manager{
		registry: registry,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for a company, creating it on first use.
func (m *Manager) Get(companyID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[companyID]; ok {
		return s, nil
	}

	c, err := m.registry.Get(companyID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s := New(c)
	m.sessions[companyID] = s
	return s, nil
}
