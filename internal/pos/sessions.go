package pos

import (
	"sort"
	"sync"

	"github.com/kojoantwi/shoppoint-backend/pkg/metrics"
)

// Sessions hands out one Store per till. Stores are created on first use and
// all share the same inventory ledger.
type Sessions struct {
	mu          sync.Mutex
	ledger      Ledger
	saleMetrics *metrics.SaleMetrics
	stores      map[string]*Store
}

// NewSessions returns an empty registry over the shared ledger.
func NewSessions(ledger Ledger, saleMetrics *metrics.SaleMetrics) *Sessions {
	return &Sessions{
		ledger:      ledger,
		saleMetrics: saleMetrics,
		stores:      map[string]*Store{},
	}
}

// Get returns the store for the till, creating it when absent.
func (s *Sessions) Get(tillID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	store, ok := s.stores[tillID]
	if !ok {
		store = NewStore(s.ledger, s.saleMetrics)
		s.stores[tillID] = store
	}
	return store
}

// Lookup returns the store for the till without creating one.
func (s *Sessions) Lookup(tillID string) (*Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	store, ok := s.stores[tillID]
	return store, ok
}

// IDs lists the known till ids in stable order.
func (s *Sessions) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.stores))
	for id := range s.stores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
