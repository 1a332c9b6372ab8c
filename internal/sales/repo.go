package sales

import (
	"context"
	"sync"

	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
)

// Repository persists completed sales for the lifetime of the process.
type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	GetByID(ctx context.Context, id string) (*Sale, error)
	List(ctx context.Context) ([]*Sale, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Sale
	order []string
}

// NewRepository returns the in-memory sales repository.
func NewRepository() Repository {
	return &memoryRepository{byID: map[string]*Sale{}}
}

func (r *memoryRepository) Create(_ context.Context, sale *Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[sale.ID]; exists {
		return pkgerrors.New(pkgerrors.CodeConflict, "sale already recorded")
	}
	r.byID[sale.ID] = sale
	r.order = append(r.order, sale.ID)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sale, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "sale not found")
	}
	return sale, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Sale, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.byID[r.order[i]])
	}
	return out, nil
}
