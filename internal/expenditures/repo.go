package expenditures

import (
	"context"
	"sync"
	"time"

	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
)

// Repository persists expenditures for the lifetime of the process. Deletes
// are soft: the record keeps its slot but stops showing up in reads.
type Repository interface {
	Create(ctx context.Context, exp *Expenditure) error
	GetByID(ctx context.Context, id string) (*Expenditure, error)
	Update(ctx context.Context, exp *Expenditure) error
	List(ctx context.Context) ([]*Expenditure, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
}

type memoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Expenditure
	order []string
}

// NewRepository returns the in-memory expenditure repository.
func NewRepository() Repository {
	return &memoryRepository{byID: map[string]*Expenditure{}}
}

func (r *memoryRepository) Create(_ context.Context, exp *Expenditure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[exp.ID]; exists {
		return pkgerrors.New(pkgerrors.CodeConflict, "expenditure already recorded")
	}
	r.byID[exp.ID] = exp
	r.order = append(r.order, exp.ID)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Expenditure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exp, ok := r.byID[id]
	if !ok || exp.DeletedAt != nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "expenditure not found")
	}
	return exp, nil
}

func (r *memoryRepository) Update(_ context.Context, exp *Expenditure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[exp.ID]
	if !ok || existing.DeletedAt != nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "expenditure not found")
	}
	r.byID[exp.ID] = exp
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Expenditure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Expenditure, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		exp := r.byID[r.order[i]]
		if exp.DeletedAt != nil {
			continue
		}
		out = append(out, exp)
	}
	return out, nil
}

func (r *memoryRepository) SoftDelete(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.byID[id]
	if !ok || exp.DeletedAt != nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "expenditure not found")
	}
	deleted := *exp
	deleted.DeletedAt = &at
	r.byID[id] = &deleted
	return nil
}
