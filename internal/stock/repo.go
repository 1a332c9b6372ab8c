package stock

import (
	"context"
	"sync"

	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
)

// BatchRepository persists stock batches for the lifetime of the process.
type BatchRepository interface {
	Create(ctx context.Context, batch *Batch) error
	GetByID(ctx context.Context, id string) (*Batch, error)
	Update(ctx context.Context, batch *Batch) error
	List(ctx context.Context) ([]*Batch, error)
}

// CreditorRepository persists supplier balances.
type CreditorRepository interface {
	Create(ctx context.Context, creditor *Creditor) error
	GetByID(ctx context.Context, id string) (*Creditor, error)
	Update(ctx context.Context, creditor *Creditor) error
	List(ctx context.Context) ([]*Creditor, error)
}

type memoryBatchRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Batch
	order []string
}

// NewBatchRepository returns the in-memory batch repository.
func NewBatchRepository() BatchRepository {
	return &memoryBatchRepository{byID: map[string]*Batch{}}
}

func (r *memoryBatchRepository) Create(_ context.Context, batch *Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[batch.ID]; exists {
		return pkgerrors.New(pkgerrors.CodeConflict, "stock batch already recorded")
	}
	r.byID[batch.ID] = batch
	r.order = append(r.order, batch.ID)
	return nil
}

func (r *memoryBatchRepository) GetByID(_ context.Context, id string) (*Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	batch, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "stock batch not found")
	}
	return batch, nil
}

func (r *memoryBatchRepository) Update(_ context.Context, batch *Batch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[batch.ID]; !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "stock batch not found")
	}
	r.byID[batch.ID] = batch
	return nil
}

func (r *memoryBatchRepository) List(_ context.Context) ([]*Batch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Batch, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.byID[r.order[i]])
	}
	return out, nil
}

type memoryCreditorRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Creditor
	order []string
}

// NewCreditorRepository returns the in-memory creditor repository.
func NewCreditorRepository() CreditorRepository {
	return &memoryCreditorRepository{byID: map[string]*Creditor{}}
}

func (r *memoryCreditorRepository) Create(_ context.Context, creditor *Creditor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[creditor.ID]; exists {
		return pkgerrors.New(pkgerrors.CodeConflict, "creditor already recorded")
	}
	r.byID[creditor.ID] = creditor
	r.order = append(r.order, creditor.ID)
	return nil
}

func (r *memoryCreditorRepository) GetByID(_ context.Context, id string) (*Creditor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	creditor, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "creditor not found")
	}
	return creditor, nil
}

func (r *memoryCreditorRepository) Update(_ context.Context, creditor *Creditor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[creditor.ID]; !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "creditor not found")
	}
	r.byID[creditor.ID] = creditor
	return nil
}

func (r *memoryCreditorRepository) List(_ context.Context) ([]*Creditor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Creditor, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.byID[r.order[i]])
	}
	return out, nil
}
