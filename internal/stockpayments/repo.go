package stockpayments

import (
	"context"
	"sync"

	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
)

// Repository persists creditor payments for the lifetime of the process.
type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	ListByCreditor(ctx context.Context, creditorID string) ([]*Payment, error)
	List(ctx context.Context) ([]*Payment, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*Payment
	order []string
}

// NewRepository returns the in-memory payment repository.
func NewRepository() Repository {
	return &memoryRepository{byID: map[string]*Payment{}}
}

func (r *memoryRepository) Create(_ context.Context, payment *Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[payment.ID]; exists {
		return pkgerrors.New(pkgerrors.CodeConflict, "payment already recorded")
	}
	r.byID[payment.ID] = payment
	r.order = append(r.order, payment.ID)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payment, ok := r.byID[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment not found")
	}
	return payment, nil
}

func (r *memoryRepository) ListByCreditor(_ context.Context, creditorID string) ([]*Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Payment, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		payment := r.byID[r.order[i]]
		if payment.CreditorID == creditorID {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Payment, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.byID[r.order[i]])
	}
	return out, nil
}
