// Package inventory holds the in-memory product catalog and the
// available-quantity ledger the point-of-sale store reserves stock against.
package inventory

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry with its remaining sellable quantity.
type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	AvailableQuantity int             `json:"availableQuantity"`
}

// Ledger maps product ids to available quantities. It holds no reservation
// logic of its own; callers are responsible for never driving it negative,
// and adjustments clamp at zero as a backstop.
type Ledger struct {
	mu       sync.RWMutex
	products map[string]Product
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{products: map[string]Product{}}
}

// Upsert stores the product, assigning an id when missing, and returns it.
func (l *Ledger) Upsert(product Product) Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.AvailableQuantity < 0 {
		product.AvailableQuantity = 0
	}
	l.products[product.ID] = product
	return product
}

// Product returns the catalog entry for the id.
func (l *Ledger) Product(id string) (Product, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	product, ok := l.products[id]
	return product, ok
}

// AvailableQuantity returns the remaining quantity for the id, zero when the
// product is unknown.
func (l *Ledger) AvailableQuantity(id string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.products[id].AvailableQuantity
}

// DecrementAvailable reduces the available quantity, clamping at zero.
func (l *Ledger) DecrementAvailable(id string, amount int) {
	if amount <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	product, ok := l.products[id]
	if !ok {
		return
	}
	product.AvailableQuantity -= amount
	if product.AvailableQuantity < 0 {
		product.AvailableQuantity = 0
	}
	l.products[id] = product
}

// IncrementAvailable raises the available quantity for a known product.
func (l *Ledger) IncrementAvailable(id string, amount int) {
	if amount <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	product, ok := l.products[id]
	if !ok {
		return
	}
	product.AvailableQuantity += amount
	l.products[id] = product
}

// List returns the catalog ordered by product name.
func (l *Ledger) List() []Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Product, 0, len(l.products))
	for _, product := range l.products {
		out = append(out, product)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
