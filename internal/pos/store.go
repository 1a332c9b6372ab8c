package pos

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kojoantwi/shoppoint-backend/internal/inventory"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/metrics"
	"github.com/kojoantwi/shoppoint-backend/pkg/patch"
	"github.com/shopspring/decimal"
)

// Ledger is the inventory surface the store reserves stock against.
type Ledger interface {
	Product(id string) (inventory.Product, bool)
	AvailableQuantity(id string) int
	DecrementAvailable(id string, amount int)
	IncrementAvailable(id string, amount int)
}

// ResetMode controls what happens to reserved stock when a session is reset.
type ResetMode string

const (
	// ResetCompleted keeps reservations consumed; the stock left the shop.
	ResetCompleted ResetMode = "completed"
	// ResetAbandoned releases every line's reserved quantity back to the ledger.
	ResetAbandoned ResetMode = "abandoned"
)

// Store owns one in-progress sale session. Every mutation runs under the
// store mutex, so a ledger adjustment and its matching line write are
// observed together or not at all.
type Store struct {
	mu      sync.Mutex
	ledger  Ledger
	metrics *metrics.SaleMetrics
	session *Session
}

// NewStore returns a store over the empty initial session.
func NewStore(ledger Ledger, saleMetrics *metrics.SaleMetrics) *Store {
	return &Store{
		ledger:  ledger,
		metrics: saleMetrics,
		session: NewSession(),
	}
}

// Snapshot returns a deep copy of the current session for display.
func (s *Store) Snapshot() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// AddLine merges the item into the cart, reserving its quantity from the
// ledger. An incoming quantity below one counts as one. Products the ledger
// does not track are added without reservation.
func (s *Store) AddLine(item Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	_, tracked := s.ledger.Product(item.ID)
	if tracked && item.Quantity > s.ledger.AvailableQuantity(item.ID) {
		s.metrics.IncStockRejection("add_line")
		return insufficientStock(item.ID, s.ledger.AvailableQuantity(item.ID))
	}
	if tracked {
		s.ledger.DecrementAvailable(item.ID, item.Quantity)
	}

	for i := range s.session.Lines {
		if s.session.Lines[i].ID == item.ID {
			s.session.Lines[i].Quantity += item.Quantity
			return nil
		}
	}
	s.session.Lines = append(s.session.Lines, item)
	return nil
}

// RemoveLine deletes the line entirely and releases its reserved quantity
// back to the ledger. Unknown ids are a no-op.
func (s *Store) RemoveLine(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.session.Lines {
		if line.ID == id {
			s.ledger.IncrementAvailable(id, line.Quantity)
			s.session.Lines = append(s.session.Lines[:i], s.session.Lines[i+1:]...)
			return
		}
	}
}

// SetLineQuantity writes an absolute quantity onto the line, adjusting the
// ledger by the signed delta. Quantities below one are ignored; a quantity
// beyond the available stock of a tracked product fails without touching
// cart or ledger.
func (s *Store) SetLineQuantity(id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return nil
	}

	var line *Line
	for i := range s.session.Lines {
		if s.session.Lines[i].ID == id {
			line = &s.session.Lines[i]
			break
		}
	}
	if line == nil {
		return nil
	}

	// availability is what remains outside the cart; the guard compares the
	// requested absolute quantity against it, matching the till UI.
	_, tracked := s.ledger.Product(id)
	if tracked && quantity > s.ledger.AvailableQuantity(id) {
		s.metrics.IncStockRejection("set_line_quantity")
		return insufficientStock(id, s.ledger.AvailableQuantity(id))
	}

	delta := quantity - line.Quantity
	if tracked {
		if delta > 0 {
			s.ledger.DecrementAvailable(id, delta)
		} else if delta < 0 {
			s.ledger.IncrementAvailable(id, -delta)
		}
	}
	line.Quantity = quantity
	return nil
}

// IncrementLineQuantity raises the line quantity by amount, reserving the
// same amount from the ledger. The availability guard applies just as it
// does for SetLineQuantity.
func (s *Store) IncrementLineQuantity(id string, amount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount < 1 {
		return nil
	}

	var line *Line
	for i := range s.session.Lines {
		if s.session.Lines[i].ID == id {
			line = &s.session.Lines[i]
			break
		}
	}
	if line == nil {
		return nil
	}

	_, tracked := s.ledger.Product(id)
	if tracked && amount > s.ledger.AvailableQuantity(id) {
		s.metrics.IncStockRejection("increment_line_quantity")
		return insufficientStock(id, s.ledger.AvailableQuantity(id))
	}
	if tracked {
		s.ledger.DecrementAvailable(id, amount)
	}
	line.Quantity += amount
	return nil
}

// DecrementLineQuantity lowers the line quantity by amount, releasing the
// same amount back to the ledger. A decrement that would take the line under
// one is a no-op; RemoveLine is the path to drop a line.
func (s *Store) DecrementLineQuantity(id string, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount < 1 {
		return
	}

	for i := range s.session.Lines {
		if s.session.Lines[i].ID == id {
			if s.session.Lines[i].Quantity-amount < 1 {
				return
			}
			s.ledger.IncrementAvailable(id, amount)
			s.session.Lines[i].Quantity -= amount
			return
		}
	}
}

// TotalAmount is the sum of unit price times quantity over all lines.
func (s *Store) TotalAmount() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, line := range s.session.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// TotalItemCount is the sum of quantities over all lines.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.session.Lines {
		count += line.Quantity
	}
	return count
}

// SetModeOfPayment transitions the payment channel, clearing the
// payment-detail sub-objects that do not belong to the new mode.
func (s *Store) SetModeOfPayment(mode enums.ModeOfPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyModeOfPayment(mode)
}

func (s *Store) applyModeOfPayment(mode enums.ModeOfPayment) error {
	if !mode.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid mode of payment %q", mode))
	}
	switch mode {
	case enums.ModeOfPaymentCash:
		s.session.MobileMoneyPayment = nil
		s.session.BankPayment = nil
		s.session.ChequePayment = nil
	case enums.ModeOfPaymentMobileMoney:
		s.session.BankPayment = nil
		s.session.ChequePayment = nil
	case enums.ModeOfPaymentBank:
		s.session.MobileMoneyPayment = nil
		s.session.ChequePayment = nil
	case enums.ModeOfPaymentCheque:
		s.session.MobileMoneyPayment = nil
		s.session.BankPayment = nil
	}
	s.session.ModeOfPayment = mode
	return nil
}

// SetFields merges top-level or dot-path keys into the session, creating
// intermediate payment sub-objects as needed ("mobileMoneyPayment.transactionId").
// A modeOfPayment key routes through the clearing transition first.
func (s *Store) SetFields(fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := fields["modeOfPayment"]; ok {
		str, _ := raw.(string)
		mode, err := enums.ParseModeOfPayment(str)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid mode of payment")
		}
		if err := s.applyModeOfPayment(mode); err != nil {
			return err
		}
	}

	snapshot, err := sessionToMap(s.session)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session")
	}
	for key, value := range fields {
		if key == "modeOfPayment" {
			continue
		}
		snapshot = patch.Set(snapshot, key, value)
	}
	updated, err := sessionFromMap(snapshot)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid session fields")
	}
	s.session = updated
	return nil
}

// Reset replaces the session with the initial empty state. ResetAbandoned
// first releases every line's reserved quantity back to the ledger;
// ResetCompleted leaves reservations consumed.
func (s *Store) Reset(mode ResetMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == ResetAbandoned {
		for _, line := range s.session.Lines {
			s.ledger.IncrementAvailable(line.ID, line.Quantity)
		}
	}
	s.session = NewSession()
}

func insufficientStock(productID string, available int) error {
	return pkgerrors.New(pkgerrors.CodeInsufficientStock, "quantity selected is more than quantity available").
		WithDetails(map[string]any{
			"productId":         productID,
			"availableQuantity": available,
		})
}

func sessionToMap(session *Session) (map[string]any, error) {
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func sessionFromMap(snapshot map[string]any) (*Session, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	var out Session
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out.Lines == nil {
		out.Lines = []Line{}
	}
	return &out, nil
}
