package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kojoantwi/shoppoint-backend/internal/inventory"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Service manages incoming stock batches and the supplier balances they
// leave behind.
type Service interface {
	CreateBatch(ctx context.Context, batch *Batch) (*Batch, error)
	ApproveBatch(ctx context.Context, id string) (*Batch, error)
	RejectBatch(ctx context.Context, id string) (*Batch, error)
	GetBatch(ctx context.Context, id string) (*Batch, error)
	ListBatches(ctx context.Context) ([]*Batch, error)
	GetCreditor(ctx context.Context, id string) (*Creditor, error)
	ListCreditors(ctx context.Context) ([]*Creditor, error)
}

// ServiceParams wires the stock service dependencies.
type ServiceParams struct {
	Batches   BatchRepository
	Creditors CreditorRepository
	Ledger    *inventory.Ledger
	Logger    *logger.Logger
}

type service struct {
	batches   BatchRepository
	creditors CreditorRepository
	ledger    *inventory.Ledger
	logg      *logger.Logger
}

// NewService wires a stock service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Batches == nil {
		return nil, fmt.Errorf("batch repository required")
	}
	if params.Creditors == nil {
		return nil, fmt.Errorf("creditor repository required")
	}
	if params.Ledger == nil {
		return nil, fmt.Errorf("inventory ledger required")
	}
	return &service{
		batches:   params.Batches,
		creditors: params.Creditors,
		ledger:    params.Ledger,
		logg:      params.Logger,
	}, nil
}

// CreateBatch records a pending delivery. Line statuses are derived from the
// received-versus-expected quantities, and a missing amount payable is
// computed from unit cost times quantity received.
func (s *service) CreateBatch(ctx context.Context, batch *Batch) (*Batch, error) {
	if batch == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock batch payload required")
	}
	record := *batch
	record.Lines = append([]Line(nil), batch.Lines...)
	if err := validateBatch(&record); err != nil {
		return nil, err
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	record.Status = enums.StockStatusPending
	record.CreatedAt = now
	record.UpdatedAt = now

	for i := range record.Lines {
		if record.Lines[i].QuantityReceived >= record.Lines[i].QuantityExpected {
			record.Lines[i].Status = enums.StockLineStatusReceived
		} else {
			record.Lines[i].Status = enums.StockLineStatusPartiallyReceived
		}
	}
	if record.AmountPayable.IsZero() {
		for _, line := range record.Lines {
			record.AmountPayable = record.AmountPayable.
				Add(line.UnitCost.Mul(decimal.NewFromInt(int64(line.QuantityReceived))))
		}
	}

	if err := s.batches.Create(ctx, &record); err != nil {
		return nil, err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"batch_id": record.ID,
			"supplier": record.SupplierID,
			"lines":    len(record.Lines),
		}), "stock batch recorded")
	}
	return &record, nil
}

// ApproveBatch moves a pending batch to approved, folds its received
// quantities into the inventory ledger, and opens a creditor for any unpaid
// balance on the invoice.
func (s *service) ApproveBatch(ctx context.Context, id string) (*Batch, error) {
	batch, err := s.batches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch.Status != enums.StockStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("stock batch is already %s", batch.Status))
	}

	updated := *batch
	updated.Status = enums.StockStatusApproved
	updated.UpdatedAt = time.Now().UTC()
	if err := s.batches.Update(ctx, &updated); err != nil {
		return nil, err
	}

	for _, line := range updated.Lines {
		if line.QuantityReceived <= 0 {
			continue
		}
		if existing, ok := s.ledger.Product(line.ProductID); ok {
			existing.AvailableQuantity += line.QuantityReceived
			if !line.SellingPrice.IsZero() {
				existing.UnitPrice = line.SellingPrice
			}
			s.ledger.Upsert(existing)
			continue
		}
		s.ledger.Upsert(inventory.Product{
			ID:                line.ProductID,
			Name:              line.ProductName,
			UnitPrice:         line.SellingPrice,
			AvailableQuantity: line.QuantityReceived,
		})
	}

	if outstanding := updated.Outstanding(); outstanding.IsPositive() {
		now := time.Now().UTC()
		creditor := &Creditor{
			ID:           uuid.NewString(),
			BatchID:      updated.ID,
			SupplierID:   updated.SupplierID,
			SupplierName: updated.SupplierName,
			Balance:      outstanding,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.creditors.Create(ctx, creditor); err != nil {
			return nil, err
		}
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "batch_id", updated.ID), "stock batch approved")
	}
	return &updated, nil
}

// RejectBatch moves a pending batch to rejected. Nothing reaches the ledger.
func (s *service) RejectBatch(ctx context.Context, id string) (*Batch, error) {
	batch, err := s.batches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch.Status != enums.StockStatusPending {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("stock batch is already %s", batch.Status))
	}

	updated := *batch
	updated.Status = enums.StockStatusRejected
	updated.UpdatedAt = time.Now().UTC()
	if err := s.batches.Update(ctx, &updated); err != nil {
		return nil, err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "batch_id", updated.ID), "stock batch rejected")
	}
	return &updated, nil
}

func (s *service) GetBatch(ctx context.Context, id string) (*Batch, error) {
	return s.batches.GetByID(ctx, id)
}

func (s *service) ListBatches(ctx context.Context) ([]*Batch, error) {
	return s.batches.List(ctx)
}

func (s *service) GetCreditor(ctx context.Context, id string) (*Creditor, error) {
	return s.creditors.GetByID(ctx, id)
}

func (s *service) ListCreditors(ctx context.Context) ([]*Creditor, error) {
	return s.creditors.List(ctx)
}

func validateBatch(batch *Batch) error {
	var errs error
	if batch.SupplierID == "" {
		errs = multierr.Append(errs, fmt.Errorf("supplier id is required"))
	}
	if len(batch.Lines) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("at least one line is required"))
	}
	for i, line := range batch.Lines {
		if line.ProductName == "" && line.ProductID == "" {
			errs = multierr.Append(errs, fmt.Errorf("line %d: product id or name is required", i))
		}
		if line.QuantityExpected < 1 {
			errs = multierr.Append(errs, fmt.Errorf("line %d: quantity expected must be at least 1", i))
		}
		if line.QuantityReceived < 0 {
			errs = multierr.Append(errs, fmt.Errorf("line %d: quantity received cannot be negative", i))
		}
		if line.UnitCost.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("line %d: unit cost cannot be negative", i))
		}
	}
	if batch.AmountPaid.IsNegative() {
		errs = multierr.Append(errs, fmt.Errorf("amount paid cannot be negative"))
	}

	if errs == nil {
		return nil
	}
	details := make([]string, 0)
	for _, err := range multierr.Errors(errs) {
		details = append(details, err.Error())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, errs, "stock batch validation failed").
		WithDetails(map[string]any{"errors": details})
}
