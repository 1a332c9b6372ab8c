package expenditures

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
	"github.com/kojoantwi/shoppoint-backend/pkg/patch"
	"go.uber.org/multierr"
)

// Service manages expenditure records.
type Service interface {
	Create(ctx context.Context, exp *Expenditure) (*Expenditure, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Expenditure, error)
	Get(ctx context.Context, id string) (*Expenditure, error)
	List(ctx context.Context) ([]*Expenditure, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService wires an expenditure service over the repository.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("expenditure repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

func (s *service) Create(ctx context.Context, exp *Expenditure) (*Expenditure, error) {
	if exp == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "expenditure payload required")
	}
	record := *exp
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now
	record.DeletedAt = nil

	if err := validate(&record); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		return nil, err
	}
	if s.logg != nil {
		lctx := ctx
		if record.WarehouseID != "" {
			lctx = s.logg.WithWarehouseID(lctx, record.WarehouseID)
		}
		s.logg.Info(s.logg.WithFields(lctx, map[string]any{
			"expenditure_id": record.ID,
			"item":           record.Item,
			"type":           record.Type.String(),
		}), "expenditure recorded")
	}
	return &record, nil
}

// Update merges the submitted fields into the stored record, applying only
// the keys that actually changed. Switching modeOfPayment blanks the payment
// details that belong to the other channels, and turning hasDiscount off
// zeroes the discount.
func (s *service) Update(ctx context.Context, id string, fields map[string]any) (*Expenditure, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	base, err := toMap(existing)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode expenditure")
	}

	desired := base
	for key, value := range fields {
		desired = patch.Set(desired, key, value)
	}
	changes := patch.Diff(base, desired)
	if len(changes) == 0 {
		return existing, nil
	}

	if raw, ok := changes["modeOfPayment"]; ok {
		str, _ := raw.(string)
		mode, err := enums.ParseModeOfPayment(str)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid mode of payment")
		}
		for _, field := range clearedFieldsFor(mode) {
			changes[field] = ""
		}
	}
	if raw, ok := changes["hasDiscount"]; ok {
		if enabled, _ := raw.(bool); !enabled {
			changes["discount"] = float64(0)
		}
	}

	merged := patch.Apply(base, changes)
	updated, err := fromMap(merged)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid expenditure fields")
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.DeletedAt = nil

	if err := validate(updated); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) Get(ctx context.Context, id string) (*Expenditure, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Expenditure, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id, time.Now().UTC()); err != nil {
		return err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "expenditure_id", id), "expenditure deleted")
	}
	return nil
}

// clearedFieldsFor lists the flat payment fields that do not belong to the
// given mode and must be blanked when the record transitions into it.
func clearedFieldsFor(mode enums.ModeOfPayment) []string {
	switch mode {
	case enums.ModeOfPaymentCash:
		return []string{"mobileMoneyNumber", "chequeNumber", "bankName", "bankAccountNumber", "transactionId", "networkType", "bankBranch"}
	case enums.ModeOfPaymentMobileMoney:
		return []string{"chequeNumber", "bankName", "bankAccountNumber", "bankBranch", "transactionNumber"}
	case enums.ModeOfPaymentBank:
		return []string{"chequeNumber", "mobileMoneyNumber", "transactionId", "networkType"}
	case enums.ModeOfPaymentCheque:
		return []string{"mobileMoneyNumber", "bankAccountNumber", "transactionId", "networkType", "transactionNumber"}
	default:
		return nil
	}
}

func validate(exp *Expenditure) error {
	var errs error
	if exp.Item == "" {
		errs = multierr.Append(errs, fmt.Errorf("item is required"))
	}
	if !exp.Type.IsValid() {
		errs = multierr.Append(errs, fmt.Errorf("type must be goods or services"))
	}
	if exp.Quantity < 1 {
		errs = multierr.Append(errs, fmt.Errorf("quantity must be at least 1"))
	}
	if exp.PricePerQuantity.IsNegative() {
		errs = multierr.Append(errs, fmt.Errorf("price per quantity cannot be negative"))
	}
	if exp.HasDiscount && !exp.Discount.IsPositive() {
		errs = multierr.Append(errs, fmt.Errorf("discount must be positive when enabled"))
	}
	if exp.HasReceipt && exp.ReceiptNumber == "" {
		errs = multierr.Append(errs, fmt.Errorf("receipt number is required"))
	}

	switch exp.ModeOfPayment {
	case enums.ModeOfPaymentCash:
	case enums.ModeOfPaymentMobileMoney:
		if exp.MobileMoneyNumber == "" {
			errs = multierr.Append(errs, fmt.Errorf("mobile money number is required"))
		}
		if !exp.NetworkType.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("network type is required"))
		}
		if exp.TransactionID == "" {
			errs = multierr.Append(errs, fmt.Errorf("transaction id is required"))
		}
	case enums.ModeOfPaymentBank:
		if exp.BankName == "" {
			errs = multierr.Append(errs, fmt.Errorf("bank name is required"))
		}
		if exp.BankAccountNumber == "" {
			errs = multierr.Append(errs, fmt.Errorf("bank account number is required"))
		}
	case enums.ModeOfPaymentCheque:
		if exp.ChequeNumber == "" {
			errs = multierr.Append(errs, fmt.Errorf("cheque number is required"))
		}
		if exp.BankName == "" {
			errs = multierr.Append(errs, fmt.Errorf("bank name is required"))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("invalid mode of payment %q", exp.ModeOfPayment))
	}

	if errs == nil {
		return nil
	}
	details := make([]string, 0)
	for _, err := range multierr.Errors(errs) {
		details = append(details, err.Error())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, errs, "expenditure validation failed").
		WithDetails(map[string]any{"errors": details})
}

func toMap(exp *Expenditure) (map[string]any, error) {
	raw, err := json.Marshal(exp)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromMap(snapshot map[string]any) (*Expenditure, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	var out Expenditure
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
