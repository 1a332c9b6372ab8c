package stockpayments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kojoantwi/shoppoint-backend/internal/stock"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Service records payments against supplier creditor balances.
type Service interface {
	RecordPayment(ctx context.Context, payment *Payment) (*Payment, error)
	GetPayment(ctx context.Context, id string) (*Payment, error)
	ListPayments(ctx context.Context) ([]*Payment, error)
	ListPaymentsForCreditor(ctx context.Context, creditorID string) ([]*Payment, error)
}

// ServiceParams wires the payment service dependencies.
type ServiceParams struct {
	Payments  Repository
	Creditors stock.CreditorRepository
	Logger    *logger.Logger
}

type service struct {
	payments  Repository
	creditors stock.CreditorRepository
	logg      *logger.Logger
}

// NewService wires a stock payment service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Payments == nil {
		return nil, fmt.Errorf("payment repository required")
	}
	if params.Creditors == nil {
		return nil, fmt.Errorf("creditor repository required")
	}
	return &service{
		payments:  params.Payments,
		creditors: params.Creditors,
		logg:      params.Logger,
	}, nil
}

// RecordPayment validates the payment details, subtracts the amount from the
// creditor balance and marks the creditor settled when the balance hits zero.
// Paying more than the balance clamps it at zero rather than going negative.
func (s *service) RecordPayment(ctx context.Context, payment *Payment) (*Payment, error) {
	if payment == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment payload required")
	}
	if err := validatePayment(payment); err != nil {
		return nil, err
	}

	creditor, err := s.creditors.GetByID(ctx, payment.CreditorID)
	if err != nil {
		return nil, err
	}
	if creditor.Settled {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "creditor is already settled")
	}

	record := *payment
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()
	if err := s.payments.Create(ctx, &record); err != nil {
		return nil, err
	}

	updated := *creditor
	updated.Balance = updated.Balance.Sub(record.AmountPaid)
	if !updated.Balance.IsPositive() {
		updated.Balance = decimal.Zero
		updated.Settled = true
	}
	updated.UpdatedAt = time.Now().UTC()
	if err := s.creditors.Update(ctx, &updated); err != nil {
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"payment_id":  record.ID,
			"creditor_id": updated.ID,
			"settled":     updated.Settled,
		}), "creditor payment recorded")
	}
	return &record, nil
}

func (s *service) GetPayment(ctx context.Context, id string) (*Payment, error) {
	return s.payments.GetByID(ctx, id)
}

func (s *service) ListPayments(ctx context.Context) ([]*Payment, error) {
	return s.payments.List(ctx)
}

func (s *service) ListPaymentsForCreditor(ctx context.Context, creditorID string) ([]*Payment, error) {
	return s.payments.ListByCreditor(ctx, creditorID)
}

func validatePayment(payment *Payment) error {
	var errs error
	if payment.CreditorID == "" {
		errs = multierr.Append(errs, fmt.Errorf("creditor id is required"))
	}
	if !payment.AmountPaid.IsPositive() {
		errs = multierr.Append(errs, fmt.Errorf("amount paid must be positive"))
	}

	switch payment.ModeOfPayment {
	case enums.ModeOfPaymentCash:
	case enums.ModeOfPaymentMobileMoney:
		if payment.MobileMoneyNumber == "" {
			errs = multierr.Append(errs, fmt.Errorf("mobile money number is required"))
		}
		if !payment.NetworkType.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("network type is required"))
		}
		if payment.TransactionID == "" {
			errs = multierr.Append(errs, fmt.Errorf("transaction id is required"))
		}
	case enums.ModeOfPaymentBank:
		if payment.BankName == "" {
			errs = multierr.Append(errs, fmt.Errorf("bank name is required"))
		}
		if payment.BankAccountNumber == "" {
			errs = multierr.Append(errs, fmt.Errorf("bank account number is required"))
		}
	case enums.ModeOfPaymentCheque:
		if payment.ChequeNumber == "" {
			errs = multierr.Append(errs, fmt.Errorf("cheque number is required"))
		}
		if payment.BankName == "" {
			errs = multierr.Append(errs, fmt.Errorf("bank name is required"))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("invalid mode of payment %q", payment.ModeOfPayment))
	}

	if errs == nil {
		return nil
	}
	details := make([]string, 0)
	for _, err := range multierr.Errors(errs) {
		details = append(details, err.Error())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, errs, "payment validation failed").
		WithDetails(map[string]any{"errors": details})
}
