package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kojoantwi/shoppoint-backend/internal/pos"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
	"github.com/kojoantwi/shoppoint-backend/pkg/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// Service finalizes till sessions into recorded sales.
type Service interface {
	Checkout(ctx context.Context, tillID string) (*Sale, error)
	CancelSession(ctx context.Context, tillID string) error
	GetSale(ctx context.Context, id string) (*Sale, error)
	ListSales(ctx context.Context) ([]*Sale, error)
}

// ServiceParams wires the sales service dependencies.
type ServiceParams struct {
	Sessions      *pos.Sessions
	Repo          Repository
	SaleMetrics   *metrics.SaleMetrics
	Logger        *logger.Logger
	ReceiptPrefix string
}

type service struct {
	sessions      *pos.Sessions
	repo          Repository
	saleMetrics   *metrics.SaleMetrics
	logg          *logger.Logger
	receiptPrefix string
}

// NewService wires a sales service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Sessions == nil {
		return nil, fmt.Errorf("pos sessions required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	prefix := params.ReceiptPrefix
	if prefix == "" {
		prefix = "RCPT"
	}
	return &service{
		sessions:      params.Sessions,
		repo:          params.Repo,
		saleMetrics:   params.SaleMetrics,
		logg:          params.Logger,
		receiptPrefix: prefix,
	}, nil
}

// Checkout validates the session's payment details, records the sale and
// resets the till as completed, leaving stock reservations consumed.
func (s *service) Checkout(ctx context.Context, tillID string) (*Sale, error) {
	store, ok := s.sessions.Lookup(tillID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "till session not found")
	}

	session := store.Snapshot()
	if len(session.Lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cannot complete a sale with no items")
	}
	if err := validatePaymentDetails(session); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, line := range session.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	discountAmount := DiscountAmountFor(total, session.Discount)

	// The amount due is total minus discount; anything over is change given,
	// anything under is carried as arrears.
	discrepancy := session.AmountPaid.Sub(total).Add(discountAmount)
	changeGiven := decimal.Zero
	arrears := decimal.Zero
	if discrepancy.IsPositive() {
		changeGiven = discrepancy
	} else if discrepancy.IsNegative() {
		arrears = discrepancy.Neg()
	}

	sale := &Sale{
		ID:                 uuid.NewString(),
		ReceiptNumber:      s.nextReceiptNumber(),
		TillID:             tillID,
		CustomerID:         session.CustomerID,
		Lines:              session.Lines,
		ModeOfPayment:      session.ModeOfPayment,
		Discount:           session.Discount,
		MobileMoneyPayment: session.MobileMoneyPayment,
		BankPayment:        session.BankPayment,
		ChequePayment:      session.ChequePayment,
		TotalAmount:        total,
		DiscountAmount:     discountAmount,
		Tax:                session.Tax,
		AmountPaid:         session.AmountPaid,
		ChangeGiven:        changeGiven,
		Arrears:            arrears,
		Description:        session.Description,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	amount, _ := total.Sub(discountAmount).Float64()
	s.saleMetrics.ObserveSale(session.ModeOfPayment.String(), amount)

	store.Reset(pos.ResetCompleted)

	if s.logg != nil {
		lctx := s.logg.WithSessionID(ctx, tillID)
		s.logg.Info(s.logg.WithFields(lctx, map[string]any{
			"sale_id": sale.ID,
			"receipt": sale.ReceiptNumber,
			"total":   sale.TotalAmount,
		}), "sale recorded")
	}
	return sale, nil
}

// CancelSession abandons the till session and releases its reservations.
func (s *service) CancelSession(_ context.Context, tillID string) error {
	store, ok := s.sessions.Lookup(tillID)
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "till session not found")
	}
	store.Reset(pos.ResetAbandoned)
	return nil
}

func (s *service) GetSale(ctx context.Context, id string) (*Sale, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListSales(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}

func (s *service) nextReceiptNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return fmt.Sprintf("%s-%s", s.receiptPrefix, suffix)
}

func validatePaymentDetails(session *pos.Session) error {
	if session.AmountPaid.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "amount paid cannot be negative")
	}

	var errs error
	switch session.ModeOfPayment {
	case enums.ModeOfPaymentCash:
		// no extra details collected for cash
	case enums.ModeOfPaymentMobileMoney:
		payment := session.MobileMoneyPayment
		if payment == nil {
			errs = multierr.Append(errs, fmt.Errorf("mobile money payment details required"))
			break
		}
		if !payment.NetworkType.IsValid() {
			errs = multierr.Append(errs, fmt.Errorf("network type is required"))
		}
		if payment.MobileMoneyNumber == "" {
			errs = multierr.Append(errs, fmt.Errorf("mobile money number is required"))
		}
		if payment.TransactionID == "" {
			errs = multierr.Append(errs, fmt.Errorf("transaction id is required"))
		}
	case enums.ModeOfPaymentBank:
		payment := session.BankPayment
		if payment == nil {
			errs = multierr.Append(errs, fmt.Errorf("bank payment details required"))
			break
		}
		if payment.BankName == "" {
			errs = multierr.Append(errs, fmt.Errorf("bank name is required"))
		}
		if payment.BankAccountNumber == "" {
			errs = multierr.Append(errs, fmt.Errorf("bank account number is required"))
		}
	case enums.ModeOfPaymentCheque:
		payment := session.ChequePayment
		if payment == nil {
			errs = multierr.Append(errs, fmt.Errorf("cheque payment details required"))
			break
		}
		if payment.ChequeNumber == "" {
			errs = multierr.Append(errs, fmt.Errorf("cheque number is required"))
		}
		if payment.BankName == "" {
			errs = multierr.Append(errs, fmt.Errorf("bank name is required"))
		}
	default:
		errs = multierr.Append(errs, fmt.Errorf("invalid mode of payment %q", session.ModeOfPayment))
	}

	if errs == nil {
		return nil
	}
	details := make([]string, 0)
	for _, err := range multierr.Errors(errs) {
		details = append(details, err.Error())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, errs, "payment details incomplete").
		WithDetails(map[string]any{"errors": details})
}
