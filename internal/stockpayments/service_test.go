package stockpayments

import (
	"context"
	"testing"
	"time"

	"github.com/kojoantwi/shoppoint-backend/internal/stock"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, balance int64) (Service, stock.CreditorRepository, string) {
	t.Helper()
	creditors := stock.NewCreditorRepository()
	now := time.Now().UTC()
	creditor := &stock.Creditor{
		ID:           "CR-1",
		BatchID:      "BATCH-1",
		SupplierID:   "SUP-1",
		SupplierName: "Accra Wholesale Ltd",
		Balance:      decimal.NewFromInt(balance),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, creditors.Create(context.Background(), creditor))

	svc, err := NewService(ServiceParams{
		Payments:  NewRepository(),
		Creditors: creditors,
	})
	require.NoError(t, err)
	return svc, creditors, creditor.ID
}

func cashPayment(creditorID string, amount int64) *Payment {
	return &Payment{
		CreditorID:    creditorID,
		AmountPaid:    decimal.NewFromInt(amount),
		ModeOfPayment: enums.ModeOfPaymentCash,
		Remarks:       "first instalment",
	}
}

func TestRecordPaymentReducesCreditorBalance(t *testing.T) {
	svc, creditors, creditorID := newTestService(t, 800)

	recorded, err := svc.RecordPayment(context.Background(), cashPayment(creditorID, 300))

	require.NoError(t, err)
	assert.NotEmpty(t, recorded.ID)

	creditor, err := creditors.GetByID(context.Background(), creditorID)
	require.NoError(t, err)
	assert.True(t, creditor.Balance.Equal(decimal.NewFromInt(500)))
	assert.False(t, creditor.Settled)
}

func TestRecordPaymentSettlesAtExactBalance(t *testing.T) {
	svc, creditors, creditorID := newTestService(t, 800)

	_, err := svc.RecordPayment(context.Background(), cashPayment(creditorID, 800))

	require.NoError(t, err)
	creditor, err := creditors.GetByID(context.Background(), creditorID)
	require.NoError(t, err)
	assert.True(t, creditor.Balance.IsZero())
	assert.True(t, creditor.Settled)
}

func TestRecordPaymentOverpaymentClampsAtZero(t *testing.T) {
	svc, creditors, creditorID := newTestService(t, 800)

	_, err := svc.RecordPayment(context.Background(), cashPayment(creditorID, 1000))

	require.NoError(t, err)
	creditor, err := creditors.GetByID(context.Background(), creditorID)
	require.NoError(t, err)
	assert.True(t, creditor.Balance.IsZero())
	assert.True(t, creditor.Settled)
}

func TestRecordPaymentAgainstSettledCreditorFails(t *testing.T) {
	svc, _, creditorID := newTestService(t, 100)
	_, err := svc.RecordPayment(context.Background(), cashPayment(creditorID, 100))
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), cashPayment(creditorID, 50))

	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestRecordPaymentValidatesChannelDetails(t *testing.T) {
	svc, _, creditorID := newTestService(t, 800)

	payment := cashPayment(creditorID, 100)
	payment.ModeOfPayment = enums.ModeOfPaymentCheque

	_, err := svc.RecordPayment(context.Background(), payment)

	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestRecordPaymentUnknownCreditor(t *testing.T) {
	svc, _, _ := newTestService(t, 800)

	_, err := svc.RecordPayment(context.Background(), cashPayment("missing", 100))

	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListPaymentsForCreditor(t *testing.T) {
	svc, _, creditorID := newTestService(t, 800)
	_, err := svc.RecordPayment(context.Background(), cashPayment(creditorID, 100))
	require.NoError(t, err)
	_, err = svc.RecordPayment(context.Background(), cashPayment(creditorID, 200))
	require.NoError(t, err)

	payments, err := svc.ListPaymentsForCreditor(context.Background(), creditorID)

	require.NoError(t, err)
	require.Len(t, payments, 2)
	// newest first
	assert.True(t, payments[0].AmountPaid.Equal(decimal.NewFromInt(200)))
}
