package expenditures

import (
	"context"
	"testing"

	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(), nil)
	require.NoError(t, err)
	return svc
}

func seedExpenditure(t *testing.T, svc Service) *Expenditure {
	t.Helper()
	created, err := svc.Create(context.Background(), &Expenditure{
		WarehouseID:       "WH-1",
		AccountID:         "ACC-1",
		Item:              "fuel",
		Type:              enums.ExpenditureTypeGoods,
		Quantity:          4,
		PricePerQuantity:  decimal.NewFromInt(25),
		ExpenseHead:       "logistics",
		SubExpense:        "delivery van",
		ModeOfPayment:     enums.ModeOfPaymentMobileMoney,
		MobileMoneyNumber: "0244000000",
		NetworkType:       enums.NetworkTypeMTN,
		TransactionID:     "TX-100",
	})
	require.NoError(t, err)
	return created
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	svc := newTestService(t)

	created := seedExpenditure(t, svc)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.True(t, created.Amount().Equal(decimal.NewFromInt(100)))
}

func TestCreateRejectsMissingPaymentDetails(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), &Expenditure{
		Item:             "stationery",
		Type:             enums.ExpenditureTypeGoods,
		Quantity:         1,
		PricePerQuantity: decimal.NewFromInt(5),
		ModeOfPayment:    enums.ModeOfPaymentBank,
	})

	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestUpdateAppliesOnlyChangedFields(t *testing.T) {
	svc := newTestService(t)
	created := seedExpenditure(t, svc)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"quantity":    float64(6),
		"description": "monthly fuel top-up",
	})

	require.NoError(t, err)
	assert.Equal(t, 6, updated.Quantity)
	assert.Equal(t, "monthly fuel top-up", updated.Description)
	// untouched fields survive
	assert.Equal(t, "fuel", updated.Item)
	assert.Equal(t, "TX-100", updated.TransactionID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateNoChangesIsNoop(t *testing.T) {
	svc := newTestService(t)
	created := seedExpenditure(t, svc)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"item": "fuel",
	})

	require.NoError(t, err)
	assert.Equal(t, created.UpdatedAt, updated.UpdatedAt)
}

func TestUpdateModeSwitchClearsOtherChannels(t *testing.T) {
	svc := newTestService(t)
	created := seedExpenditure(t, svc)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"modeOfPayment":     "bank",
		"bankName":          "GCB Bank Limited",
		"bankAccountNumber": "001122334455",
	})

	require.NoError(t, err)
	assert.Equal(t, enums.ModeOfPaymentBank, updated.ModeOfPayment)
	assert.Empty(t, updated.MobileMoneyNumber)
	assert.Empty(t, updated.TransactionID)
	assert.Empty(t, string(updated.NetworkType))
	assert.Equal(t, "GCB Bank Limited", updated.BankName)
}

func TestUpdateModeSwitchToCashClearsEverything(t *testing.T) {
	svc := newTestService(t)
	created := seedExpenditure(t, svc)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"modeOfPayment": "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, enums.ModeOfPaymentCash, updated.ModeOfPayment)
	assert.Empty(t, updated.MobileMoneyNumber)
	assert.Empty(t, string(updated.NetworkType))
	assert.Empty(t, updated.TransactionID)
	assert.Empty(t, updated.BankName)
	assert.Empty(t, updated.BankAccountNumber)
	assert.Empty(t, updated.ChequeNumber)
}

func TestUpdateModeSwitchWithoutNewDetailsFailsValidation(t *testing.T) {
	svc := newTestService(t)
	created := seedExpenditure(t, svc)

	_, err := svc.Update(context.Background(), created.ID, map[string]any{
		"modeOfPayment": "cheque",
	})

	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestUpdateDisablingDiscountZeroesIt(t *testing.T) {
	svc := newTestService(t)
	created := seedExpenditure(t, svc)
	_, err := svc.Update(context.Background(), created.ID, map[string]any{
		"hasDiscount": true,
		"discount":    float64(10),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"hasDiscount": false,
	})

	require.NoError(t, err)
	assert.False(t, updated.HasDiscount)
	assert.True(t, updated.Discount.IsZero())
	assert.True(t, updated.NetAmount().Equal(updated.Amount()))
}

func TestDeleteHidesRecord(t *testing.T) {
	svc := newTestService(t)
	created := seedExpenditure(t, svc)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err := svc.Get(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	listed, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = svc.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
