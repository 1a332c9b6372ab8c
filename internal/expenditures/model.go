package expenditures

import (
	"time"

	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Expenditure records money leaving the business outside the sales flow:
// goods purchases and service payments. Payment details are kept flat, one
// field per channel, and the set matching ModeOfPayment is the only one
// populated.
type Expenditure struct {
	ID               string                `json:"id"`
	WarehouseID      string                `json:"warehouseId"`
	AccountID        string                `json:"accountId"`
	Item             string                `json:"item"`
	Type             enums.ExpenditureType `json:"type"`
	Quantity         int                   `json:"quantity"`
	PricePerQuantity decimal.Decimal       `json:"pricePerQuantity"`
	HasDiscount      bool                  `json:"hasDiscount"`
	Discount         decimal.Decimal       `json:"discount"`
	HasReceipt       bool                  `json:"hasReceipt"`
	ReceiptNumber    string                `json:"receiptNumber"`
	ExpenseHead      string                `json:"expenseHead"`
	SubExpense       string                `json:"subExpense"`
	Description      string                `json:"description"`

	ModeOfPayment     enums.ModeOfPayment `json:"modeOfPayment"`
	MobileMoneyNumber string              `json:"mobileMoneyNumber"`
	NetworkType       enums.NetworkType   `json:"networkType"`
	TransactionID     string              `json:"transactionId"`
	BankName          string              `json:"bankName"`
	BankAccountNumber string              `json:"bankAccountNumber"`
	BankBranch        string              `json:"bankBranch"`
	TransactionNumber string              `json:"transactionNumber"`
	ChequeNumber      string              `json:"chequeNumber"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// Amount is the gross line cost before any discount.
func (e *Expenditure) Amount() decimal.Decimal {
	return e.PricePerQuantity.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// NetAmount is the amount after subtracting the discount when one applies.
func (e *Expenditure) NetAmount() decimal.Decimal {
	if !e.HasDiscount {
		return e.Amount()
	}
	return e.Amount().Sub(e.Discount)
}
