package sales

import (
	"time"

	"github.com/kojoantwi/shoppoint-backend/internal/pos"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Sale is a completed point-of-sale transaction.
type Sale struct {
	ID                 string                  `json:"id"`
	ReceiptNumber      string                  `json:"receiptNumber"`
	TillID             string                  `json:"tillId"`
	CustomerID         string                  `json:"customerId"`
	Lines              []pos.Line              `json:"lines"`
	ModeOfPayment      enums.ModeOfPayment     `json:"modeOfPayment"`
	Discount           *pos.Discount           `json:"discount,omitempty"`
	MobileMoneyPayment *pos.MobileMoneyPayment `json:"mobileMoneyPayment,omitempty"`
	BankPayment        *pos.BankPayment        `json:"bankPayment,omitempty"`
	ChequePayment      *pos.ChequePayment      `json:"chequePayment,omitempty"`
	TotalAmount        decimal.Decimal         `json:"totalAmount"`
	DiscountAmount     decimal.Decimal         `json:"discountAmount"`
	Tax                decimal.Decimal         `json:"tax"`
	AmountPaid         decimal.Decimal         `json:"amountPaid"`
	ChangeGiven        decimal.Decimal         `json:"changeGiven"`
	Arrears            decimal.Decimal         `json:"arrears"`
	Description        string                  `json:"description,omitempty"`
	CreatedAt          time.Time               `json:"createdAt"`
}

// DiscountAmountFor resolves a discount against the sale total: fixed
// discounts apply as-is, percentage discounts as a share of the total.
func DiscountAmountFor(total decimal.Decimal, discount *pos.Discount) decimal.Decimal {
	if discount == nil {
		return decimal.Zero
	}
	switch discount.Type {
	case enums.DiscountTypeFixed:
		return discount.Amount
	case enums.DiscountTypePercentage:
		return total.Mul(discount.Amount).Div(decimal.NewFromInt(100))
	default:
		return decimal.Zero
	}
}
