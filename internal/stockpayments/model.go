package stockpayments

import (
	"time"

	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Payment is one instalment against a supplier creditor balance. Payment
// details are flat, one field per channel, matching the expenditure records.
type Payment struct {
	ID         string          `json:"id"`
	CreditorID string          `json:"creditorId"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Remarks    string          `json:"remarks"`

	ModeOfPayment     enums.ModeOfPayment `json:"modeOfPayment"`
	MobileMoneyNumber string              `json:"mobileMoneyNumber"`
	NetworkType       enums.NetworkType   `json:"networkType"`
	TransactionID     string              `json:"transactionId"`
	BankName          string              `json:"bankName"`
	BankAccountNumber string              `json:"bankAccountNumber"`
	BankBranch        string              `json:"bankBranch"`
	TransactionNumber string              `json:"transactionNumber"`
	ChequeNumber      string              `json:"chequeNumber"`

	CreatedAt time.Time `json:"createdAt"`
}
