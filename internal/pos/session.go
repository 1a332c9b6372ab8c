// Package pos holds the in-progress sale a till operator is assembling and
// keeps its line quantities consistent with reserved inventory.
package pos

import (
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Line is one product entry in the cart. A line always carries a quantity of
// at least one; removal deletes the line outright.
type Line struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// Discount is an operator-applied reduction on the sale total.
type Discount struct {
	Type   enums.DiscountType `json:"type"`
	Amount decimal.Decimal    `json:"amount"`
}

// MobileMoneyPayment carries the details collected for mobile money receipts.
type MobileMoneyPayment struct {
	NetworkType       enums.NetworkType `json:"networkType"`
	MobileMoneyNumber string            `json:"mobileMoneyNumber"`
	TransactionID     string            `json:"transactionId"`
}

// BankPayment carries the details collected for bank transfer receipts.
type BankPayment struct {
	BankName          string `json:"bankName"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankBranch        string `json:"bankBranch"`
	TransactionNumber string `json:"transactionNumber"`
}

// ChequePayment carries the details collected for cheque receipts.
type ChequePayment struct {
	BankName     string `json:"bankName"`
	ChequeNumber string `json:"chequeNumber"`
	BankBranch   string `json:"bankBranch"`
}

// Session is the not-yet-submitted sale being assembled at a till. At most one
// of the payment-detail sub-objects is populated, and only the one matching
// ModeOfPayment.
type Session struct {
	CustomerID         string              `json:"customerId"`
	Lines              []Line              `json:"lines"`
	HasDiscount        bool                `json:"hasDiscount"`
	Discount           *Discount           `json:"discount,omitempty"`
	Tax                decimal.Decimal     `json:"tax"`
	ModeOfPayment      enums.ModeOfPayment `json:"modeOfPayment"`
	AmountPaid         decimal.Decimal     `json:"amountPaid"`
	MobileMoneyPayment *MobileMoneyPayment `json:"mobileMoneyPayment,omitempty"`
	BankPayment        *BankPayment        `json:"bankPayment,omitempty"`
	ChequePayment      *ChequePayment      `json:"chequePayment,omitempty"`
	Description        string              `json:"description,omitempty"`
}

// NewSession returns the all-empty initial state: no lines, no customer,
// cash payment, zero amounts.
func NewSession() *Session {
	return &Session{
		CustomerID:    "",
		Lines:         []Line{},
		Tax:           decimal.Zero,
		ModeOfPayment: enums.ModeOfPaymentCash,
		AmountPaid:    decimal.Zero,
	}
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Lines = make([]Line, len(s.Lines))
	copy(out.Lines, s.Lines)
	if s.Discount != nil {
		discount := *s.Discount
		out.Discount = &discount
	}
	if s.MobileMoneyPayment != nil {
		payment := *s.MobileMoneyPayment
		out.MobileMoneyPayment = &payment
	}
	if s.BankPayment != nil {
		payment := *s.BankPayment
		out.BankPayment = &payment
	}
	if s.ChequePayment != nil {
		payment := *s.ChequePayment
		out.ChequePayment = &payment
	}
	return &out
}
