package enums

import "fmt"

// ModeOfPayment describes the channel a transaction is settled through.
type ModeOfPayment string

const (
	ModeOfPaymentCash        ModeOfPayment = "cash"
	ModeOfPaymentMobileMoney ModeOfPayment = "mobile money"
	ModeOfPaymentBank        ModeOfPayment = "bank"
	ModeOfPaymentCheque      ModeOfPayment = "cheque"
)

var validModesOfPayment = []ModeOfPayment{
	ModeOfPaymentCash,
	ModeOfPaymentMobileMoney,
	ModeOfPaymentBank,
	ModeOfPaymentCheque,
}

// String implements fmt.Stringer.
func (m ModeOfPayment) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ModeOfPayment.
func (m ModeOfPayment) IsValid() bool {
	for _, candidate := range validModesOfPayment {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseModeOfPayment converts raw input into a ModeOfPayment.
func ParseModeOfPayment(value string) (ModeOfPayment, error) {
	for _, candidate := range validModesOfPayment {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid mode of payment %q", value)
}
