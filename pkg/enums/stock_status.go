package enums

import "fmt"

// StockStatus tracks a stock batch through its approval lifecycle.
type StockStatus string

const (
	StockStatusPending  StockStatus = "pending"
	StockStatusApproved StockStatus = "approved"
	StockStatusRejected StockStatus = "rejected"
)

var validStockStatuses = []StockStatus{
	StockStatusPending,
	StockStatusApproved,
	StockStatusRejected,
}

func (s StockStatus) String() string {
	return string(s)
}

func (s StockStatus) IsValid() bool {
	for _, candidate := range validStockStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockStatus converts raw input into a StockStatus.
func ParseStockStatus(value string) (StockStatus, error) {
	for _, candidate := range validStockStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock status %q", value)
}

// StockLineStatus tracks receipt of an individual stock batch line.
type StockLineStatus string

const (
	StockLineStatusReceived          StockLineStatus = "received"
	StockLineStatusPartiallyReceived StockLineStatus = "partially received"
)

func (s StockLineStatus) IsValid() bool {
	return s == StockLineStatusReceived || s == StockLineStatusPartiallyReceived
}
