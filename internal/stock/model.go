package stock

import (
	"time"

	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Line is one product on an incoming stock batch. QuantityReceived may fall
// short of QuantityExpected; the line status records which.
type Line struct {
	ProductID        string                `json:"productId"`
	ProductName      string                `json:"productName"`
	UnitCost         decimal.Decimal       `json:"unitCost"`
	SellingPrice     decimal.Decimal       `json:"sellingPrice"`
	QuantityExpected int                   `json:"quantityExpected"`
	QuantityReceived int                   `json:"quantityReceived"`
	Status           enums.StockLineStatus `json:"status"`
}

// Batch is a delivery of stock from a supplier. Batches arrive pending and
// move to approved or rejected exactly once; approval is the point the
// received quantities enter the inventory ledger.
type Batch struct {
	ID            string            `json:"id"`
	BatchNumber   string            `json:"batchNumber"`
	WarehouseID   string            `json:"warehouseId"`
	SupplierID    string            `json:"supplierId"`
	SupplierName  string            `json:"supplierName"`
	TruckNumber   string            `json:"truckNumber"`
	InvoiceNumber string            `json:"invoiceNumber"`
	Lines         []Line            `json:"lines"`
	Status        enums.StockStatus `json:"status"`
	AmountPayable decimal.Decimal   `json:"amountPayable"`
	AmountPaid    decimal.Decimal   `json:"amountPaid"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// Outstanding is the unpaid share of the batch invoice.
func (b *Batch) Outstanding() decimal.Decimal {
	balance := b.AmountPayable.Sub(b.AmountPaid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// Creditor is a supplier balance still owed for an approved batch. The
// balance only moves down, through recorded payments, and the creditor is
// settled when it reaches zero.
type Creditor struct {
	ID           string          `json:"id"`
	BatchID      string          `json:"batchId"`
	SupplierID   string          `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
	Balance      decimal.Decimal `json:"balance"`
	Settled      bool            `json:"settled"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
