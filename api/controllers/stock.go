package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kojoantwi/shoppoint-backend/api/responses"
	"github.com/kojoantwi/shoppoint-backend/api/validators"
	"github.com/kojoantwi/shoppoint-backend/internal/stock"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
)

type stockLineRequest struct {
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	SellingPrice     decimal.Decimal `json:"sellingPrice"`
	QuantityExpected int             `json:"quantityExpected" validate:"required,min=1"`
	QuantityReceived int             `json:"quantityReceived" validate:"min=0"`
}

type createStockBatchRequest struct {
	BatchNumber   string             `json:"batchNumber"`
	WarehouseID   string             `json:"warehouseId"`
	SupplierID    string             `json:"supplierId" validate:"required"`
	SupplierName  string             `json:"supplierName"`
	TruckNumber   string             `json:"truckNumber"`
	InvoiceNumber string             `json:"invoiceNumber"`
	Lines         []stockLineRequest `json:"lines" validate:"required,min=1,dive"`
	AmountPayable decimal.Decimal    `json:"amountPayable"`
	AmountPaid    decimal.Decimal    `json:"amountPaid"`
}

// StockCreate records a pending stock batch.
func StockCreate(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		var payload createStockBatchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines := make([]stock.Line, 0, len(payload.Lines))
		for _, line := range payload.Lines {
			lines = append(lines, stock.Line{
				ProductID:        line.ProductID,
				ProductName:      line.ProductName,
				UnitCost:         line.UnitCost,
				SellingPrice:     line.SellingPrice,
				QuantityExpected: line.QuantityExpected,
				QuantityReceived: line.QuantityReceived,
			})
		}

		created, err := svc.CreateBatch(r.Context(), &stock.Batch{
			BatchNumber:   payload.BatchNumber,
			WarehouseID:   payload.WarehouseID,
			SupplierID:    payload.SupplierID,
			SupplierName:  payload.SupplierName,
			TruckNumber:   payload.TruckNumber,
			InvoiceNumber: payload.InvoiceNumber,
			Lines:         lines,
			AmountPayable: payload.AmountPayable,
			AmountPaid:    payload.AmountPaid,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// StockApprove approves a pending batch, stocking the inventory ledger.
func StockApprove(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		approved, err := svc.ApproveBatch(r.Context(), chi.URLParam(r, "batchId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, approved)
	}
}

// StockReject rejects a pending batch.
func StockReject(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		rejected, err := svc.RejectBatch(r.Context(), chi.URLParam(r, "batchId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rejected)
	}
}

// StockList returns stock batches, newest first.
func StockList(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		listed, err := svc.ListBatches(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listed)
	}
}

// StockDetail returns one stock batch.
func StockDetail(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		batch, err := svc.GetBatch(r.Context(), chi.URLParam(r, "batchId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, batch)
	}
}

// CreditorList returns supplier balances, newest first.
func CreditorList(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		listed, err := svc.ListCreditors(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listed)
	}
}

// CreditorDetail returns one supplier balance.
func CreditorDetail(svc stock.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock service unavailable"))
			return
		}

		creditor, err := svc.GetCreditor(r.Context(), chi.URLParam(r, "creditorId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, creditor)
	}
}
