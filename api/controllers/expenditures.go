package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kojoantwi/shoppoint-backend/api/responses"
	"github.com/kojoantwi/shoppoint-backend/api/validators"
	"github.com/kojoantwi/shoppoint-backend/internal/expenditures"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
)

type createExpenditureRequest struct {
	WarehouseID      string          `json:"warehouseId"`
	AccountID        string          `json:"accountId"`
	Item             string          `json:"item" validate:"required"`
	Type             string          `json:"type" validate:"required,oneof=goods services"`
	Quantity         int             `json:"quantity" validate:"required,min=1"`
	PricePerQuantity decimal.Decimal `json:"pricePerQuantity"`
	HasDiscount      bool            `json:"hasDiscount"`
	Discount         decimal.Decimal `json:"discount"`
	HasReceipt       bool            `json:"hasReceipt"`
	ReceiptNumber    string          `json:"receiptNumber"`
	ExpenseHead      string          `json:"expenseHead"`
	SubExpense       string          `json:"subExpense"`
	Description      string          `json:"description"`

	ModeOfPayment     string `json:"modeOfPayment" validate:"required"`
	MobileMoneyNumber string `json:"mobileMoneyNumber"`
	NetworkType       string `json:"networkType"`
	TransactionID     string `json:"transactionId"`
	BankName          string `json:"bankName"`
	BankAccountNumber string `json:"bankAccountNumber"`
	BankBranch        string `json:"bankBranch"`
	TransactionNumber string `json:"transactionNumber"`
	ChequeNumber      string `json:"chequeNumber"`
}

// ExpenditureCreate records a new expenditure.
func ExpenditureCreate(svc expenditures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "expenditure service unavailable"))
			return
		}

		var payload createExpenditureRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), &expenditures.Expenditure{
			WarehouseID:       payload.WarehouseID,
			AccountID:         payload.AccountID,
			Item:              payload.Item,
			Type:              enums.ExpenditureType(payload.Type),
			Quantity:          payload.Quantity,
			PricePerQuantity:  payload.PricePerQuantity,
			HasDiscount:       payload.HasDiscount,
			Discount:          payload.Discount,
			HasReceipt:        payload.HasReceipt,
			ReceiptNumber:     payload.ReceiptNumber,
			ExpenseHead:       payload.ExpenseHead,
			SubExpense:        payload.SubExpense,
			Description:       payload.Description,
			ModeOfPayment:     enums.ModeOfPayment(payload.ModeOfPayment),
			MobileMoneyNumber: payload.MobileMoneyNumber,
			NetworkType:       enums.NetworkType(payload.NetworkType),
			TransactionID:     payload.TransactionID,
			BankName:          payload.BankName,
			BankAccountNumber: payload.BankAccountNumber,
			BankBranch:        payload.BankBranch,
			TransactionNumber: payload.TransactionNumber,
			ChequeNumber:      payload.ChequeNumber,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// ExpenditureUpdate patches an expenditure with changed fields only.
func ExpenditureUpdate(svc expenditures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "expenditure service unavailable"))
			return
		}

		fields, err := validators.DecodeJSONMap(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "expenditureId"), fields)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

// ExpenditureList returns active expenditures, newest first.
func ExpenditureList(svc expenditures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "expenditure service unavailable"))
			return
		}

		listed, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listed)
	}
}

// ExpenditureDetail returns one expenditure.
func ExpenditureDetail(svc expenditures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "expenditure service unavailable"))
			return
		}

		record, err := svc.Get(r.Context(), chi.URLParam(r, "expenditureId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// ExpenditureDelete soft-deletes an expenditure.
func ExpenditureDelete(svc expenditures.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "expenditure service unavailable"))
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "expenditureId")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
