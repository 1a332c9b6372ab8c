package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kojoantwi/shoppoint-backend/api/responses"
	"github.com/kojoantwi/shoppoint-backend/api/validators"
	"github.com/kojoantwi/shoppoint-backend/internal/stockpayments"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
)

type recordStockPaymentRequest struct {
	CreditorID string          `json:"creditorId" validate:"required"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Remarks    string          `json:"remarks"`

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

// StockPaymentCreate records a payment against a supplier creditor.
func StockPaymentCreate(svc stockpayments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock payment service unavailable"))
			return
		}

		var payload recordStockPaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		recorded, err := svc.RecordPayment(r.Context(), &stockpayments.Payment{
			CreditorID:        payload.CreditorID,
			AmountPaid:        payload.AmountPaid,
			Remarks:           payload.Remarks,
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
		responses.WriteSuccessStatus(w, http.StatusCreated, recorded)
	}
}

// StockPaymentList returns recorded payments, newest first.
func StockPaymentList(svc stockpayments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock payment service unavailable"))
			return
		}

		listed, err := svc.ListPayments(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listed)
	}
}

// StockPaymentDetail returns one recorded payment.
func StockPaymentDetail(svc stockpayments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock payment service unavailable"))
			return
		}

		payment, err := svc.GetPayment(r.Context(), chi.URLParam(r, "paymentId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, payment)
	}
}

// CreditorPayments returns the payments recorded against one creditor.
func CreditorPayments(svc stockpayments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock payment service unavailable"))
			return
		}

		listed, err := svc.ListPaymentsForCreditor(r.Context(), chi.URLParam(r, "creditorId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, listed)
	}
}
