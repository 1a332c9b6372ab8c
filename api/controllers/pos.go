package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kojoantwi/shoppoint-backend/api/responses"
	"github.com/kojoantwi/shoppoint-backend/api/validators"
	"github.com/kojoantwi/shoppoint-backend/internal/pos"
	"github.com/kojoantwi/shoppoint-backend/pkg/enums"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
)

type addLineRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type adjustQuantityRequest struct {
	Amount int `json:"amount"`
}

type setModeOfPaymentRequest struct {
	ModeOfPayment string `json:"modeOfPayment" validate:"required"`
}

type sessionResponse struct {
	TillID         string          `json:"tillId"`
	Session        *pos.Session    `json:"session"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	TotalItemCount int             `json:"totalItemCount"`
}

func newSessionResponse(tillID string, store *pos.Store) sessionResponse {
	return sessionResponse{
		TillID:         tillID,
		Session:        store.Snapshot(),
		TotalAmount:    store.TotalAmount(),
		TotalItemCount: store.TotalItemCount(),
	}
}

// PosTillList returns the tills with an open session.
func PosTillList(sessions *pos.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pos sessions unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"tills": sessions.IDs()})
	}
}

// PosSessionFetch returns the till's session with running totals.
func PosSessionFetch(sessions *pos.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pos sessions unavailable"))
			return
		}
		tillID := chi.URLParam(r, "tillId")
		responses.WriteSuccess(w, newSessionResponse(tillID, sessions.Get(tillID)))
	}
}

// PosAddLine adds a product to the till's cart. Catalog products resolve
// their name and price from the ledger; unknown products must carry both.
func PosAddLine(sessions *pos.Sessions, ledger pos.Ledger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil || ledger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pos sessions unavailable"))
			return
		}

		var payload addLineRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item := pos.Line{
			ID:        payload.ProductID,
			Name:      payload.Name,
			UnitPrice: payload.UnitPrice,
			Quantity:  payload.Quantity,
		}
		if product, ok := ledger.Product(payload.ProductID); ok {
			item.Name = product.Name
			item.UnitPrice = product.UnitPrice
		} else if payload.Name == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "name and unitPrice are required for products outside the catalog"))
			return
		}

		tillID := chi.URLParam(r, "tillId")
		store := sessions.Get(tillID)
		if err := store.AddLine(item); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSessionResponse(tillID, store))
	}
}

// PosRemoveLine drops the product from the cart, releasing its stock.
func PosRemoveLine(sessions *pos.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pos sessions unavailable"))
			return
		}
		tillID := chi.URLParam(r, "tillId")
		store := sessions.Get(tillID)
		store.RemoveLine(chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, newSessionResponse(tillID, store))
	}
}

// PosSetLineQuantity writes an absolute quantity on a cart line.
func PosSetLineQuantity(sessions *pos.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pos sessions unavailable"))
			return
		}

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tillID := chi.URLParam(r, "tillId")
		store := sessions.Get(tillID)
		if err := store.SetLineQuantity(chi.URLParam(r, "productId"), payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSessionResponse(tillID, store))
	}
}

// PosIncrementLine raises a line quantity, defaulting to one.
func PosIncrementLine(sessions *pos.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pos sessions unavailable"))
			return
		}

		amount, err := adjustAmount(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tillID := chi.URLParam(r, "tillId")
		store := sessions.Get(tillID)
		if err := store.IncrementLineQuantity(chi.URLParam(r, "productId"), amount); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSessionResponse(tillID, store))
	}
}

// PosDecrementLine lowers a line quantity, defaulting to one. Lowering below
// one leaves the line untouched.
func PosDecrementLine(sessions *pos.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pos sessions unavailable"))
			return
		}

		amount, err := adjustAmount(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tillID := chi.URLParam(r, "tillId")
		store := sessions.Get(tillID)
		store.DecrementLineQuantity(chi.URLParam(r, "productId"), amount)
		responses.WriteSuccess(w, newSessionResponse(tillID, store))
	}
}

// PosSetModeOfPayment transitions the payment channel for the session.
func PosSetModeOfPayment(sessions *pos.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pos sessions unavailable"))
			return
		}

		var payload setModeOfPaymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		mode, err := enums.ParseModeOfPayment(payload.ModeOfPayment)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid mode of payment"))
			return
		}

		tillID := chi.URLParam(r, "tillId")
		store := sessions.Get(tillID)
		if err := store.SetModeOfPayment(mode); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSessionResponse(tillID, store))
	}
}

// PosSetFields patches session fields by dot path, e.g.
// {"amountPaid": 120, "mobileMoneyPayment.networkType": "MTN"}.
func PosSetFields(sessions *pos.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "pos sessions unavailable"))
			return
		}

		fields, err := validators.DecodeJSONMap(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		tillID := chi.URLParam(r, "tillId")
		store := sessions.Get(tillID)
		if err := store.SetFields(fields); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newSessionResponse(tillID, store))
	}
}

func adjustAmount(r *http.Request) (int, error) {
	if r.Body == nil || r.ContentLength == 0 {
		return 1, nil
	}
	var payload adjustQuantityRequest
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return 0, err
	}
	if payload.Amount == 0 {
		return 1, nil
	}
	if payload.Amount < 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	return payload.Amount, nil
}
