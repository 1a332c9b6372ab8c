package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kojoantwi/shoppoint-backend/api/responses"
	"github.com/kojoantwi/shoppoint-backend/api/validators"
	"github.com/kojoantwi/shoppoint-backend/internal/inventory"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
)

type upsertProductRequest struct {
	ID                string          `json:"id"`
	Name              string          `json:"name" validate:"required"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	AvailableQuantity int             `json:"availableQuantity" validate:"min=0"`
}

// ProductList returns the catalog with remaining quantities.
func ProductList(ledger *inventory.Ledger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ledger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory unavailable"))
			return
		}
		responses.WriteSuccess(w, ledger.List())
	}
}

// ProductGet returns one catalog entry.
func ProductGet(ledger *inventory.Ledger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ledger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory unavailable"))
			return
		}
		product, ok := ledger.Product(chi.URLParam(r, "productId"))
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ProductUpsert creates or replaces a catalog entry.
func ProductUpsert(ledger *inventory.Ledger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ledger == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory unavailable"))
			return
		}

		var payload upsertProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.UnitPrice.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "unit price cannot be negative"))
			return
		}

		product := ledger.Upsert(inventory.Product{
			ID:                payload.ID,
			Name:              payload.Name,
			UnitPrice:         payload.UnitPrice,
			AvailableQuantity: payload.AvailableQuantity,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}
