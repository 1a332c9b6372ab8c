package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kojoantwi/shoppoint-backend/internal/inventory"
	"github.com/kojoantwi/shoppoint-backend/internal/pos"
)

func newPosRouter(sessions *pos.Sessions, ledger *inventory.Ledger) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/v1/pos/{tillId}", func(r chi.Router) {
		r.Get("/", PosSessionFetch(sessions, nil))
		r.Patch("/", PosSetFields(sessions, nil))
		r.Post("/lines", PosAddLine(sessions, ledger, nil))
		r.Put("/lines/{productId}", PosSetLineQuantity(sessions, nil))
		r.Delete("/lines/{productId}", PosRemoveLine(sessions, nil))
	})
	return r
}

func seededPos(t *testing.T) (*pos.Sessions, *inventory.Ledger) {
	t.Helper()
	ledger := inventory.NewLedger()
	ledger.Upsert(inventory.Product{ID: "P1", Name: "Sugar 1kg", UnitPrice: decimal.NewFromInt(10), AvailableQuantity: 3})
	return pos.NewSessions(ledger, nil), ledger
}

func TestPosAddLineSuccess(t *testing.T) {
	sessions, ledger := seededPos(t)
	router := newPosRouter(sessions, ledger)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/till-1/lines", strings.NewReader(`{"productId":"P1","quantity":2}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data sessionResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Session.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(envelope.Data.Session.Lines))
	}
	if envelope.Data.TotalItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", envelope.Data.TotalItemCount)
	}
	if ledger.AvailableQuantity("P1") != 1 {
		t.Fatalf("expected 1 left in ledger, got %d", ledger.AvailableQuantity("P1"))
	}
}

func TestPosAddLineInsufficientStock(t *testing.T) {
	sessions, ledger := seededPos(t)
	router := newPosRouter(sessions, ledger)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/till-1/lines", strings.NewReader(`{"productId":"P1","quantity":9}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "INSUFFICIENT_STOCK") {
		t.Fatalf("expected INSUFFICIENT_STOCK in body: %s", resp.Body.String())
	}
}

func TestPosAddLineUnknownProductRequiresDetails(t *testing.T) {
	sessions, ledger := seededPos(t)
	router := newPosRouter(sessions, ledger)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/till-1/lines", strings.NewReader(`{"productId":"SVC"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestPosSetFieldsInvalidModeOfPayment(t *testing.T) {
	sessions, ledger := seededPos(t)
	router := newPosRouter(sessions, ledger)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/pos/till-1", strings.NewReader(`{"modeOfPayment":"barter"}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestPosRemoveLineReleasesStock(t *testing.T) {
	sessions, ledger := seededPos(t)
	router := newPosRouter(sessions, ledger)

	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/pos/till-1/lines", strings.NewReader(`{"productId":"P1","quantity":2}`))
	router.ServeHTTP(httptest.NewRecorder(), addReq)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/pos/till-1/lines/P1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if ledger.AvailableQuantity("P1") != 3 {
		t.Fatalf("expected stock restored to 3, got %d", ledger.AvailableQuantity("P1"))
	}
}

func TestPosSetLineQuantityOverAvailable(t *testing.T) {
	sessions, ledger := seededPos(t)
	router := newPosRouter(sessions, ledger)

	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/pos/till-1/lines", strings.NewReader(`{"productId":"P1","quantity":1}`))
	router.ServeHTTP(httptest.NewRecorder(), addReq)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/pos/till-1/lines/P1", strings.NewReader(`{"quantity":10}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d: %s", resp.Code, resp.Body.String())
	}
}
