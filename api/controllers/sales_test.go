package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kojoantwi/shoppoint-backend/internal/sales"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
)

type stubSalesService struct {
	sale       *sales.Sale
	sales      []*sales.Sale
	err        error
	lastTillID string
}

func (s *stubSalesService) Checkout(_ context.Context, tillID string) (*sales.Sale, error) {
	s.lastTillID = tillID
	return s.sale, s.err
}

func (s *stubSalesService) CancelSession(_ context.Context, tillID string) error {
	s.lastTillID = tillID
	return s.err
}

func (s *stubSalesService) GetSale(context.Context, string) (*sales.Sale, error) {
	return s.sale, s.err
}

func (s *stubSalesService) ListSales(context.Context) ([]*sales.Sale, error) {
	return s.sales, s.err
}

func newSalesRouter(svc sales.Service) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/v1/pos/{tillId}/checkout", Checkout(svc, nil))
	r.Post("/api/v1/pos/{tillId}/cancel", CancelSession(svc, nil))
	r.Get("/api/v1/sales/{saleId}", SaleDetail(svc, nil))
	return r
}

func TestCheckoutSuccess(t *testing.T) {
	service := &stubSalesService{sale: &sales.Sale{ID: "S-1", ReceiptNumber: "RCPT-ABC123"}}
	router := newSalesRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/till-7/checkout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if service.lastTillID != "till-7" {
		t.Fatalf("expected till-7, got %q", service.lastTillID)
	}

	var envelope struct {
		Data sales.Sale `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ReceiptNumber != "RCPT-ABC123" {
		t.Fatalf("unexpected receipt number %q", envelope.Data.ReceiptNumber)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	service := &stubSalesService{err: pkgerrors.New(pkgerrors.CodeStateConflict, "cannot complete a sale with no items")}
	router := newSalesRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/till-1/checkout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestCancelSessionUnknownTill(t *testing.T) {
	service := &stubSalesService{err: pkgerrors.New(pkgerrors.CodeNotFound, "till session not found")}
	router := newSalesRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/till-9/cancel", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
