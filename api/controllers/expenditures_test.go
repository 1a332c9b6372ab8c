package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kojoantwi/shoppoint-backend/internal/expenditures"
	pkgerrors "github.com/kojoantwi/shoppoint-backend/pkg/errors"
)

type stubExpenditureService struct {
	record     *expenditures.Expenditure
	err        error
	lastFields map[string]any
}

func (s *stubExpenditureService) Create(_ context.Context, exp *expenditures.Expenditure) (*expenditures.Expenditure, error) {
	if s.err != nil {
		return nil, s.err
	}
	return exp, nil
}

func (s *stubExpenditureService) Update(_ context.Context, _ string, fields map[string]any) (*expenditures.Expenditure, error) {
	s.lastFields = fields
	return s.record, s.err
}

func (s *stubExpenditureService) Get(context.Context, string) (*expenditures.Expenditure, error) {
	return s.record, s.err
}

func (s *stubExpenditureService) List(context.Context) ([]*expenditures.Expenditure, error) {
	return nil, s.err
}

func (s *stubExpenditureService) Delete(context.Context, string) error {
	return s.err
}

func newExpenditureRouter(svc expenditures.Service) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/v1/expenditures", ExpenditureCreate(svc, nil))
	r.Patch("/api/v1/expenditures/{expenditureId}", ExpenditureUpdate(svc, nil))
	r.Delete("/api/v1/expenditures/{expenditureId}", ExpenditureDelete(svc, nil))
	return r
}

func TestExpenditureCreateSuccess(t *testing.T) {
	router := newExpenditureRouter(&stubExpenditureService{})

	body := `{
		"item": "fuel",
		"type": "goods",
		"quantity": 4,
		"pricePerQuantity": 25,
		"modeOfPayment": "cash"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenditures", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestExpenditureCreateMissingItem(t *testing.T) {
	router := newExpenditureRouter(&stubExpenditureService{})

	body := `{"type":"goods","quantity":1,"modeOfPayment":"cash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenditures", strings.NewReader(body))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestExpenditureUpdatePassesFieldMap(t *testing.T) {
	service := &stubExpenditureService{record: &expenditures.Expenditure{ID: "E-1"}}
	router := newExpenditureRouter(service)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/expenditures/E-1", strings.NewReader(`{"quantity":6}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if service.lastFields["quantity"] != float64(6) {
		t.Fatalf("expected quantity field forwarded, got %v", service.lastFields)
	}
}

func TestExpenditureUpdateEmptyBody(t *testing.T) {
	router := newExpenditureRouter(&stubExpenditureService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/expenditures/E-1", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestExpenditureDeleteNotFound(t *testing.T) {
	router := newExpenditureRouter(&stubExpenditureService{err: pkgerrors.New(pkgerrors.CodeNotFound, "expenditure not found")})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/expenditures/missing", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
