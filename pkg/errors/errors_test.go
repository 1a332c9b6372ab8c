package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code      Code
		status    int
		retryable bool
		details   bool
	}{
		{CodeValidation, http.StatusBadRequest, false, true},
		{CodeNotFound, http.StatusNotFound, false, false},
		{CodeConflict, http.StatusConflict, false, false},
		{CodeStateConflict, http.StatusUnprocessableEntity, false, true},
		{CodeInsufficientStock, http.StatusUnprocessableEntity, true, true},
		{CodeIdempotency, http.StatusConflict, false, true},
		{CodeInternal, http.StatusInternalServerError, true, false},
		{CodeDependency, http.StatusServiceUnavailable, true, true},
	}

	for _, tc := range cases {
		meta := MetadataFor(tc.code)
		if meta.HTTPStatus != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.code, tc.status, meta.HTTPStatus)
		}
		if meta.Retryable != tc.retryable {
			t.Errorf("%s: expected retryable=%v, got %v", tc.code, tc.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tc.details {
			t.Errorf("%s: expected details=%v, got %v", tc.code, tc.details, meta.DetailsAllowed)
		}
		if meta.PublicMessage == "" {
			t.Errorf("%s: expected a public message", tc.code)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_NEW"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestNewCarriesCodeAndMessage(t *testing.T) {
	err := New(CodeNotFound, "till not found")
	if err.Code() != CodeNotFound {
		t.Fatalf("expected %s, got %s", CodeNotFound, err.Code())
	}
	if err.Message() != "till not found" {
		t.Fatalf("unexpected message %q", err.Message())
	}
	if err.Error() != "NOT_FOUND: till not found" {
		t.Fatalf("unexpected Error() %q", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeDependency, cause, "redis ping failed")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Fatal("expected Unwrap to return the cause")
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := Wrap(CodeInternal, nil, "boom")
	if err.Unwrap() != nil {
		t.Fatal("expected no cause")
	}
	if err.Code() != CodeInternal {
		t.Fatalf("expected %s, got %s", CodeInternal, err.Code())
	}
}

func TestAsFindsTypedErrorThroughWrapping(t *testing.T) {
	typed := New(CodeInsufficientStock, "only 2 left")
	wrapped := fmt.Errorf("adding line: %w", typed)

	found := As(wrapped)
	if found == nil {
		t.Fatal("expected typed error through fmt wrapping")
	}
	if found.Code() != CodeInsufficientStock {
		t.Fatalf("expected %s, got %s", CodeInsufficientStock, found.Code())
	}

	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "bad payload").WithDetails(map[string]any{"errors": []string{"item is required"}})
	details, ok := err.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", err.Details())
	}
	if _, ok := details["errors"]; !ok {
		t.Fatal("expected errors key in details")
	}
}

func TestDumpCollectsChain(t *testing.T) {
	cause := stdErrors.New("disk full")
	err := Wrap(CodeInternal, cause, "persisting sale")

	dump := Dump(err)
	if dump.Code != CodeInternal {
		t.Fatalf("expected code %s, got %s", CodeInternal, dump.Code)
	}
	if dump.TopMessage != err.Error() {
		t.Fatalf("unexpected top message %q", dump.TopMessage)
	}
	if len(dump.Chain) != 2 {
		t.Fatalf("expected 2 chain entries, got %d", len(dump.Chain))
	}

	if empty := Dump(nil); empty.TopMessage != "" || len(empty.Chain) != 0 {
		t.Fatalf("expected zero dump for nil error, got %+v", empty)
	}
}
