package patch

import (
	"math"
	"reflect"
	"testing"
)

func TestDiffIdenticalObjectsIsEmpty(t *testing.T) {
	obj := map[string]any{
		"item":     "fuel",
		"quantity": float64(2),
		"discount": map[string]any{"type": "fixed", "amount": float64(5)},
		"tags":     []any{"a", "b"},
	}
	if got := Diff(obj, Clone(obj).(map[string]any)); len(got) != 0 {
		t.Fatalf("expected empty diff, got %#v", got)
	}
}

func TestDiffArrayMismatchIncludesCompareArray(t *testing.T) {
	base := map[string]any{"a": float64(1), "b": "", "c": []any{float64(1), float64(2)}}
	compare := map[string]any{"a": float64(1), "b": "", "c": []any{float64(1), float64(3)}}

	got := Diff(base, compare)

	want := map[string]any{"c": []any{float64(1), float64(3)}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestDiffEquivalenceClasses(t *testing.T) {
	base := map[string]any{
		"empty": "",
		"nils":  nil,
		"nan":   math.NaN(),
	}
	compare := map[string]any{
		"empty": "",
		"nils":  nil,
		"nan":   math.NaN(),
	}
	if got := Diff(base, compare); len(got) != 0 {
		t.Fatalf("expected equivalence classes excluded, got %#v", got)
	}
}

func TestDiffNestedObjectsRecurse(t *testing.T) {
	base := map[string]any{
		"bankPayment": map[string]any{"bankName": "GCB Bank Limited", "bankBranch": "Accra"},
	}
	compare := map[string]any{
		"bankPayment": map[string]any{"bankName": "CAL Bank Limited", "bankBranch": "Accra"},
	}

	got := Diff(base, compare)

	want := map[string]any{"bankPayment": map[string]any{"bankName": "CAL Bank Limited"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestDiffKeyMissingFromCompareKeepsBaseValue(t *testing.T) {
	base := map[string]any{"receiptNumber": "R-001"}
	compare := map[string]any{}

	got := Diff(base, compare)

	if got["receiptNumber"] != "R-001" {
		t.Fatalf("expected base value retained, got %#v", got)
	}
}

func TestDiffNewCompareKeyIncludedVerbatim(t *testing.T) {
	base := map[string]any{}
	compare := map[string]any{"remarks": "paid in full"}

	got := Diff(base, compare)

	if got["remarks"] != "paid in full" {
		t.Fatalf("expected new key included, got %#v", got)
	}
}

func TestDiffNilInputsReturnEmpty(t *testing.T) {
	if got := Diff(nil, map[string]any{"a": 1}); len(got) != 0 {
		t.Fatalf("expected empty diff for nil base, got %#v", got)
	}
	if got := Diff(map[string]any{"a": 1}, nil); len(got) != 0 {
		t.Fatalf("expected empty diff for nil compare, got %#v", got)
	}
}

func TestDiffApplyRoundTripFlatObjects(t *testing.T) {
	base := map[string]any{"item": "printer", "quantity": float64(1), "remarks": ""}
	compare := map[string]any{"item": "printer", "quantity": float64(3), "remarks": ""}

	merged := Apply(base, Diff(base, compare))

	if !reflect.DeepEqual(merged, compare) {
		t.Fatalf("round trip failed: %#v", merged)
	}
}

func TestSetDoesNotMutateInput(t *testing.T) {
	original := map[string]any{"discount": map[string]any{"type": "fixed"}}

	updated := Set(original, "discount.type", "percentage")

	if original["discount"].(map[string]any)["type"] != "fixed" {
		t.Fatal("input object was mutated")
	}
	if updated["discount"].(map[string]any)["type"] != "percentage" {
		t.Fatalf("expected updated clone, got %#v", updated)
	}
}

func TestSetCreatesIntermediateContainers(t *testing.T) {
	updated := Set(map[string]any{}, "mobileMoneyPayment.transactionId", "TX-88")

	nested, ok := updated["mobileMoneyPayment"].(map[string]any)
	if !ok || nested["transactionId"] != "TX-88" {
		t.Fatalf("expected nested map created, got %#v", updated)
	}
}

func TestSetBracketIndexPath(t *testing.T) {
	updated := Set(map[string]any{}, "stockData[1].quantityReceived", float64(4))

	lines, ok := updated["stockData"].([]any)
	if !ok || len(lines) != 2 {
		t.Fatalf("expected two slice slots, got %#v", updated)
	}
	line, ok := lines[1].(map[string]any)
	if !ok || line["quantityReceived"] != float64(4) {
		t.Fatalf("expected indexed write, got %#v", lines[1])
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := map[string]any{"lines": []any{map[string]any{"qty": float64(1)}}}

	cloned := Clone(original).(map[string]any)
	cloned["lines"].([]any)[0].(map[string]any)["qty"] = float64(9)

	if original["lines"].([]any)[0].(map[string]any)["qty"] != float64(1) {
		t.Fatal("clone shares structure with original")
	}
}
