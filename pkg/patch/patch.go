// Package patch implements the structural diff and clone-and-set helpers the
// edit screens build their partial-update payloads with. Values are expected to
// be JSON-shaped: map[string]any, []any and primitives.
package patch

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Diff returns the minimal set of fields that differ between base and compare.
//
// Keys present in base but missing from compare keep their base value in the
// result, signalling an explicit reset to the consumer. Arrays compare by
// canonical JSON and are included whole when they differ. Nested maps are
// diffed recursively and included only when the nested diff is non-empty.
// Empty-string pairs, nil pairs and NaN pairs count as equal. A nil base or
// compare yields an empty diff.
func Diff(base, compare map[string]any) map[string]any {
	diff := map[string]any{}

	if base == nil || compare == nil {
		return diff
	}

	for key, baseValue := range base {
		compareValue, present := compare[key]
		if !present {
			diff[key] = baseValue
			continue
		}

		baseArr, baseIsArr := baseValue.([]any)
		compareArr, compareIsArr := compareValue.([]any)
		if baseIsArr && compareIsArr {
			if !arraysEqual(baseArr, compareArr) {
				diff[key] = compareValue
			}
			continue
		}

		baseMap, baseIsMap := baseValue.(map[string]any)
		compareMap, compareIsMap := compareValue.(map[string]any)
		if baseIsMap && baseMap != nil && compareIsMap && compareMap != nil {
			nested := Diff(baseMap, compareMap)
			if len(nested) > 0 {
				diff[key] = nested
			}
			continue
		}

		if !primitivesEqual(baseValue, compareValue) {
			diff[key] = compareValue
		}
	}

	for key, compareValue := range compare {
		if _, present := base[key]; !present {
			diff[key] = compareValue
		}
	}

	return diff
}

// Apply shallow-merges the patch keys over a clone of base.
func Apply(base, patch map[string]any) map[string]any {
	merged, _ := Clone(base).(map[string]any)
	if merged == nil {
		merged = map[string]any{}
	}
	for key, value := range patch {
		merged[key] = Clone(value)
	}
	return merged
}

// Set writes value at the dot/bracket path on a deep clone of obj and returns
// the clone. The input is never mutated; intermediate containers are created
// as needed ("discount.type", "lines[0].quantity").
func Set(obj map[string]any, path string, value any) map[string]any {
	cloned, _ := Clone(obj).(map[string]any)
	if cloned == nil {
		cloned = map[string]any{}
	}
	segments := parsePath(path)
	if len(segments) == 0 {
		return cloned
	}
	setSegments(cloned, segments, value)
	return cloned
}

// Clone deep-copies a JSON-shaped value.
func Clone(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		if typed == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(typed))
		for k, val := range typed {
			out[k] = Clone(val)
		}
		return out
	case []any:
		if typed == nil {
			return []any(nil)
		}
		out := make([]any, len(typed))
		for i, val := range typed {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}

type pathSegment struct {
	key   string
	index int
	isIdx bool
}

func parsePath(path string) []pathSegment {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	var segments []pathSegment
	for _, part := range strings.Split(path, ".") {
		for part != "" {
			open := strings.IndexByte(part, '[')
			if open == -1 {
				segments = append(segments, pathSegment{key: part})
				break
			}
			if open > 0 {
				segments = append(segments, pathSegment{key: part[:open]})
			}
			close := strings.IndexByte(part, ']')
			if close <= open {
				segments = append(segments, pathSegment{key: part[open:]})
				break
			}
			if idx, err := strconv.Atoi(part[open+1 : close]); err == nil && idx >= 0 {
				segments = append(segments, pathSegment{index: idx, isIdx: true})
			} else {
				segments = append(segments, pathSegment{key: part[open+1 : close]})
			}
			part = part[close+1:]
		}
	}
	return segments
}

func setSegments(container any, segments []pathSegment, value any) any {
	seg := segments[0]
	last := len(segments) == 1

	if seg.isIdx {
		slice, _ := container.([]any)
		for len(slice) <= seg.index {
			slice = append(slice, nil)
		}
		if last {
			slice[seg.index] = value
		} else {
			slice[seg.index] = setSegments(childContainer(slice[seg.index], segments[1]), segments[1:], value)
		}
		return slice
	}

	m, _ := container.(map[string]any)
	if m == nil {
		m = map[string]any{}
	}
	if last {
		m[seg.key] = value
	} else {
		m[seg.key] = setSegments(childContainer(m[seg.key], segments[1]), segments[1:], value)
	}
	return m
}

func childContainer(existing any, next pathSegment) any {
	if next.isIdx {
		if slice, ok := existing.([]any); ok {
			return slice
		}
		return []any{}
	}
	if m, ok := existing.(map[string]any); ok && m != nil {
		return m
	}
	return map[string]any{}
}

func arraysEqual(a, b []any) bool {
	aJSON, errA := json.Marshal(a)
	bJSON, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return string(aJSON) == string(bJSON)
}

func primitivesEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	aStr, aIsStr := a.(string)
	bStr, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return aStr == bStr
	}
	aNum, aIsNum := toFloat(a)
	bNum, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		if math.IsNaN(aNum) && math.IsNaN(bNum) {
			return true
		}
		return aNum == bNum
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
