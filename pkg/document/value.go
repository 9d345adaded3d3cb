package document

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Normalize converts v into the document's value shapes and returns a deep copy.
// Typed slices and arrays become []any, maps with any key type become
// map[string]any, integer kinds become int and float32 becomes float64.
func Normalize(v any) any {
	switch t := v.(type) {
	case nil, string, bool, int, float64:
		return t
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt {
			return float64(u)
		}
		return int(u)
	case reflect.Float32:
		return rv.Float()
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = Normalize(iter.Value().Interface())
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Normalize(rv.Elem().Interface())
	}
	return v
}

// Text returns the canonical text of a scalar, used for loose comparisons.
// nil and false render as "", true as "1".
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// Equal reports whether two values are equal the way the document compares
// elements: scalars by canonical text, containers structurally.
func Equal(a, b any) bool {
	return equal(Normalize(a), Normalize(b))
}

func equal(a, b any) bool {
	switch x := a.(type) {
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			w, ok := y[k]
			if !ok || !equal(v, w) {
				return false
			}
		}
		return true
	}
	switch b.(type) {
	case []any, map[string]any:
		return false
	}
	return Text(a) == Text(b)
}

// Unique removes later duplicates, keeping the first occurrence of each value.
func Unique(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		item = Normalize(item)
		seen := false
		for _, kept := range out {
			if equal(kept, item) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, item)
		}
	}
	return out
}

// Overlay merges overlay over base recursively and returns a new mapping.
// Mappings merge key by key and sequences element by element; any other
// overlay value replaces the base value.
func Overlay(base, overlay map[string]any) map[string]any {
	out, _ := Normalize(base).(map[string]any)
	if out == nil {
		out = map[string]any{}
	}
	for k, v := range overlay {
		out[k] = overlayValue(out[k], Normalize(v))
	}
	return out
}

func overlayValue(base, overlay any) any {
	switch o := overlay.(type) {
	case map[string]any:
		if b, ok := base.(map[string]any); ok {
			return Overlay(b, o)
		}
	case []any:
		if b, ok := base.([]any); ok {
			out := make([]any, len(b))
			copy(out, b)
			for i, v := range o {
				if i < len(out) {
					out[i] = overlayValue(out[i], v)
				} else {
					out = append(out, v)
				}
			}
			return out
		}
	}
	return overlay
}

func indexOf(seq []any, needle string) int {
	for i, v := range seq {
		if equal(v, needle) {
			return i
		}
	}
	return -1
}

func keyOf(m map[string]any, needle string) (string, bool) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if equal(m[k], needle) {
			return k, true
		}
	}
	return "", false
}

func splice(seq []any, i int) []any {
	out := make([]any, 0, len(seq)-1)
	out = append(out, seq[:i]...)
	return append(out, seq[i+1:]...)
}
