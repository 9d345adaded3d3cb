package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Type validates one attribute value.
type Type interface {
	// Name returns the human-readable name of the type (e.g. "string", "[string]").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

type stringType struct{}

func (stringType) Name() string { return "string" }

func (stringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

type boolType struct{}

func (boolType) Name() string { return "bool" }

func (boolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

type intType struct{}

func (intType) Name() string { return "int" }

func (intType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case float64:
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	}
	return fmt.Errorf("expected int, got %T", value)
}

type scalarType struct{}

func (scalarType) Name() string { return "scalar" }

func (scalarType) Validate(value any) error {
	if value == nil {
		return nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	}
	return fmt.Errorf("expected scalar, got %T", value)
}

type anyType struct{}

func (anyType) Name() string { return "any" }

func (anyType) Validate(any) error { return nil }

type sliceType struct {
	elem Type
}

func (t sliceType) Name() string { return "[" + t.elem.Name() + "]" }

func (t sliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return fmt.Errorf("expected list, got %T", value)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := t.elem.Validate(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

type mapType struct {
	elem Type
}

func (t mapType) Name() string { return "{" + t.elem.Name() + "}" }

func (t mapType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return fmt.Errorf("expected mapping, got %T", value)
	}
	iter := rv.MapRange()
	for iter.Next() {
		if err := t.elem.Validate(iter.Value().Interface()); err != nil {
			return fmt.Errorf("key %v: %w", iter.Key().Interface(), err)
		}
	}
	return nil
}

type enumType struct {
	values []string
}

func (t enumType) Name() string { return strings.Join(t.values, "|") }

func (t enumType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected one of %s, got %T", t.Name(), value)
	}
	for _, v := range t.values {
		if v == s {
			return nil
		}
	}
	return fmt.Errorf("expected one of %s, got %q", t.Name(), s)
}

type oneOfType struct {
	types []Type
}

func (t oneOfType) Name() string {
	names := make([]string, len(t.types))
	for i, typ := range t.types {
		names[i] = typ.Name()
	}
	return strings.Join(names, " or ")
}

func (t oneOfType) Validate(value any) error {
	for _, typ := range t.types {
		if typ.Validate(value) == nil {
			return nil
		}
	}
	return fmt.Errorf("expected %s, got %T", t.Name(), value)
}

type customType struct {
	name     string
	validate func(any) error
}

func (t customType) Name() string { return t.name }

func (t customType) Validate(value any) error { return t.validate(value) }

// String accepts strings.
func String() Type { return stringType{} }

// Bool accepts booleans.
func Bool() Type { return boolType{} }

// Int accepts integers, including whole floats produced by decoders.
func Int() Type { return intType{} }

// Scalar accepts null, strings, booleans and numbers.
func Scalar() Type { return scalarType{} }

// Any accepts every value.
func Any() Type { return anyType{} }

// Slice accepts lists whose elements all conform to elem.
func Slice(elem Type) Type { return sliceType{elem: elem} }

// Map accepts mappings whose values all conform to elem.
func Map(elem Type) Type { return mapType{elem: elem} }

// Enum accepts one of the given strings.
func Enum(values ...string) Type { return enumType{values: values} }

// OneOf accepts values matching at least one of types.
func OneOf(types ...Type) Type { return oneOfType{types: types} }

// Custom creates a type backed by a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return customType{name: name, validate: validate}
}
