package schema

import (
	"maps"
	"slices"
)

// Field describes one attribute of a Schema.
type Field struct {
	Type     Type
	Required bool
}

// Required declares a field that must be present.
func Required(t Type) Field {
	return Field{Type: t, Required: true}
}

// Optional declares a field that may be omitted.
func Optional(t Type) Field {
	return Field{Type: t}
}

// Schema maps attribute names to their fields.
type Schema map[string]Field

// Extend returns a new schema holding the fields of s and other; other wins on conflicts.
func (s Schema) Extend(other Schema) Schema {
	out := make(Schema, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

// Validate checks data against the schema. Missing required fields, unknown
// attributes and type mismatches are all reported, ordered by attribute name.
func (s Schema) Validate(data map[string]any) error {
	var errs []error

	keys := slices.Sorted(maps.Keys(s))
	for _, key := range keys {
		field := s[key]
		value, ok := data[key]
		if !ok {
			if field.Required {
				errs = append(errs, &ValidationError{Key: key, Reason: "required"})
			}
			continue
		}
		if err := field.Type.Validate(value); err != nil {
			errs = append(errs, &ValidationError{Key: key, Reason: err.Error(), Value: value})
		}
	}

	for _, key := range slices.Sorted(maps.Keys(data)) {
		if _, ok := s[key]; !ok {
			errs = append(errs, &ValidationError{Key: key, Reason: "unknown attribute", Value: data[key]})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}
