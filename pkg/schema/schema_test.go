package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_Success(t *testing.T) {
	s := Schema{
		"description": Required(String()),
		"mandatory":   Optional(Bool()),
		"default":     Optional(Scalar()),
		"options":     Optional(OneOf(String(), Map(String()))),
	}

	data := map[string]any{
		"description": "the project name",
		"mandatory":   true,
		"default":     3,
		"options":     map[string]any{"foo": "bar"},
	}

	if err := s.Validate(data); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_OptionalMayBeOmitted(t *testing.T) {
	s := Schema{
		"description": Required(String()),
		"if":          Optional(String()),
	}
	if err := s.Validate(map[string]any{"description": "x"}); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	s := Schema{
		"description": Required(String()),
		"mandatory":   Optional(Bool()),
	}

	err := s.Validate(map[string]any{
		"mandatory": "yes",
		"colour":    "blue",
	})
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	errs := ValidationErrors(err)
	if len(errs) != 3 {
		t.Fatalf("Validate() = %d errors, want 3: %v", len(errs), err)
	}

	want := []string{"description", "mandatory", "colour"}
	for i, key := range want {
		var ve *ValidationError
		if !errors.As(errs[i], &ve) {
			t.Fatalf("error %d should be *ValidationError, got %T", i, errs[i])
		}
		if ve.Key != key {
			t.Errorf("error %d key = %q, want %q", i, ve.Key, key)
		}
	}
	if !strings.Contains(err.Error(), "3 validation errors") {
		t.Errorf("unexpected message: %s", err)
	}
}

func TestValidate_UnknownAttribute(t *testing.T) {
	err := Schema{}.Validate(map[string]any{"typo": 1})
	errs := ValidationErrors(err)
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %v", err)
	}
	if !strings.Contains(errs[0].Error(), "unknown attribute") {
		t.Errorf("unexpected message: %s", errs[0])
	}
}

func TestExtend(t *testing.T) {
	base := Schema{"a": Required(String()), "b": Optional(Bool())}
	ext := base.Extend(Schema{"b": Required(Bool()), "c": Optional(Int())})

	if len(ext) != 3 {
		t.Fatalf("Extend() has %d fields, want 3", len(ext))
	}
	if !ext["b"].Required {
		t.Error("Extend() should let the argument win on conflicts")
	}
	if base["b"].Required {
		t.Error("Extend() must not modify the receiver")
	}
}

func TestTypes(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		value any
		ok    bool
	}{
		{"string", String(), "x", true},
		{"string rejects int", String(), 1, false},
		{"bool", Bool(), false, true},
		{"int", Int(), 42, true},
		{"int accepts whole float", Int(), 42.0, true},
		{"int rejects fraction", Int(), 4.2, false},
		{"scalar nil", Scalar(), nil, true},
		{"scalar float", Scalar(), 1.5, true},
		{"scalar rejects list", Scalar(), []any{1}, false},
		{"slice", Slice(String()), []any{"a", "b"}, true},
		{"slice rejects element", Slice(String()), []any{"a", 2}, false},
		{"slice rejects nil", Slice(String()), nil, false},
		{"map", Map(Bool()), map[string]any{"a": true}, true},
		{"map rejects value", Map(Bool()), map[string]any{"a": "no"}, false},
		{"enum", Enum("banner", "string"), "string", true},
		{"enum rejects", Enum("banner", "string"), "select", false},
		{"oneOf", OneOf(String(), Slice(String())), []any{"x"}, true},
		{"oneOf rejects", OneOf(String(), Bool()), 3, false},
		{"any", Any(), struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.Validate(tt.value)
			if tt.ok && err != nil {
				t.Errorf("%s.Validate(%v) = %v, want nil", tt.typ.Name(), tt.value, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("%s.Validate(%v) = nil, want error", tt.typ.Name(), tt.value)
			}
		})
	}
}

func TestCustom(t *testing.T) {
	path := Custom("path", func(v any) error {
		s, ok := v.(string)
		if !ok || s == "" || strings.HasPrefix(s, ".") {
			return errors.New("expected a dotted path")
		}
		return nil
	})

	if path.Name() != "path" {
		t.Errorf("Name() = %q", path.Name())
	}
	if err := path.Validate("a.b"); err != nil {
		t.Errorf("Validate(a.b) = %v", err)
	}
	if err := path.Validate(".a"); err == nil {
		t.Error("Validate(.a) should fail")
	}
}
