// Package compiler turns YAML question catalogs into domain questions.
package compiler

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/quickstart/internal/dto"
	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
)

// ErrMalformedCatalog is returned when the catalog does not have the expected shape.
var ErrMalformedCatalog = errors.New("malformed catalog")

// Result is a compiled catalog. Questions referring to a list by name keep
// the name in OptionsRef and have no inline options yet.
type Result struct {
	Questions []domain.Question
	Lists     map[string][]domain.Option
	ListOrder []string
}

// Error locates a compile failure in the source document.
type Error struct {
	Section string
	Key     string
	Line    int
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %q (line %d): %v", e.Section, e.Key, e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Compile parses a catalog document:
//
//	lists:
//	  <name>:
//	    <value>: <label> | {name: <label>}
//	questions:
//	  <path>: <attributes>
func Compile(data []byte) (*Result, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if len(root.Content) == 0 {
		return &Result{Lists: map[string][]domain.Option{}}, nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrMalformedCatalog)
	}

	res := &Result{Lists: map[string][]domain.Option{}}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		var err error
		switch key.Value {
		case "lists":
			err = res.compileLists(value)
		case "questions":
			err = res.compileQuestions(value)
		default:
			err = fmt.Errorf("%w: unknown section %q (line %d)", ErrMalformedCatalog, key.Value, key.Line)
		}
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *Result) compileLists(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: lists must be a mapping (line %d)", ErrMalformedCatalog, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, body := node.Content[i], node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return &Error{Section: "list", Key: name.Value, Line: name.Line, Err: errors.New("must be a mapping")}
		}
		options := make([]domain.Option, 0, len(body.Content)/2)
		for j := 0; j+1 < len(body.Content); j += 2 {
			label, err := listLabel(body.Content[j+1])
			if err != nil {
				return &Error{Section: "list", Key: name.Value, Line: body.Content[j].Line, Err: err}
			}
			options = append(options, domain.Option{Value: body.Content[j].Value, Label: label})
		}
		if _, dup := r.Lists[name.Value]; !dup {
			r.ListOrder = append(r.ListOrder, name.Value)
		}
		r.Lists[name.Value] = options
	}
	return nil
}

func listLabel(node *yaml.Node) (string, error) {
	if node.Kind == yaml.ScalarNode {
		return node.Value, nil
	}
	raw, err := decodeValue(node)
	if err != nil {
		return "", err
	}
	var entry dto.ListEntry
	if err := mapstructure.Decode(raw, &entry); err != nil {
		return "", err
	}
	if entry.Name == "" {
		return "", errors.New("list entry needs a name")
	}
	return entry.Name, nil
}

func (r *Result) compileQuestions(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: questions must be a mapping (line %d)", ErrMalformedCatalog, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		path, body := node.Content[i], node.Content[i+1]
		q, err := compileQuestion(path.Value, body)
		if err != nil {
			return &Error{Section: "question", Key: path.Value, Line: path.Line, Err: err}
		}
		r.Questions = append(r.Questions, q)
	}
	return nil
}

func compileQuestion(path string, node *yaml.Node) (domain.Question, error) {
	if _, err := document.ParsePath(path); err != nil {
		return domain.Question{}, err
	}
	if node.Kind != yaml.MappingNode {
		return domain.Question{}, errors.New("question must be a mapping")
	}

	raw, err := decodeValue(node)
	if err != nil {
		return domain.Question{}, err
	}
	attrs, _ := raw.(map[string]any)

	qt := domain.QuestionType(fmt.Sprint(attrs["type"]))
	if !qt.Valid() {
		return domain.Question{}, fmt.Errorf("%w: %v", domain.ErrUnknownQuestionType, attrs["type"])
	}
	if err := schemaFor(qt).Validate(attrs); err != nil {
		return domain.Question{}, err
	}

	var scalar dto.QuestionAttributes
	if err := mapstructure.Decode(attrs, &scalar); err != nil {
		return domain.Question{}, err
	}

	q := domain.Question{
		Path:               path,
		Type:               qt,
		Description:        scalar.Description,
		If:                 scalar.If,
		Mandatory:          scalar.Mandatory,
		Final:              scalar.Final,
		PathOverride:       scalar.PathOverride,
		Default:            scalar.Default,
		DefaultEval:        scalar.DefaultEval,
		DefaultDescription: scalar.DefaultDescription,
	}
	if q.PathOverride != "" {
		if _, err := document.ParsePath(q.PathOverride); err != nil {
			return domain.Question{}, fmt.Errorf("pathOverride: %w", err)
		}
	}
	if !qt.IsSelect() {
		return q, nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "default":
			// Option values are compared as text; keep "8.0" from becoming 8.
			if value.Kind == yaml.ScalarNode && value.Tag != "!!null" && !q.DefaultEval {
				q.Default = value.Value
			}
		case "options":
			if value.Kind == yaml.ScalarNode {
				q.OptionsRef = value.Value
				continue
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				q.Options = append(q.Options, domain.Option{Value: value.Content[j].Value, Label: value.Content[j+1].Value})
			}
		case "optionsConfiguration":
			cfg, err := compileOptionsConfiguration(qt, value)
			if err != nil {
				return domain.Question{}, err
			}
			q.OptionsConfiguration = cfg
		}
	}
	return q, nil
}

func compileOptionsConfiguration(qt domain.QuestionType, node *yaml.Node) (map[string]domain.OptionConfig, error) {
	out := make(map[string]domain.OptionConfig, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		option, body := node.Content[i].Value, node.Content[i+1]

		raw, err := decodeValue(body)
		if err != nil {
			return nil, err
		}
		attrs, _ := raw.(map[string]any)
		if err := optionSchemaFor(qt).Validate(attrs); err != nil {
			return nil, fmt.Errorf("optionsConfiguration %s: %w", option, err)
		}

		var scalar dto.OptionAttributes
		if err := mapstructure.Decode(attrs, &scalar); err != nil {
			return nil, err
		}
		cfg := domain.OptionConfig{If: scalar.If, DefaultIf: scalar.DefaultIf}

		for j := 0; j+1 < len(body.Content); j += 2 {
			if body.Content[j].Value != "set" {
				continue
			}
			effects := body.Content[j+1]
			for k := 0; k+1 < len(effects.Content); k += 2 {
				target := effects.Content[k].Value
				if _, err := document.ParsePath(target); err != nil {
					return nil, fmt.Errorf("optionsConfiguration %s: %w", option, err)
				}
				value, err := decodeValue(effects.Content[k+1])
				if err != nil {
					return nil, err
				}
				cfg.Set = append(cfg.Set, domain.Effect{Path: target, Value: value})
			}
		}
		out[option] = cfg
	}
	return out, nil
}

func decodeValue(node *yaml.Node) (any, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return document.Normalize(v), nil
}
