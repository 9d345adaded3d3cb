// Package catalog holds ordered question catalogs and the option lists they refer to.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/aretw0/quickstart/internal/compiler"
	"github.com/aretw0/quickstart/pkg/domain"
)

var (
	// ErrUnknownList is returned when a question refers to a list the catalog does not define.
	ErrUnknownList = errors.New("unknown option list")
	// ErrDuplicateQuestion is returned when two questions share a path.
	ErrDuplicateQuestion = errors.New("duplicate question")
)

//go:embed default.yml
var defaultCatalog []byte

// Catalog is an ordered, read-only set of questions. Options referenced by
// list name are already inlined.
type Catalog struct {
	questions []domain.Question
	index     map[string]int
	lists     map[string][]domain.Option
	listOrder []string
}

// New builds a catalog and resolves every OptionsRef against lists.
func New(questions []domain.Question, lists map[string][]domain.Option) (*Catalog, error) {
	names := make([]string, 0, len(lists))
	for name := range lists {
		names = append(names, name)
	}
	slices.Sort(names)
	return build(questions, lists, names)
}

func build(questions []domain.Question, lists map[string][]domain.Option, order []string) (*Catalog, error) {
	c := &Catalog{
		index:     make(map[string]int, len(questions)),
		lists:     make(map[string][]domain.Option, len(lists)),
		listOrder: order,
	}
	for name, options := range lists {
		c.lists[name] = slices.Clone(options)
	}

	for _, q := range questions {
		if _, dup := c.index[q.Path]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateQuestion, q.Path)
		}
		if q.OptionsRef != "" && len(q.Options) == 0 {
			options, ok := c.lists[q.OptionsRef]
			if !ok {
				return nil, fmt.Errorf("question %s: %w: %s", q.Path, ErrUnknownList, q.OptionsRef)
			}
			q.Options = slices.Clone(options)
		}
		c.index[q.Path] = len(c.questions)
		c.questions = append(c.questions, q)
	}
	return c, nil
}

// Parse compiles a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	res, err := compiler.Compile(data)
	if err != nil {
		return nil, err
	}
	return build(res.Questions, res.Lists, res.ListOrder)
}

// Load reads and compiles a YAML catalog.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile reads and compiles the YAML catalog at path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in catalog is broken: %v", err))
	}
	return c
}

// Questions returns the questions in catalog order.
func (c *Catalog) Questions() []domain.Question {
	return slices.Clone(c.questions)
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// Question looks up a question by nominal path.
func (c *Catalog) Question(path string) (domain.Question, bool) {
	i, ok := c.index[path]
	if !ok {
		return domain.Question{}, false
	}
	return c.questions[i], true
}

// List returns the options of a named list.
func (c *Catalog) List(name string) ([]domain.Option, bool) {
	options, ok := c.lists[name]
	return slices.Clone(options), ok
}

// ListNames returns the list names in declaration order.
func (c *Catalog) ListNames() []string {
	return slices.Clone(c.listOrder)
}
