package dsl

import (
	"fmt"

	"github.com/aretw0/quickstart/pkg/catalog"
	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
)

// Builder accumulates questions in declaration order.
type Builder struct {
	questions []*QuestionBuilder
	lists     map[string][]domain.Option
	err       error
}

// New creates an empty catalog builder.
func New() *Builder {
	return &Builder{lists: make(map[string][]domain.Option)}
}

// Opt is shorthand for an option.
func Opt(value, label string) domain.Option {
	return domain.Option{Value: value, Label: label}
}

// List registers a named option list.
func (b *Builder) List(name string, options ...domain.Option) *Builder {
	b.lists[name] = append(b.lists[name], options...)
	return b
}

func (b *Builder) add(path string, t domain.QuestionType, description string) *QuestionBuilder {
	if _, err := document.ParsePath(path); err != nil && b.err == nil {
		b.err = fmt.Errorf("question %s: %w", path, err)
	}
	qb := &QuestionBuilder{
		Builder:  b,
		question: domain.Question{Path: path, Type: t, Description: description},
	}
	b.questions = append(b.questions, qb)
	return qb
}

// Banner adds a banner question.
func (b *Builder) Banner(path, title string) *QuestionBuilder {
	return b.add(path, domain.QuestionBanner, title)
}

// String adds a free-text question.
func (b *Builder) String(path, description string) *QuestionBuilder {
	return b.add(path, domain.QuestionString, description)
}

// SelectSingle adds a single-choice question.
func (b *Builder) SelectSingle(path, description string) *QuestionBuilder {
	return b.add(path, domain.QuestionSelectSingle, description)
}

// SelectMulti adds a multiple-choice question.
func (b *Builder) SelectMulti(path, description string) *QuestionBuilder {
	return b.add(path, domain.QuestionSelectMulti, description)
}

// Build compiles the catalog.
func (b *Builder) Build() (*catalog.Catalog, error) {
	if b.err != nil {
		return nil, b.err
	}
	questions := make([]domain.Question, 0, len(b.questions))
	for _, qb := range b.questions {
		questions = append(questions, qb.Question())
	}
	return catalog.New(questions, b.lists)
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *catalog.Catalog {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
