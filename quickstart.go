package quickstart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/quickstart/internal/logging"
	"github.com/aretw0/quickstart/internal/runtime"
	"github.com/aretw0/quickstart/pkg/catalog"
	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/observability"
	"github.com/aretw0/quickstart/pkg/ports"
)

// ErrUnknownQuestion is returned by Ask for a path the catalog does not hold.
var ErrUnknownQuestion = errors.New("unknown question")

// Wizard is the high-level entry point of the library.
// It walks a question catalog against a document, one question at a time.
type Wizard struct {
	catalog    *catalog.Catalog
	engine     *runtime.Engine
	logger     *slog.Logger
	hooks      domain.Hooks
	conditions runtime.ConditionEvaluator
	defaults   runtime.DefaultEvaluator
}

// Option defines a functional option for configuring the Wizard.
type Option func(*Wizard)

// WithCatalog replaces the embedded default catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(w *Wizard) {
		w.catalog = cat
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Wizard) {
		w.logger = logger
	}
}

// WithHooks registers observability hooks. Repeated calls accumulate.
func WithHooks(hooks domain.Hooks) Option {
	return func(w *Wizard) {
		w.hooks = w.hooks.Merge(hooks)
	}
}

// WithMetrics records question outcomes into m.
func WithMetrics(m *observability.Metrics) Option {
	return func(w *Wizard) {
		if m != nil {
			w.hooks = w.hooks.Merge(m.Hooks())
		}
	}
}

// WithConditionEvaluator sets a custom evaluator for "if" conditions.
func WithConditionEvaluator(ev runtime.ConditionEvaluator) Option {
	return func(w *Wizard) {
		w.conditions = ev
	}
}

// WithDefaultEvaluator sets a custom evaluator for defaultEval expressions.
func WithDefaultEvaluator(ev runtime.DefaultEvaluator) Option {
	return func(w *Wizard) {
		w.defaults = ev
	}
}

// New creates a wizard asking through prompter.
func New(prompter ports.Prompter, opts ...Option) *Wizard {
	w := &Wizard{}
	for _, opt := range opts {
		opt(w)
	}
	if w.catalog == nil {
		w.catalog = catalog.Default()
	}
	if w.logger == nil {
		w.logger = logging.NewNop()
	}

	engineOpts := []runtime.Option{
		runtime.WithLogger(w.logger),
		runtime.WithHooks(w.hooks),
	}
	if w.conditions != nil {
		engineOpts = append(engineOpts, runtime.WithConditionEvaluator(w.conditions))
	}
	if w.defaults != nil {
		engineOpts = append(engineOpts, runtime.WithDefaultEvaluator(w.defaults))
	}
	w.engine = runtime.NewEngine(prompter, engineOpts...)
	return w
}

// Catalog returns the catalog the wizard walks.
func (w *Wizard) Catalog() *catalog.Catalog {
	return w.catalog
}

// Run processes every catalog question in order against doc.
// The first error aborts the run; doc may then hold a partial answer set
// and should not be persisted.
func (w *Wizard) Run(ctx context.Context, doc *document.Document) error {
	w.logger.Info("wizard started", "questions", w.catalog.Len())
	for _, q := range w.catalog.Questions() {
		if err := w.engine.Process(ctx, q, doc); err != nil {
			return err
		}
	}
	w.logger.Info("wizard finished")
	return nil
}

// Ask processes the single question stored at path.
func (w *Wizard) Ask(ctx context.Context, path string, doc *document.Document) error {
	q, ok := w.catalog.Question(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, path)
	}
	return w.engine.Process(ctx, q, doc)
}

// LoadDocument reads the document stored under key and lays it over the
// defaults of a fresh document.
func LoadDocument(ctx context.Context, store ports.DocumentStore, key string) (*document.Document, error) {
	persisted, err := store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return document.New(document.Overlay(document.New(nil).All(), persisted)), nil
}

// SaveDocument persists doc under key.
func SaveDocument(ctx context.Context, store ports.DocumentStore, key string, doc *document.Document) error {
	if err := store.Save(ctx, key, doc.All()); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
