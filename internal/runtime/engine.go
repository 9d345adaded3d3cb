package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/quickstart/internal/logging"
	"github.com/aretw0/quickstart/pkg/condition"
	"github.com/aretw0/quickstart/pkg/defaults"
	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/ports"
)

// ConditionEvaluator decides whether a question or option is visible.
type ConditionEvaluator interface {
	Evaluate(cond string, doc condition.Reader) (bool, error)
}

// DefaultEvaluator computes defaults flagged with defaultEval.
type DefaultEvaluator interface {
	Evaluate(expression string, doc defaults.Reader) (any, error)
}

// Engine runs the decision procedure of a single question against a document.
type Engine struct {
	prompter   ports.Prompter
	conditions ConditionEvaluator
	defaults   DefaultEvaluator
	logger     *slog.Logger
	hooks      domain.Hooks
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the logger used for decision tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithConditionEvaluator replaces the condition evaluator.
func WithConditionEvaluator(ev ConditionEvaluator) Option {
	return func(e *Engine) {
		e.conditions = ev
	}
}

// WithDefaultEvaluator replaces the default-expression evaluator.
func WithDefaultEvaluator(ev DefaultEvaluator) Option {
	return func(e *Engine) {
		e.defaults = ev
	}
}

// NewEngine creates an engine asking its questions through prompter.
func NewEngine(prompter ports.Prompter, opts ...Option) *Engine {
	e := &Engine{
		prompter:   prompter,
		conditions: condition.NewEvaluator(),
		defaults:   defaults.New(),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process asks q if it applies and writes the answer into doc.
//
// A question is skipped without I/O when its condition is false, or when it
// is final and its target already holds a value. Answers are committed to the
// target path; an empty answer removes any stored value.
func (e *Engine) Process(ctx context.Context, q domain.Question, doc *document.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if q.If != "" {
		ok, err := e.conditions.Evaluate(q.If, doc)
		if err != nil {
			return e.fail(q, err)
		}
		if !ok {
			e.logger.Debug("question skipped", "path", q.Path, "reason", domain.SkipCondition, "if", q.If)
			e.emitSkipped(ctx, q, domain.SkipCondition)
			return nil
		}
	}

	target := q.Target()
	if target != q.Path {
		e.logger.Debug("question path overridden", "path", q.Path, "target", target)
	}

	current := doc.Get(target)
	if q.Final && current != nil {
		e.logger.Debug("question skipped", "path", q.Path, "reason", domain.SkipFinal)
		e.emitSkipped(ctx, q, domain.SkipFinal)
		return nil
	}

	if err := e.validate(q); err != nil {
		return e.fail(q, err)
	}

	def, err := e.resolveDefault(q, doc)
	if err != nil {
		return e.fail(q, err)
	}

	e.emit(ctx, e.hooks.OnQuestionAsked, q, domain.EventQuestionAsked, current, false)

	var next any
	switch q.Type {
	case domain.QuestionBanner:
		if err := e.prompter.Announce(ctx, q.Description); err != nil {
			return e.fail(q, err)
		}
		return nil
	case domain.QuestionString:
		next, err = e.askString(ctx, q, current, def)
	case domain.QuestionSelectSingle:
		next, err = e.askSingle(ctx, q, doc, current, def)
	case domain.QuestionSelectMulti:
		next, err = e.askMulti(ctx, q, doc, current)
	}
	if err != nil {
		return e.fail(q, err)
	}

	return e.commit(ctx, q, doc, target, next)
}

func (e *Engine) resolveDefault(q domain.Question, doc *document.Document) (any, error) {
	if q.Default == nil || !q.DefaultEval {
		return q.Default, nil
	}
	expression, ok := q.Default.(string)
	if !ok {
		return nil, fmt.Errorf("defaultEval requires a string expression, got %T", q.Default)
	}
	v, err := e.defaults.Evaluate(expression, doc)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("default evaluated", "path", q.Path, "expression", expression, "value", v)
	return v, nil
}

func (e *Engine) askString(ctx context.Context, q domain.Question, current, def any) (any, error) {
	prompt := stringPrompt(q, current)

	prefill := ""
	if q.Mandatory {
		switch {
		case current != nil:
			prefill = document.Text(current)
		case def != nil:
			prefill = document.Text(def)
		}
	}

	for {
		answer, err := e.prompter.AskText(ctx, prompt, prefill)
		if err != nil {
			return nil, err
		}
		if answer != "" {
			return answer, nil
		}
		if !q.Mandatory {
			return nil, nil
		}
		if current != nil {
			return current, nil
		}
		e.logger.Debug("mandatory answer missing", "path", q.Path)
		e.emit(ctx, e.hooks.OnInvalidAnswer, q, domain.EventInvalidAnswer, nil, false)
		if err := e.prompter.Notify(ctx, InvalidAnswerNotice); err != nil {
			return nil, err
		}
	}
}

func (e *Engine) askSingle(ctx context.Context, q domain.Question, doc *document.Document, current, def any) (any, error) {
	options, err := e.visibleOptions(q, doc)
	if err != nil {
		return nil, err
	}
	if def, err = e.overrideDefault(q, doc, options, def); err != nil {
		return nil, err
	}

	view := singleView(q, options, current, def)
	if len(view.values) == 0 {
		return nil, ErrNoOptions
	}

	picked, err := e.prompter.AskChoice(ctx, view.prompt, view.labels, view.defaultIndex, false)
	if err != nil {
		return nil, err
	}
	if len(picked) != 1 || picked[0] < 0 || picked[0] >= len(view.values) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, picked)
	}

	value := view.values[picked[0]]
	if value == domain.NoneValue {
		return nil, nil
	}
	if err := e.applyEffects(ctx, q, doc, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (e *Engine) askMulti(ctx context.Context, q domain.Question, doc *document.Document, current any) (any, error) {
	options, err := e.visibleOptions(q, doc)
	if err != nil {
		return nil, err
	}

	view := newMultiView(q, options, current)
	if len(view.values) == 0 {
		return nil, ErrNoOptions
	}

	picked, err := e.prompter.AskChoice(ctx, view.prompt, view.labels, view.defaultIndex, true)
	if err != nil {
		return nil, err
	}

	next := view.kept
	for _, i := range picked {
		if i < 0 || i >= len(view.values) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, picked)
		}
		value := view.values[i]
		if value == domain.NoneValue {
			continue
		}
		next = append(next, value)
		if err := e.applyEffects(ctx, q, doc, value); err != nil {
			return nil, err
		}
	}

	if next == nil {
		return nil, nil
	}
	return next, nil
}

// visibleOptions drops options whose condition evaluates to false.
func (e *Engine) visibleOptions(q domain.Question, doc *document.Document) ([]domain.Option, error) {
	visible := make([]domain.Option, 0, len(q.Options))
	for _, o := range q.Options {
		cfg, ok := q.OptionsConfiguration[o.Value]
		if ok && cfg.If != "" {
			show, err := e.conditions.Evaluate(cfg.If, doc)
			if err != nil {
				return nil, fmt.Errorf("option %s: %w", o.Value, err)
			}
			if !show {
				e.logger.Debug("option hidden", "path", q.Path, "option", o.Value)
				continue
			}
		}
		visible = append(visible, o)
	}
	return visible, nil
}

// overrideDefault applies default_if conditions; the last visible option whose
// condition holds becomes the default.
func (e *Engine) overrideDefault(q domain.Question, doc *document.Document, options []domain.Option, def any) (any, error) {
	for _, o := range options {
		cfg, ok := q.OptionsConfiguration[o.Value]
		if !ok || cfg.DefaultIf == "" {
			continue
		}
		hit, err := e.conditions.Evaluate(cfg.DefaultIf, doc)
		if err != nil {
			return nil, fmt.Errorf("option %s: %w", o.Value, err)
		}
		if hit {
			e.logger.Debug("default overridden", "path", q.Path, "option", o.Value)
			def = o.Value
		}
	}
	return def, nil
}

func (e *Engine) applyEffects(ctx context.Context, q domain.Question, doc *document.Document, value string) error {
	cfg, ok := q.OptionsConfiguration[value]
	if !ok {
		return nil
	}
	for _, effect := range cfg.Set {
		if effect.IsUnset() {
			if !doc.Has(effect.Path) {
				continue
			}
			if err := doc.Unset(effect.Path); err != nil {
				return err
			}
		} else if err := doc.Set(effect.Path, effect.Value); err != nil {
			return err
		}

		e.logger.Debug("side effect applied", "path", q.Path, "option", value, "target", effect.Path, "unset", effect.IsUnset())
		if e.hooks.OnSideEffect != nil {
			e.hooks.OnSideEffect(ctx, &domain.EffectEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventSideEffect},
				Question:  q.Path,
				Option:    value,
				Path:      effect.Path,
				Value:     effect.Value,
				Unset:     effect.IsUnset(),
			})
		}
	}
	return nil
}

func (e *Engine) commit(ctx context.Context, q domain.Question, doc *document.Document, target string, next any) error {
	cleared := false
	switch {
	case next != nil:
		if err := doc.Set(target, next); err != nil {
			return e.fail(q, err)
		}
	case doc.Has(target):
		if err := doc.Unset(target); err != nil {
			return e.fail(q, err)
		}
		cleared = true
	}
	e.logger.Debug("question answered", "path", q.Path, "target", target, "value", next, "cleared", cleared)
	e.emit(ctx, e.hooks.OnQuestionAnswered, q, domain.EventQuestionAnswered, next, cleared)
	return nil
}

func (e *Engine) fail(q domain.Question, err error) error {
	return &QuestionError{Path: q.Path, Err: err}
}

func (e *Engine) emitSkipped(ctx context.Context, q domain.Question, reason string) {
	if e.hooks.OnQuestionSkipped == nil {
		return
	}
	e.hooks.OnQuestionSkipped(ctx, &domain.QuestionEvent{
		EventBase:    domain.EventBase{Timestamp: time.Now(), Type: domain.EventQuestionSkipped},
		Path:         q.Path,
		QuestionType: q.Type,
		Reason:       reason,
	})
}

func (e *Engine) emit(ctx context.Context, hook func(context.Context, *domain.QuestionEvent), q domain.Question, typ domain.EventType, value any, cleared bool) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.QuestionEvent{
		EventBase:    domain.EventBase{Timestamp: time.Now(), Type: typ},
		Path:         q.Path,
		QuestionType: q.Type,
		Value:        value,
		Cleared:      cleared,
	})
}
