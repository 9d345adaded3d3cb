package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/quickstart/pkg/domain"
)

// Question outcomes recorded in quickstart_questions_total.
const (
	OutcomeSkipped  = "skipped"
	OutcomeAnswered = "answered"
	OutcomeCleared  = "cleared"
)

// Metrics counts wizard activity on a private registry.
type Metrics struct {
	registry  *prometheus.Registry
	questions *prometheus.CounterVec
	invalid   prometheus.Counter
	effects   *prometheus.CounterVec
}

// NewMetrics creates and registers the wizard counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		questions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quickstart_questions_total",
				Help: "Questions processed, by outcome.",
			},
			[]string{"outcome", "type"},
		),
		invalid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quickstart_invalid_answers_total",
			Help: "Answers rejected and asked again.",
		}),
		effects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quickstart_side_effects_total",
				Help: "Side effects applied after an option was chosen, by operation.",
			},
			[]string{"op"},
		),
	}
	m.registry.MustRegister(m.questions, m.invalid, m.effects)
	return m
}

// Registry returns the registry holding the wizard counters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile writes the counters in the text exposition format, for
// the node exporter textfile collector.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// Hooks returns engine hooks updating the counters.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnQuestionSkipped: func(_ context.Context, e *domain.QuestionEvent) {
			m.questions.WithLabelValues(OutcomeSkipped, string(e.QuestionType)).Inc()
		},
		OnQuestionAnswered: func(_ context.Context, e *domain.QuestionEvent) {
			outcome := OutcomeAnswered
			if e.Cleared {
				outcome = OutcomeCleared
			}
			m.questions.WithLabelValues(outcome, string(e.QuestionType)).Inc()
		},
		OnInvalidAnswer: func(context.Context, *domain.QuestionEvent) {
			m.invalid.Inc()
		},
		OnSideEffect: func(_ context.Context, e *domain.EffectEvent) {
			op := "set"
			if e.Unset {
				op = "unset"
			}
			m.effects.WithLabelValues(op).Inc()
		},
	}
}
