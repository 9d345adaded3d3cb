package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventQuestionSkipped  EventType = "question_skipped"
	EventQuestionAsked    EventType = "question_asked"
	EventQuestionAnswered EventType = "question_answered"
	EventInvalidAnswer    EventType = "invalid_answer"
	EventSideEffect       EventType = "side_effect"
)

// Skip reasons reported in QuestionEvent.Reason.
const (
	SkipCondition = "condition"
	SkipFinal     = "final"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// QuestionEvent describes a step in processing a single question.
type QuestionEvent struct {
	EventBase
	Path         string       `json:"path"`
	QuestionType QuestionType `json:"question_type"`
	Reason       string       `json:"reason,omitempty"`
	Value        any          `json:"value,omitempty"`
	Cleared      bool         `json:"cleared,omitempty"`
}

// EffectEvent describes a side effect applied after an option was chosen.
type EffectEvent struct {
	EventBase
	Question string `json:"question"`
	Option   string `json:"option"`
	Path     string `json:"path"`
	Value    any    `json:"value,omitempty"`
	Unset    bool   `json:"unset,omitempty"`
}

// Hooks defines callbacks for engine observability. Nil callbacks are skipped.
type Hooks struct {
	OnQuestionSkipped  func(context.Context, *QuestionEvent)
	OnQuestionAsked    func(context.Context, *QuestionEvent)
	OnQuestionAnswered func(context.Context, *QuestionEvent)
	OnInvalidAnswer    func(context.Context, *QuestionEvent)
	OnSideEffect       func(context.Context, *EffectEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnQuestionSkipped:  chain(h.OnQuestionSkipped, other.OnQuestionSkipped),
		OnQuestionAsked:    chain(h.OnQuestionAsked, other.OnQuestionAsked),
		OnQuestionAnswered: chain(h.OnQuestionAnswered, other.OnQuestionAnswered),
		OnInvalidAnswer:    chain(h.OnInvalidAnswer, other.OnInvalidAnswer),
		OnSideEffect:       chain(h.OnSideEffect, other.OnSideEffect),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
