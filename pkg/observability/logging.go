package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/quickstart/pkg/domain"
)

// LoggingHooks returns hooks writing every engine event to logger at info level.
func LoggingHooks(logger *slog.Logger) domain.Hooks {
	question := func(ctx context.Context, e *domain.QuestionEvent) {
		attrs := []any{"path", e.Path, "type", e.QuestionType}
		if e.Reason != "" {
			attrs = append(attrs, "reason", e.Reason)
		}
		if e.Type == domain.EventQuestionAnswered {
			attrs = append(attrs, "value", e.Value, "cleared", e.Cleared)
		}
		logger.InfoContext(ctx, string(e.Type), attrs...)
	}
	return domain.Hooks{
		OnQuestionSkipped:  question,
		OnQuestionAsked:    question,
		OnQuestionAnswered: question,
		OnInvalidAnswer:    question,
		OnSideEffect: func(ctx context.Context, e *domain.EffectEvent) {
			logger.InfoContext(ctx, string(e.Type),
				"question", e.Question,
				"option", e.Option,
				"path", e.Path,
				"value", e.Value,
				"unset", e.Unset,
			)
		},
	}
}
