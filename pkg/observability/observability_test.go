package observability

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quickstart/pkg/domain"
)

func question(typ domain.EventType, cleared bool) *domain.QuestionEvent {
	return &domain.QuestionEvent{
		EventBase:    domain.EventBase{Type: typ},
		Path:         "project.name",
		QuestionType: domain.QuestionString,
		Value:        "demo",
		Cleared:      cleared,
	}
}

func TestMetrics_Hooks(t *testing.T) {
	m := NewMetrics()
	h := m.Hooks()
	ctx := context.Background()

	h.OnQuestionSkipped(ctx, question(domain.EventQuestionSkipped, false))
	h.OnQuestionAnswered(ctx, question(domain.EventQuestionAnswered, false))
	h.OnQuestionAnswered(ctx, question(domain.EventQuestionAnswered, false))
	h.OnQuestionAnswered(ctx, question(domain.EventQuestionAnswered, true))
	h.OnInvalidAnswer(ctx, question(domain.EventInvalidAnswer, false))
	h.OnSideEffect(ctx, &domain.EffectEvent{Path: "a", Value: 1})
	h.OnSideEffect(ctx, &domain.EffectEvent{Path: "b", Unset: true})
	h.OnSideEffect(ctx, &domain.EffectEvent{Path: "c", Unset: true})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.questions.WithLabelValues(OutcomeSkipped, "string")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.questions.WithLabelValues(OutcomeAnswered, "string")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.questions.WithLabelValues(OutcomeCleared, "string")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invalid))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.effects.WithLabelValues("set")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.effects.WithLabelValues("unset")))
}

func TestMetrics_WriteToTextfile(t *testing.T) {
	m := NewMetrics()
	m.Hooks().OnInvalidAnswer(context.Background(), question(domain.EventInvalidAnswer, false))

	path := filepath.Join(t.TempDir(), "quickstart.prom")
	require.NoError(t, m.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "quickstart_invalid_answers_total 1")
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := LoggingHooks(logger)

	h.OnQuestionAnswered(context.Background(), question(domain.EventQuestionAnswered, false))
	h.OnSideEffect(context.Background(), &domain.EffectEvent{
		EventBase: domain.EventBase{Type: domain.EventSideEffect},
		Question:  "project.type",
		Option:    "symfony",
		Path:      "php.enabled",
		Value:     true,
	})

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "msg=question_answered")
	assert.Contains(t, lines[0], "path=project.name")
	assert.Contains(t, lines[0], "value=demo")
	assert.Contains(t, lines[1], "msg=side_effect")
	assert.Contains(t, lines[1], "option=symfony")
}
