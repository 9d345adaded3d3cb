package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quickstart/pkg/catalog"
	"github.com/aretw0/quickstart/pkg/document"
)

type stubIngester struct {
	name     string
	priority int
	err      error
	calls    *[]string
}

func (s stubIngester) Name() string  { return s.name }
func (s stubIngester) Priority() int { return s.priority }
func (s stubIngester) Ingest(ctx context.Context, doc *document.Document, baseDir string) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

func TestService_RunsByPriority(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	svc := NewService(nil,
		stubIngester{name: "low", priority: 0, calls: &calls},
		stubIngester{name: "high", priority: 5, calls: &calls},
		stubIngester{name: "mid", priority: 4, err: boom, calls: &calls},
		stubIngester{name: "low2", priority: 0, calls: &calls},
	)

	err := svc.Ingest(context.Background(), document.New(nil), t.TempDir())
	assert.Equal(t, []string{"high", "mid", "low", "low2"}, calls)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "mid")
}

func TestService_StopsOnCancel(t *testing.T) {
	var calls []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewService(nil, stubIngester{name: "a", calls: &calls}).Ingest(ctx, document.New(nil), ".")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}

func TestDefaults(t *testing.T) {
	ings := NewService(nil, Defaults(catalog.Default(), nil)...).Ingesters()
	names := make([]string, len(ings))
	for i, ing := range ings {
		names[i] = ing.Name()
	}
	assert.Equal(t, []string{"composer", "symfony", "locale", "timezone"}, names)
}
