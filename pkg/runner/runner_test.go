package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quickstart"
	"github.com/aretw0/quickstart/pkg/adapters/memory"
	"github.com/aretw0/quickstart/pkg/catalog"
	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/dsl"
	"github.com/aretw0/quickstart/pkg/ingest"
	"github.com/aretw0/quickstart/pkg/ports"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := dsl.New().
		String("project.name", "the project name").Mandatory().
		SelectSingle("project.type", "the project type").
		Options(dsl.Opt("php", "PHP"), dsl.Opt("node", "Node")).Default("php").
		Build()
	require.NoError(t, err)
	return cat
}

type stubIngester struct {
	name string
	path string
	err  error
}

func (s stubIngester) Name() string  { return s.name }
func (s stubIngester) Priority() int { return 0 }

func (s stubIngester) Ingest(ctx context.Context, doc *document.Document, baseDir string) error {
	if s.err != nil {
		return s.err
	}
	return doc.Set(s.path, baseDir)
}

func seed(t *testing.T, store *memory.Store, content map[string]any) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), domain.DefaultConfigFile, content))
}

func stored(t *testing.T, store *memory.Store) *document.Document {
	t.Helper()
	content, err := store.Load(context.Background(), domain.DefaultConfigFile)
	require.NoError(t, err)
	return document.New(content)
}

func TestRunner_Init(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	prompter := NewScriptedPrompter("demo", "")
	var out bytes.Buffer

	r := NewRunner(quickstart.New(prompter, quickstart.WithCatalog(testCatalog(t))), store, WithOutput(&out))
	res, err := r.Init(ctx)
	require.NoError(t, err)
	assert.True(t, res.Saved)
	require.Len(t, res.Changes, 1)
	assert.Equal(t, "project", res.Changes[0].Path)
	assert.Equal(t, "  + project: map[name:demo type:php]\n", out.String())

	doc := stored(t, store)
	assert.Equal(t, "demo", doc.Get("project.name"))
	assert.Equal(t, "php", doc.Get("project.type"))

	_, err = r.Init(ctx)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestRunner_Init_WizardFailureKeepsFreshDocument(t *testing.T) {
	store := memory.NewStore()
	r := NewRunner(quickstart.New(NewScriptedPrompter(), quickstart.WithCatalog(testCatalog(t))), store, WithOutput(nil))

	_, err := r.Init(context.Background())
	assert.ErrorIs(t, err, ErrScriptExhausted)

	doc := stored(t, store)
	assert.Equal(t, map[string]any{"version": 1}, doc.All())
}

func TestRunner_Reconfigure(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		saved   bool
		want    string
		summary string
	}{
		{"confirmed", []string{"other", "", "y"}, true, "other", "  ~ project.name: \"demo\" -> \"other\"\n"},
		{"declined", []string{"other", "", "n"}, false, "demo", "  ~ project.name: \"demo\" -> \"other\"\n"},
		{"unchanged", []string{"", ""}, false, "demo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			seed(t, store, map[string]any{"project": map[string]any{"name": "demo", "type": "php"}})

			prompter := NewScriptedPrompter(tt.answers...)
			var out bytes.Buffer
			r := NewRunner(
				quickstart.New(prompter, quickstart.WithCatalog(testCatalog(t))),
				store,
				WithConfirm(prompter),
				WithOutput(&out),
			)

			res, err := r.Reconfigure(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.saved, res.Saved)
			assert.Equal(t, 0, prompter.Remaining())
			assert.Equal(t, tt.want, stored(t, store).Get("project.name"))
			assert.Equal(t, tt.summary, out.String())
		})
	}
}

func TestRunner_Reconfigure_Missing(t *testing.T) {
	r := NewRunner(quickstart.New(NewScriptedPrompter(), quickstart.WithCatalog(testCatalog(t))), memory.NewStore())

	_, err := r.Reconfigure(context.Background())
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestRunner_Reconfigure_FailureSavesNothing(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, map[string]any{"project": map[string]any{"name": "demo"}})

	// The name is answered, then the script runs dry on the type.
	r := NewRunner(quickstart.New(NewScriptedPrompter("other"), quickstart.WithCatalog(testCatalog(t))), store, WithOutput(nil))
	_, err := r.Reconfigure(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInterrupted))
	assert.Equal(t, "demo", stored(t, store).Get("project.name"))
}

func TestRunner_Only(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, map[string]any{"project": map[string]any{"name": "demo", "type": "php"}})

	prompter := NewScriptedPrompter("Node")
	r := NewRunner(quickstart.New(prompter, quickstart.WithCatalog(testCatalog(t))), store,
		WithOnly("project.type"), WithOutput(nil))

	res, err := r.Reconfigure(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.Equal(t, []string{"Please select the project type (current: PHP): "}, prompter.Transcript())
	assert.Equal(t, "node", stored(t, store).Get("project.type"))
}

func TestRunner_Ingest(t *testing.T) {
	store := memory.NewStore()
	service := ingest.NewService(nil,
		stubIngester{name: "broken", err: errors.New("boom")},
		stubIngester{name: "dir", path: "project.dir"},
	)

	r := NewRunner(quickstart.New(NewScriptedPrompter(), quickstart.WithCatalog(testCatalog(t))), store,
		WithIngest(service, "/srv/app"), WithOutput(nil))

	res, err := r.Ingest(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.Equal(t, "/srv/app", stored(t, store).Get("project.dir"))
}

func TestRunner_Cancelled(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, map[string]any{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(quickstart.New(NewScriptedPrompter("demo", ""), quickstart.WithCatalog(testCatalog(t))), store, WithOutput(nil))
	_, err := r.Reconfigure(ctx)
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteChanges(t *testing.T) {
	var out bytes.Buffer
	WriteChanges(&out, []document.Change{
		{Path: "a", Kind: document.ChangeAdded, New: 1},
		{Path: "b", Kind: document.ChangeModified, Old: nil, New: "x"},
		{Path: "c", Kind: document.ChangeRemoved, Old: true},
	})
	assert.Equal(t, "  + a: 1\n  ~ b: null -> \"x\"\n  - c\n", out.String())
}

type recordingLocker struct {
	events []string
}

func (l *recordingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	l.events = append(l.events, "lock "+key+" "+ttl.String())
	return func(context.Context) error {
		l.events = append(l.events, "unlock "+key)
		return nil
	}, nil
}

func TestRunner_Locker(t *testing.T) {
	store := memory.NewStore()
	locker := &recordingLocker{}

	r := NewRunner(quickstart.New(NewScriptedPrompter(), quickstart.WithCatalog(testCatalog(t))), store,
		WithLocker(locker, time.Minute), WithOutput(nil))
	_, err := r.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"lock .quickstart.yml 1m0s", "unlock .quickstart.yml"}, locker.events)
}
