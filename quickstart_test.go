package quickstart_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quickstart"
	"github.com/aretw0/quickstart/internal/runtime"
	"github.com/aretw0/quickstart/pkg/adapters/memory"
	"github.com/aretw0/quickstart/pkg/catalog"
	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/dsl"
	"github.com/aretw0/quickstart/pkg/observability"
	"github.com/aretw0/quickstart/pkg/runner"
)

func projectCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := dsl.New().
		Banner("banner.project", "Project").
		String("project.name", "the project name").Mandatory().
		SelectSingle("project.type", "the project type").
		Options(dsl.Opt("php", "PHP"), dsl.Opt("node", "Node")).Default("php").
		String("node.version", "the node version").If("#project.type# === 'node'").
		Build()
	require.NoError(t, err)
	return cat
}

func TestWizard_Run(t *testing.T) {
	prompter := runner.NewScriptedPrompter("demo", "1", "22")
	w := quickstart.New(prompter, quickstart.WithCatalog(projectCatalog(t)))

	doc := document.New(nil)
	require.NoError(t, w.Run(context.Background(), doc))

	assert.Equal(t, "demo", doc.Get("project.name"))
	assert.Equal(t, "node", doc.Get("project.type"))
	assert.Equal(t, "22", doc.Get("node.version"))
	assert.Equal(t, 0, prompter.Remaining())
	assert.Equal(t, []string{
		"Project",
		"Please enter the project name: ",
		"Please select the project type (current: PHP): ",
		"Please enter the node version: ",
	}, prompter.Transcript())
}

func TestWizard_Run_KeepsCurrentValues(t *testing.T) {
	w := quickstart.New(runner.NewDefaultsPrompter(), quickstart.WithCatalog(projectCatalog(t)))

	doc := document.New(map[string]any{
		"project": map[string]any{"name": "demo"},
	})
	require.NoError(t, w.Run(context.Background(), doc))

	assert.Equal(t, "demo", doc.Get("project.name"))
	assert.Equal(t, "php", doc.Get("project.type"))
	assert.False(t, doc.Has("node.version"))
}

func TestWizard_Run_AbortsOnFirstError(t *testing.T) {
	w := quickstart.New(runner.NewDefaultsPrompter(), quickstart.WithCatalog(projectCatalog(t)))

	doc := document.New(nil)
	err := w.Run(context.Background(), doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrScriptExhausted)

	var qerr *runtime.QuestionError
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, "project.name", qerr.Path)
	assert.False(t, doc.Has("project.type"))
}

func TestWizard_Run_Cancelled(t *testing.T) {
	w := quickstart.New(runner.NewScriptedPrompter(), quickstart.WithCatalog(projectCatalog(t)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Run(ctx, document.New(nil)), context.Canceled)
}

func TestWizard_Ask(t *testing.T) {
	w := quickstart.New(runner.NewScriptedPrompter("0"), quickstart.WithCatalog(projectCatalog(t)))
	doc := document.New(map[string]any{"project": map[string]any{"type": "node"}})

	require.NoError(t, w.Ask(context.Background(), "project.type", doc))
	assert.Equal(t, "php", doc.Get("project.type"))

	err := w.Ask(context.Background(), "project.missing", doc)
	assert.ErrorIs(t, err, quickstart.ErrUnknownQuestion)
}

func TestWizard_HooksAndMetrics(t *testing.T) {
	var answered, skipped []string
	hooks := domain.Hooks{
		OnQuestionAnswered: func(_ context.Context, e *domain.QuestionEvent) {
			answered = append(answered, e.Path)
		},
		OnQuestionSkipped: func(_ context.Context, e *domain.QuestionEvent) {
			skipped = append(skipped, e.Path)
		},
	}
	m := observability.NewMetrics()

	w := quickstart.New(
		runner.NewScriptedPrompter("demo", ""),
		quickstart.WithCatalog(projectCatalog(t)),
		quickstart.WithHooks(hooks),
		quickstart.WithMetrics(m),
	)
	require.NoError(t, w.Run(context.Background(), document.New(nil)))

	assert.Equal(t, []string{"project.name", "project.type"}, answered)
	assert.Equal(t, []string{"node.version"}, skipped)

	series, err := testutil.GatherAndCount(m.Registry(), "quickstart_questions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, series)
}

func TestWizard_DefaultCatalog(t *testing.T) {
	w := quickstart.New(runner.NewScriptedPrompter())
	assert.Equal(t, catalog.Default().Len(), w.Catalog().Len())
}

func TestLoadDocument(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := quickstart.LoadDocument(ctx, store, domain.DefaultConfigFile)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)

	require.NoError(t, store.Save(ctx, domain.DefaultConfigFile, map[string]any{
		"project": map[string]any{"name": "demo"},
	}))

	doc, err := quickstart.LoadDocument(ctx, store, domain.DefaultConfigFile)
	require.NoError(t, err)
	assert.Equal(t, document.DefaultVersion, doc.Get(document.VersionKey))
	assert.Equal(t, "demo", doc.Get("project.name"))

	require.NoError(t, doc.Set("project.type", "php"))
	require.NoError(t, quickstart.SaveDocument(ctx, store, domain.DefaultConfigFile, doc))

	stored, err := store.Load(ctx, domain.DefaultConfigFile)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "demo", "type": "php"}, stored["project"])
}
