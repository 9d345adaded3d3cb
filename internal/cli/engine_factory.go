package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/quickstart"
	"github.com/aretw0/quickstart/internal/adapters/file"
	"github.com/aretw0/quickstart/internal/adapters/redis"
	"github.com/aretw0/quickstart/internal/presentation/tui"
	"github.com/aretw0/quickstart/pkg/catalog"
	"github.com/aretw0/quickstart/pkg/defaults"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/observability"
	"github.com/aretw0/quickstart/pkg/ports"
	"github.com/aretw0/quickstart/pkg/runner"
)

// CatalogFile is the project catalog picked up when --catalog is not given.
const CatalogFile = "quickstart.catalog.yml"

// backend bundles the store a command works on.
type backend struct {
	store  ports.DocumentStore
	locker ports.Locker
	close  func() error
}

// openStore resolves --store. A redis:// URL yields a shared store with a
// session lock; anything else keeps the document as a file in opts.Dir.
func openStore(opts Options) (*backend, error) {
	switch {
	case opts.Store == "" || opts.Store == "file":
		return &backend{store: file.New(opts.Dir), close: func() error { return nil }}, nil
	case strings.HasPrefix(opts.Store, "redis://"), strings.HasPrefix(opts.Store, "rediss://"):
		store, err := redis.NewFromURL(opts.Store)
		if err != nil {
			return nil, err
		}
		return &backend{store: store, locker: store.NewLocker(), close: store.Close}, nil
	}
	return nil, fmt.Errorf("unsupported store %q", opts.Store)
}

// loadCatalog initializes the question catalog with standard CLI conventions.
func loadCatalog(opts Options) (*catalog.Catalog, error) {
	path := opts.Catalog
	if path == "" && hasCatalog(opts.Dir) {
		path = filepath.Join(opts.Dir, CatalogFile)
	}
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	return cat, nil
}

// hasCatalog checks if the project ships its own catalog.
func hasCatalog(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, CatalogFile))
	return err == nil
}

// createPrompter picks how questions are asked: defaults only, line editing
// on a terminal, or plain text otherwise.
func createPrompter(opts Options, logger *slog.Logger) (ports.Prompter, func() error) {
	var (
		p     ports.Prompter
		closer = func() error { return nil }
	)
	switch {
	case opts.NoInteraction:
		p = runner.NewDefaultsPrompter()
	case opts.In == nil && runner.IsTerminal():
		tp := runner.NewTerminalPrompter(tui.NewRenderer())
		p, closer = tp, tp.Close
	default:
		in := opts.In
		if in == nil {
			in = os.Stdin
		}
		tp := runner.NewTextPrompter(in, output(opts))
		p, closer = tp, tp.Close
	}
	if opts.Debug {
		p = runner.Chain(p, runner.LoggingMiddleware(logger))
	}
	return p, closer
}

// createWizard initializes a wizard with standard CLI conventions.
func createWizard(opts Options, cat *catalog.Catalog, prompter ports.Prompter, logger *slog.Logger, metrics *observability.Metrics) *quickstart.Wizard {
	wizardOpts := []quickstart.Option{
		quickstart.WithCatalog(cat),
		quickstart.WithLogger(logger),
		quickstart.WithMetrics(metrics),
		quickstart.WithDefaultEvaluator(defaultEvaluator(opts)),
	}
	if opts.Debug {
		wizardOpts = append(wizardOpts, quickstart.WithHooks(observability.LoggingHooks(logger)))
	}
	return quickstart.New(prompter, wizardOpts...)
}

// defaultEvaluator resolves cwd() to the absolute project directory, so
// basename(cwd()) names the project even for --dir ".".
func defaultEvaluator(opts Options) *defaults.Evaluator {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		dir = opts.Dir
	}
	return defaults.New(defaults.WithWorkDir(dir))
}

func documentKey(opts Options) string {
	if opts.File == "" {
		return domain.DefaultConfigFile
	}
	return opts.File
}

func output(opts Options) io.Writer {
	if opts.Out == nil {
		return os.Stdout
	}
	return opts.Out
}

func closeAll(logger *slog.Logger, closers ...func() error) {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c())
	}
	if err := errors.Join(errs...); err != nil {
		logger.Warn("cleanup failed", "err", err)
	}
}

// ValidateCatalog loads the catalog the commands would use and reports its size.
func ValidateCatalog(opts Options) error {
	cat, err := loadCatalog(opts)
	if err != nil {
		return err
	}
	printSystemMessage(output(opts), "Catalog is valid: %d question(s), %d list(s).", cat.Len(), len(cat.ListNames()))
	return nil
}
