package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/quickstart"
	"github.com/aretw0/quickstart/internal/logging"
	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/ingest"
	"github.com/aretw0/quickstart/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed session can hold the document lock.
const DefaultLockTTL = 30 * time.Minute

var (
	// ErrAlreadyInitialized is returned by Init when a document is already stored.
	ErrAlreadyInitialized = errors.New("configuration already initialized")
	// ErrInterrupted is returned when a signal stopped the session.
	ErrInterrupted = errors.New("interrupted")
)

// Runner drives one wizard session: load the document, pre-populate it from
// the project, ask the questions and save the result.
// Nothing is saved when the wizard fails.
type Runner struct {
	Wizard *quickstart.Wizard
	Store  ports.DocumentStore

	// Key is the store key of the document. Defaults to domain.DefaultConfigFile.
	Key string

	// Ingesters pre-populate the document from BaseDir before questions are asked.
	// If nil, ingestion is skipped.
	Ingesters *ingest.Service
	BaseDir   string

	// Confirmer, when set, is asked before changes are saved.
	Confirmer ports.Prompter

	// Output receives the change summary. Defaults to os.Stdout.
	Output io.Writer

	// Only restricts the session to the question with this path.
	Only string

	// Locker, when set, holds a lock on Key for the whole session.
	Locker  ports.Locker
	LockTTL time.Duration

	Logger *slog.Logger
}

// Result reports what a session did.
type Result struct {
	Document *document.Document
	Changes  []document.Change
	Saved    bool
}

// NewRunner creates a runner for wizard persisting to store.
func NewRunner(wizard *quickstart.Wizard, store ports.DocumentStore, opts ...Option) *Runner {
	r := &Runner{
		Wizard:  wizard,
		Store:   store,
		Key:     domain.DefaultConfigFile,
		Output:  os.Stdout,
		Logger:  logging.NewNop(),
		LockTTL: DefaultLockTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init writes a fresh document and then runs the wizard on it.
// It fails with ErrAlreadyInitialized when a document is already stored.
func (r *Runner) Init(ctx context.Context) (*Result, error) {
	return r.locked(ctx, r.init)
}

func (r *Runner) init(ctx context.Context) (*Result, error) {
	exists, err := r.Store.Exists(ctx, r.Key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyInitialized, r.Key)
	}

	doc := document.New(nil)
	if err := quickstart.SaveDocument(ctx, r.Store, r.Key, doc); err != nil {
		return nil, err
	}
	r.Logger.Info("configuration initialized", "key", r.Key)
	return r.session(ctx, doc, true)
}

// Reconfigure loads the stored document and runs the wizard on it.
func (r *Runner) Reconfigure(ctx context.Context) (*Result, error) {
	return r.locked(ctx, r.reconfigure)
}

func (r *Runner) reconfigure(ctx context.Context) (*Result, error) {
	doc, err := quickstart.LoadDocument(ctx, r.Store, r.Key)
	if err != nil {
		return nil, err
	}
	return r.session(ctx, doc, true)
}

// Ingest pre-populates the stored document without asking anything.
// A missing document is created.
func (r *Runner) Ingest(ctx context.Context) (*Result, error) {
	return r.locked(ctx, r.ingest)
}

func (r *Runner) ingest(ctx context.Context) (*Result, error) {
	doc, err := quickstart.LoadDocument(ctx, r.Store, r.Key)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		doc, err = document.New(nil), nil
	}
	if err != nil {
		return nil, err
	}
	return r.session(ctx, doc, false)
}

func (r *Runner) locked(ctx context.Context, fn func(context.Context) (*Result, error)) (*Result, error) {
	if r.Locker == nil {
		return fn(ctx)
	}
	unlock, err := r.Locker.Lock(ctx, r.Key, r.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", r.Key, err)
	}
	r.Logger.Debug("document locked", "key", r.Key, "ttl", r.LockTTL)
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			r.Logger.Warn("unlock failed", "key", r.Key, "err", err)
		}
	}()
	return fn(ctx)
}

func (r *Runner) session(ctx context.Context, doc *document.Document, ask bool) (*Result, error) {
	signals := NewSignalManager(ctx)
	defer signals.Stop()
	ctx = signals.Context()

	before := doc.Clone()

	if r.Ingesters != nil {
		if err := r.Ingesters.Ingest(ctx, doc, r.BaseDir); err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
			}
			r.Logger.Warn("ingestion incomplete", "err", err)
		}
	}

	if ask {
		if err := r.ask(ctx, doc); err != nil {
			if signals.Interrupted() {
				return nil, fmt.Errorf("%w: %w", ErrInterrupted, err)
			}
			return nil, err
		}
	}

	result := &Result{Document: doc, Changes: document.Diff(before, doc)}
	WriteChanges(r.Output, result.Changes)
	if len(result.Changes) == 0 {
		r.Logger.Info("configuration unchanged", "key", r.Key)
		return result, nil
	}

	if r.Confirmer != nil {
		ok, err := Confirm(ctx, r.Confirmer, fmt.Sprintf("Save %d change(s) to %s?", len(result.Changes), r.Key))
		if err != nil {
			if signals.Interrupted() {
				return nil, fmt.Errorf("%w: %w", ErrInterrupted, err)
			}
			return nil, err
		}
		if !ok {
			r.Logger.Info("changes discarded", "key", r.Key)
			return result, nil
		}
	}

	if err := quickstart.SaveDocument(ctx, r.Store, r.Key, doc); err != nil {
		return nil, err
	}
	result.Saved = true
	r.Logger.Info("configuration saved", "key", r.Key, "changes", len(result.Changes))
	return result, nil
}

func (r *Runner) ask(ctx context.Context, doc *document.Document) error {
	if r.Only != "" {
		return r.Wizard.Ask(ctx, r.Only, doc)
	}
	return r.Wizard.Run(ctx, doc)
}

// WriteChanges prints one line per change: "+" added, "~" modified, "-" removed.
func WriteChanges(w io.Writer, changes []document.Change) {
	if w == nil {
		return
	}
	for _, c := range changes {
		switch c.Kind {
		case document.ChangeAdded:
			fmt.Fprintf(w, "  + %s: %s\n", c.Path, display(c.New))
		case document.ChangeModified:
			fmt.Fprintf(w, "  ~ %s: %s -> %s\n", c.Path, display(c.Old), display(c.New))
		case document.ChangeRemoved:
			fmt.Fprintf(w, "  - %s\n", c.Path)
		}
	}
}

func display(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", t)
	}
	return fmt.Sprint(v)
}
