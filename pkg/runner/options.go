package runner

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/quickstart/pkg/ingest"
	"github.com/aretw0/quickstart/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithKey sets the store key of the document.
func WithKey(key string) Option {
	return func(r *Runner) {
		r.Key = key
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithIngest runs service against baseDir before the questions.
func WithIngest(service *ingest.Service, baseDir string) Option {
	return func(r *Runner) {
		r.Ingesters = service
		r.BaseDir = baseDir
	}
}

// WithConfirm asks p for confirmation before saving changes.
func WithConfirm(p ports.Prompter) Option {
	return func(r *Runner) {
		r.Confirmer = p
	}
}

// WithOutput sets where the change summary is written. nil disables it.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.Output = w
	}
}

// WithOnly restricts the session to a single question.
func WithOnly(path string) Option {
	return func(r *Runner) {
		r.Only = path
	}
}

// WithLocker locks the document for the whole session. A zero ttl keeps
// DefaultLockTTL.
func WithLocker(locker ports.Locker, ttl time.Duration) Option {
	return func(r *Runner) {
		r.Locker = locker
		if ttl > 0 {
			r.LockTTL = ttl
		}
	}
}
