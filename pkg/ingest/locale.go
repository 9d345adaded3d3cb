package ingest

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/aretw0/quickstart/internal/logging"
	"github.com/aretw0/quickstart/pkg/document"
)

// Locale reads the operator's locale from the gettext environment variables.
type Locale struct {
	getenv func(string) string
	goos   string
	logger *slog.Logger
}

// LocaleOption configures a Locale ingester.
type LocaleOption func(*Locale)

// WithLocaleEnv replaces the environment lookup.
func WithLocaleEnv(getenv func(string) string) LocaleOption {
	return func(l *Locale) {
		l.getenv = getenv
	}
}

// WithLocaleOS overrides the detected operating system.
func WithLocaleOS(goos string) LocaleOption {
	return func(l *Locale) {
		l.goos = goos
	}
}

// NewLocale creates the locale ingester.
func NewLocale(logger *slog.Logger, opts ...LocaleOption) *Locale {
	if logger == nil {
		logger = logging.NewNop()
	}
	l := &Locale{getenv: os.Getenv, goos: runtime.GOOS, logger: logger}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Locale) Name() string  { return "locale" }
func (l *Locale) Priority() int { return 0 }

// Ingest sets os.locale following gettext precedence: the first entry of
// LANGUAGE, then LC_ALL, LC_MESSAGES and LANG.
func (l *Locale) Ingest(ctx context.Context, doc *document.Document, baseDir string) error {
	if l.goos != "linux" && l.goos != "darwin" {
		l.logger.Warn("unsupported OS, set the locale yourself", "os", l.goos)
		return nil
	}

	locale := ""
	if language := l.getenv("LANGUAGE"); language != "" {
		locale, _, _ = strings.Cut(language, ":")
		l.logger.Debug("locale from environment", "var", "LANGUAGE", "locale", locale)
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if locale != "" {
			break
		}
		if locale = l.getenv(name); locale != "" {
			l.logger.Debug("locale from environment", "var", name, "locale", locale)
		}
	}

	if locale == "" {
		l.logger.Error("unable to determine the locale, set it yourself")
		return nil
	}
	l.logger.Info("determined locale from OS", "locale", locale)
	return doc.Set("os.locale", locale)
}
