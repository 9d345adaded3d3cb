package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aretw0/quickstart/internal/logging"
	"github.com/aretw0/quickstart/pkg/document"
)

// Zoneinfo directories /etc/localtime is expected to link into.
const (
	LinuxZoneinfo  = "/usr/share/zoneinfo/"
	DarwinZoneinfo = "/var/db/timezone/zoneinfo/"
)

// Timezone reads the host timezone from /etc/localtime, /etc/timezone and TZ.
type Timezone struct {
	root   string
	getenv func(string) string
	goos   string
	logger *slog.Logger
}

// TimezoneOption configures a Timezone ingester.
type TimezoneOption func(*Timezone)

// WithTimezoneRoot resolves /etc paths below root.
func WithTimezoneRoot(root string) TimezoneOption {
	return func(t *Timezone) {
		t.root = root
	}
}

// WithTimezoneEnv replaces the environment lookup.
func WithTimezoneEnv(getenv func(string) string) TimezoneOption {
	return func(t *Timezone) {
		t.getenv = getenv
	}
}

// WithTimezoneOS overrides the detected operating system.
func WithTimezoneOS(goos string) TimezoneOption {
	return func(t *Timezone) {
		t.goos = goos
	}
}

// NewTimezone creates the timezone ingester.
func NewTimezone(logger *slog.Logger, opts ...TimezoneOption) *Timezone {
	if logger == nil {
		logger = logging.NewNop()
	}
	t := &Timezone{root: "/", getenv: os.Getenv, goos: runtime.GOOS, logger: logger}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Timezone) Name() string  { return "timezone" }
func (t *Timezone) Priority() int { return 0 }

// Ingest sets os.timezone. TZ wins over the system configuration.
func (t *Timezone) Ingest(ctx context.Context, doc *document.Document, baseDir string) error {
	var base string
	switch t.goos {
	case "linux":
		base = LinuxZoneinfo
	case "darwin":
		base = DarwinZoneinfo
	default:
		t.logger.Warn("unsupported OS, set the timezone yourself", "os", t.goos)
		return nil
	}

	tz := t.fromLocaltime(base)
	if t.goos == "linux" {
		tz = t.fromTimezoneFile(tz)
	}

	if env := t.getenv("TZ"); env != "" {
		if tz != "" && tz != env {
			t.logger.Warn("TZ differs from the system timezone", "tz", env, "system", tz)
		}
		tz = env
	}

	if tz == "" {
		t.logger.Error("unable to determine the timezone, set it yourself")
		return nil
	}
	t.logger.Info("determined timezone from OS", "timezone", tz)
	return doc.Set("os.timezone", tz)
}

func (t *Timezone) fromLocaltime(base string) string {
	path := filepath.Join(t.root, "etc", "localtime")
	info, err := os.Lstat(path)
	if err != nil {
		t.logger.Warn("/etc/localtime is missing", "err", err)
		return ""
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		t.logger.Warn("/etc/localtime is a file instead of a symlink")
		return ""
	}
	target, err := os.Readlink(path)
	if err != nil {
		t.logger.Warn("cannot read /etc/localtime", "err", err)
		return ""
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join("/etc", target)
	}
	zone, ok := strings.CutPrefix(filepath.ToSlash(target), base)
	if !ok {
		t.logger.Warn("/etc/localtime points outside the zoneinfo directory", "target", target, "zoneinfo", base)
		return ""
	}
	t.logger.Debug("timezone from /etc/localtime", "timezone", zone)
	return zone
}

// fromTimezoneFile consults the Debian /etc/timezone file.
func (t *Timezone) fromTimezoneFile(tz string) string {
	data, err := os.ReadFile(filepath.Join(t.root, "etc", "timezone"))
	if errors.Is(err, fs.ErrNotExist) {
		return tz
	}
	if err != nil {
		t.logger.Warn("cannot read /etc/timezone", "err", err)
		return tz
	}
	debian := strings.TrimSpace(string(data))
	switch {
	case debian == "":
		t.logger.Warn("/etc/timezone is empty")
	case tz == "":
		t.logger.Debug("timezone from /etc/timezone", "timezone", debian)
		return debian
	case tz != debian:
		t.logger.Warn("/etc/timezone and /etc/localtime disagree", "timezone", debian, "localtime", tz)
	}
	return tz
}
