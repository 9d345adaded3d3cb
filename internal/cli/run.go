package cli

import (
	"io"
	"time"
)

// Mode selects what a session does with the stored document.
type Mode string

const (
	ModeInit        Mode = "init"
	ModeReconfigure Mode = "reconfigure"
	ModeIngest      Mode = "ingest"
)

// Options contains all the configuration shared by the commands.
type Options struct {
	// Dir is the project directory. Ingesters inspect it and the file
	// store keeps the document there.
	Dir string
	// File is the document key. Defaults to .quickstart.yml.
	File string
	// Catalog points to a question catalog. Empty means the project catalog
	// when one exists, else the built-in one.
	Catalog string
	// Store is "file" or a redis:// URL.
	Store string
	// LockTTL bounds the session lock held on shared stores.
	LockTTL time.Duration

	Debug         bool
	NoInteraction bool
	Yes           bool
	Only          string
	MetricsFile   string

	In  io.Reader
	Out io.Writer
}
