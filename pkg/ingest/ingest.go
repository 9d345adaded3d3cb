// Package ingest pre-populates a configuration document from what can be
// detected in the project directory and the host environment.
package ingest

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/aretw0/quickstart/internal/logging"
	"github.com/aretw0/quickstart/pkg/catalog"
	"github.com/aretw0/quickstart/pkg/document"
)

// Ingester detects one kind of existing configuration.
type Ingester interface {
	Name() string
	// Priority orders ingesters; higher runs first.
	Priority() int
	Ingest(ctx context.Context, doc *document.Document, baseDir string) error
}

// Service runs ingesters in priority order.
type Service struct {
	ingesters []Ingester
	logger    *slog.Logger
}

// NewService creates a service running ingesters by descending priority.
// Ingesters of equal priority keep their argument order.
func NewService(logger *slog.Logger, ingesters ...Ingester) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	sorted := slices.Clone(ingesters)
	slices.SortStableFunc(sorted, func(a, b Ingester) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})
	return &Service{ingesters: sorted, logger: logger}
}

// Ingesters returns the ingesters in run order.
func (s *Service) Ingesters() []Ingester {
	return slices.Clone(s.ingesters)
}

// Ingest runs every ingester against doc. A failing ingester is logged and
// skipped; all failures are returned joined once every ingester has run.
func (s *Service) Ingest(ctx context.Context, doc *document.Document, baseDir string) error {
	var errs []error
	for _, ing := range s.ingesters {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.logger.Debug("running ingester", "ingester", ing.Name(), "priority", ing.Priority(), "dir", baseDir)
		if err := ing.Ingest(ctx, doc, baseDir); err != nil {
			s.logger.Error("ingester failed", "ingester", ing.Name(), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", ing.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Defaults returns the built-in ingesters. cat supplies the PHP versions and
// extensions known to the composer ingester.
func Defaults(cat *catalog.Catalog, logger *slog.Logger) []Ingester {
	return []Ingester{
		NewComposer(cat, logger),
		NewSymfony(logger),
		NewLocale(logger),
		NewTimezone(logger),
	}
}
