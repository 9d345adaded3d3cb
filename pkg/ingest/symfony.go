package ingest

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/quickstart/internal/logging"
	"github.com/aretw0/quickstart/pkg/document"
)

const (
	symfonyFlex   = "symfony/flex"
	symfonyEncore = "symfony/webpack-encore-bundle"
)

// Symfony detects Symfony projects from the composer manifest found by the
// composer ingester. It must run after it.
type Symfony struct {
	logger *slog.Logger
}

// NewSymfony creates the Symfony ingester.
func NewSymfony(logger *slog.Logger) *Symfony {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Symfony{logger: logger}
}

func (s *Symfony) Name() string  { return "symfony" }
func (s *Symfony) Priority() int { return 4 }

func (s *Symfony) Ingest(ctx context.Context, doc *document.Document, baseDir string) error {
	if enabled, _ := doc.Get("php.composer.enabled").(bool); !enabled {
		s.logger.Debug("composer not enabled, skipping")
		return nil
	}

	path := filepath.Join(baseDir, document.Text(doc.Get("php.composer.jsonPath")), ComposerFile)
	manifest, err := readManifest(path)
	if err != nil {
		return err
	}

	for _, dep := range manifest.Require {
		switch dep.Name {
		case symfonyFlex:
			s.logger.Info("detected Symfony Flex, setting project type", "type", "symfony")
			if err := doc.Set("project.type", "symfony"); err != nil {
				return err
			}
		case symfonyEncore:
			s.logger.Info("detected Webpack Encore, setting Symfony type", "type", "web")
			for _, set := range []struct {
				path  string
				value any
			}{
				{"project.type", "symfony"},
				{"symfony.type", "web"},
				{"symfony.modules.[]", symfonyEncore},
			} {
				if err := doc.Set(set.path, set.value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
