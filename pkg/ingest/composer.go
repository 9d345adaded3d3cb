package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/tailscale/hujson"

	"github.com/aretw0/quickstart/internal/logging"
	"github.com/aretw0/quickstart/pkg/catalog"
	"github.com/aretw0/quickstart/pkg/document"
)

// ComposerFile is the name of the composer manifest.
const ComposerFile = "composer.json"

// Composer enables PHP when the project has a composer manifest and derives
// the PHP version and extensions from its requirements.
type Composer struct {
	versions   []string
	extensions map[string]bool
	logger     *slog.Logger
}

// NewComposer creates the composer ingester. Candidate versions are the
// options of the php.version question; extensions are the php.extensions list.
func NewComposer(cat *catalog.Catalog, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = logging.NewNop()
	}
	c := &Composer{extensions: map[string]bool{}, logger: logger}
	if cat == nil {
		return c
	}
	if q, ok := cat.Question("php.version"); ok {
		for _, o := range q.Options {
			c.versions = append(c.versions, o.Value)
		}
	}
	if list, ok := cat.List("php.extensions"); ok {
		for _, o := range list {
			c.extensions[o.Value] = true
		}
	}
	return c
}

func (c *Composer) Name() string  { return "composer" }
func (c *Composer) Priority() int { return 5 }

func (c *Composer) Ingest(ctx context.Context, doc *document.Document, baseDir string) error {
	path := filepath.Join(baseDir, ComposerFile)
	manifest, err := readManifest(path)
	if errors.Is(err, fs.ErrNotExist) {
		c.logger.Debug("composer.json not present, skipping", "path", path)
		return nil
	}

	c.logger.Info("enabling PHP and Composer", "path", path)
	for _, set := range []struct {
		path  string
		value any
	}{
		{"php.enabled", true},
		{"php.composer.enabled", true},
		{"php.composer.jsonPath", ""},
	} {
		if err := doc.Set(set.path, set.value); err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}

	if manifest.Config.VendorDir != "" {
		c.logger.Info("setting vendor directory", "dir", manifest.Config.VendorDir)
		if err := doc.Set("php.composer.vendorDir", manifest.Config.VendorDir); err != nil {
			return err
		}
	}
	if manifest.Config.BinDir != "" {
		c.logger.Info("setting bin directory", "dir", manifest.Config.BinDir)
		if err := doc.Set("php.composer.binDir", manifest.Config.BinDir); err != nil {
			return err
		}
	}

	if constraint := manifest.Require.Get("php"); constraint != "" {
		version, err := c.matchVersion(constraint)
		switch {
		case err != nil:
			c.logger.Error("unparsable PHP requirement", "constraint", constraint, "err", err)
		case version == "":
			c.logger.Error("no known PHP version satisfies the project requirement", "constraint", constraint)
		default:
			c.logger.Info("found a matching PHP version", "version", version, "constraint", constraint)
			if err := doc.Set("php.version", version); err != nil {
				return err
			}
		}
	} else {
		c.logger.Warn("unable to determine the PHP version from composer.json")
	}

	if err := c.addExtensions(doc, manifest.Require, "php.extensions.base.[]"); err != nil {
		return err
	}
	return c.addExtensions(doc, manifest.RequireDev, "php.extensions.tooling.[]")
}

func (c *Composer) addExtensions(doc *document.Document, deps packages, target string) error {
	for _, dep := range deps {
		name, ok := strings.CutPrefix(dep.Name, "ext-")
		if !ok {
			continue
		}
		if !c.extensions[name] {
			c.logger.Error("no known package for required extension", "extension", name)
			continue
		}
		c.logger.Info("adding extension", "extension", name, "target", target)
		if err := doc.Set(target, name); err != nil {
			return err
		}
	}
	return nil
}

var orOperator = regexp.MustCompile(`\s*\|\|?\s*`)

// matchVersion returns the first candidate satisfying a composer constraint.
func (c *Composer) matchVersion(constraint string) (string, error) {
	normalized := orOperator.ReplaceAllString(constraint, " || ")
	normalized = strings.NewReplacer("@stable", "", "@dev", "", "@beta", "", "@alpha", "", "@RC", "").Replace(normalized)
	cons, err := semver.NewConstraint(normalized)
	if err != nil {
		return "", err
	}
	for _, candidate := range c.versions {
		v, err := semver.NewVersion(candidate)
		if err != nil {
			c.logger.Debug("skipping non-semver PHP version", "version", candidate)
			continue
		}
		c.logger.Debug("comparing PHP version", "candidate", candidate, "constraint", constraint)
		if cons.Check(v) {
			return candidate, nil
		}
	}
	return "", nil
}

// manifest is the subset of composer.json the ingesters read.
type manifest struct {
	Require    packages `json:"require"`
	RequireDev packages `json:"require-dev"`
	Config     struct {
		VendorDir string `json:"vendor-dir"`
		BinDir    string `json:"bin-dir"`
	} `json:"config"`
}

type pkg struct {
	Name       string
	Constraint string
}

// packages keeps the declaration order of a composer requirement map.
type packages []pkg

func (p packages) Get(name string) string {
	for _, entry := range p {
		if entry.Name == name {
			return entry.Constraint
		}
	}
	return ""
}

func (p *packages) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected an object, got %v", tok)
	}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return err
		}
		var constraint any
		if err := dec.Decode(&constraint); err != nil {
			return err
		}
		s, _ := constraint.(string)
		*p = append(*p, pkg{Name: key.(string), Constraint: s})
	}
	return nil
}

// readManifest parses a composer.json. Comments and trailing commas are tolerated.
// A malformed manifest yields an empty manifest and a non-nil error.
func readManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := &manifest{}
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return m, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := json.Unmarshal(standardized, m); err != nil {
		return &manifest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}
