package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/aretw0/quickstart/internal/codec"
	"github.com/aretw0/quickstart/pkg/domain"
)

// Store implements ports.DocumentStore using the local filesystem.
// Each key is a YAML file name relative to BasePath.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to the current directory.
func New(basePath string) *Store {
	if basePath == "" {
		basePath = "."
	}
	return &Store{BasePath: basePath}
}

// Path returns the file backing key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.BasePath, key)
}

// Save writes content as YAML. The file is replaced atomically, so readers
// never observe a partially written configuration.
func (s *Store) Save(ctx context.Context, key string, content map[string]any) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	data, err := codec.Marshal(content)
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(s.Path(key), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Load reads and decodes the YAML file for key.
func (s *Store) Load(ctx context.Context, key string) (map[string]any, error) {
	if key == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}

	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s does not exist here: %w", key, domain.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	content, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return content, nil
}

// Delete removes the file for key. Missing files are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	err := os.Remove(s.Path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Exists reports whether the file for key is present.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(s.Path(key))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", key, err)
}
