package ports

import (
	"context"
)

// DocumentStore persists configuration trees.
// Stores exchange plain trees; building a document from them is the caller's job.
type DocumentStore interface {
	// Save persists content under key, replacing any previous content.
	Save(ctx context.Context, key string, content map[string]any) error

	// Load retrieves the content stored under key.
	// Returns domain.ErrDocumentNotFound if nothing is stored and
	// domain.ErrDocumentMalformed if the stored content is not a mapping.
	Load(ctx context.Context, key string) (map[string]any, error)

	// Delete removes the content stored under key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether content is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
}

// DocumentLister is implemented by stores that can enumerate their keys.
type DocumentLister interface {
	// Keys returns the keys currently holding content.
	Keys(ctx context.Context) ([]string, error)
}
