package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/quickstart/pkg/ports"
)

// ErrListUnsupported is returned by ListDocuments for stores that cannot
// enumerate their documents.
var ErrListUnsupported = errors.New("store cannot list documents")

// ListDocuments prints the key of every document held by the configured store.
func ListDocuments(ctx context.Context, opts Options) error {
	logger := createLogger(opts.Debug)
	be, err := openStore(opts)
	if err != nil {
		return err
	}
	defer closeAll(logger, be.close)

	lister, ok := be.store.(ports.DocumentLister)
	if !ok {
		return fmt.Errorf("%w: use --store redis://", ErrListUnsupported)
	}
	keys, err := lister.Keys(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		fmt.Fprintln(output(opts), key)
	}
	logger.Debug("documents listed", "count", len(keys))
	return nil
}
