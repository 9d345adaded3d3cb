package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quickstart"
	"github.com/aretw0/quickstart/pkg/condition"
	"github.com/aretw0/quickstart/pkg/document"
	"github.com/aretw0/quickstart/pkg/domain"
	"github.com/aretw0/quickstart/pkg/runner"
)

// ErrNotSet is returned by ConfigGet when the path holds no value.
var ErrNotSet = errors.New("not set")

// ConfigGet prints the value stored at path.
func ConfigGet(ctx context.Context, opts Options, path string) error {
	return withDocument(ctx, opts, false, func(doc *document.Document) (bool, error) {
		v, ok := doc.Lookup(path)
		if !ok {
			return false, fmt.Errorf("%s: %w", path, ErrNotSet)
		}
		text, err := formatValue(v)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(output(opts), text)
		return false, nil
	})
}

// ConfigHas reports whether a value is stored at path.
func ConfigHas(ctx context.Context, opts Options, path string) (bool, error) {
	var has bool
	err := withDocument(ctx, opts, false, func(doc *document.Document) (bool, error) {
		has = doc.Has(path)
		return false, nil
	})
	return has, err
}

// ConfigSet stores raw at path. With asYAML the value is decoded first, so
// lists, maps, booleans and numbers can be set.
func ConfigSet(ctx context.Context, opts Options, path, raw string, asYAML bool) error {
	var value any = raw
	if asYAML {
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return fmt.Errorf("decode value: %w", err)
		}
		value = document.Normalize(value)
	}
	return withDocument(ctx, opts, true, func(doc *document.Document) (bool, error) {
		before := doc.Clone()
		if err := doc.Set(path, value); err != nil {
			return false, err
		}
		changes := document.Diff(before, doc)
		runner.WriteChanges(output(opts), changes)
		return len(changes) > 0, nil
	})
}

// ConfigUnset removes the value stored at path.
func ConfigUnset(ctx context.Context, opts Options, path string) error {
	return withDocument(ctx, opts, true, func(doc *document.Document) (bool, error) {
		if !doc.Has(path) {
			return false, nil
		}
		if err := doc.Unset(path); err != nil {
			return false, err
		}
		fmt.Fprintf(output(opts), "  - %s\n", path)
		return true, nil
	})
}

// Eval evaluates a condition, or a default expression when asDefault is
// set, against the stored document and prints the result.
func Eval(ctx context.Context, opts Options, expression string, asDefault bool) error {
	return withDocument(ctx, opts, false, func(doc *document.Document) (bool, error) {
		var (
			result any
			err    error
		)
		if asDefault {
			result, err = defaultEvaluator(opts).Evaluate(expression, doc)
		} else {
			result, err = condition.Evaluate(expression, doc)
		}
		if err != nil {
			return false, err
		}
		text, err := formatValue(result)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(output(opts), text)
		return false, nil
	})
}

// withDocument loads the stored document, hands it to fn and saves it when fn
// reports a change. A missing document reads as empty.
func withDocument(ctx context.Context, opts Options, write bool, fn func(*document.Document) (bool, error)) error {
	logger := createLogger(opts.Debug)
	be, err := openStore(opts)
	if err != nil {
		return err
	}
	defer closeAll(logger, be.close)

	key := documentKey(opts)
	if write && be.locker != nil {
		ttl := opts.LockTTL
		if ttl <= 0 {
			ttl = runner.DefaultLockTTL
		}
		unlock, err := be.locker.Lock(ctx, key, ttl)
		if err != nil {
			return fmt.Errorf("lock %s: %w", key, err)
		}
		defer func() {
			if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil {
				logger.Warn("unlock failed", "key", key, "err", uerr)
			}
		}()
	}

	doc, err := quickstart.LoadDocument(ctx, be.store, key)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		doc, err = document.New(nil), nil
	}
	if err != nil {
		return err
	}

	changed, err := fn(doc)
	if err != nil || !write || !changed {
		return err
	}
	return quickstart.SaveDocument(ctx, be.store, key, doc)
}

func formatValue(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "null", nil
	case string:
		return t, nil
	case bool, int, int64, float64:
		return fmt.Sprint(t), nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode value: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
