package ports

import "context"

// Prompter is the I/O port consumed by the question engine.
// Every call blocks until the operator answers or ctx is done.
type Prompter interface {
	// Announce prints a banner title.
	Announce(ctx context.Context, title string) error

	// Notify prints a status line, such as a retry notice.
	Notify(ctx context.Context, message string) error

	// AskText asks for free text. An empty answer yields def; an empty result
	// means "no answer".
	AskText(ctx context.Context, prompt string, def string) (string, error)

	// AskChoice presents labels and returns the chosen indexes. def is the
	// index used for an empty answer, or -1 when an empty answer is invalid.
	// When multi is false exactly one index is returned. Invalid answers are
	// retried by the implementation.
	AskChoice(ctx context.Context, prompt string, labels []string, def int, multi bool) ([]int, error)
}
