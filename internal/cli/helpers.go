package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/quickstart/internal/logging"
	"github.com/aretw0/quickstart/pkg/runner"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the prompts on Stdout).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(os.Stderr, slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func logCompletion(w io.Writer, mode Mode, key string, res *runner.Result, err error) {
	switch {
	case err != nil && errors.Is(err, runner.ErrInterrupted):
		fmt.Fprintln(w)
		printSystemMessage(w, "Interrupted, %s left untouched.", key)
	case err != nil:
		return
	case res.Saved:
		printSystemMessage(w, "%s: %d change(s) saved to %s.", mode, len(res.Changes), key)
	case len(res.Changes) > 0:
		printSystemMessage(w, "%s: changes discarded.", mode)
	default:
		printSystemMessage(w, "%s: nothing changed.", mode)
	}
}

// handleExecutionError turns an interruption into a clean exit.
func handleExecutionError(err error) error {
	if err == nil || errors.Is(err, runner.ErrInterrupted) {
		return nil
	}
	return err
}
