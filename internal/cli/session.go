package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/quickstart/internal/presentation/tui"
	"github.com/aretw0/quickstart/pkg/ingest"
	"github.com/aretw0/quickstart/pkg/observability"
	"github.com/aretw0/quickstart/pkg/runner"
)

// RunSession executes a single wizard session in the given mode.
func RunSession(ctx context.Context, mode Mode, opts Options) error {
	logger := createLogger(opts.Debug)
	out := output(opts)

	cat, err := loadCatalog(opts)
	if err != nil {
		return err
	}

	be, err := openStore(opts)
	if err != nil {
		return err
	}

	prompter, closePrompter := createPrompter(opts, logger)
	defer closeAll(logger, closePrompter, be.close)

	metrics := observability.NewMetrics()
	wizard := createWizard(opts, cat, prompter, logger, metrics)

	key := documentKey(opts)
	runnerOpts := []runner.Option{
		runner.WithKey(key),
		runner.WithLogger(logger),
		runner.WithOutput(out),
		runner.WithIngest(ingest.NewService(logger, ingest.Defaults(cat, logger)...), opts.Dir),
	}
	if be.locker != nil {
		runnerOpts = append(runnerOpts, runner.WithLocker(be.locker, opts.LockTTL))
	}
	if opts.Only != "" {
		runnerOpts = append(runnerOpts, runner.WithOnly(opts.Only))
	}
	if mode == ModeReconfigure && !opts.Yes && !opts.NoInteraction {
		runnerOpts = append(runnerOpts, runner.WithConfirm(prompter))
	}
	r := runner.NewRunner(wizard, be.store, runnerOpts...)

	if mode != ModeIngest && !opts.NoInteraction {
		tui.PrintBanner(out)
	}

	var res *runner.Result
	switch mode {
	case ModeInit:
		res, err = r.Init(ctx)
	case ModeReconfigure:
		res, err = r.Reconfigure(ctx)
	case ModeIngest:
		res, err = r.Ingest(ctx)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}

	logCompletion(out, mode, key, res, err)

	if opts.MetricsFile != "" {
		if werr := metrics.WriteToTextfile(opts.MetricsFile); werr != nil {
			logger.Warn("failed to write metrics", "path", opts.MetricsFile, "err", werr)
		}
	}

	return handleExecutionError(err)
}
