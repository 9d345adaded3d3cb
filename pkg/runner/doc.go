/*
Package runner implements the I/O side of the wizard.

It provides the prompters the question engine talks to and the Runner that
turns a wizard run into a session: load, ingest, ask, summarize, save.

# Key Components

  - TextPrompter: line-based prompts over any io.Reader / io.Writer.
  - TerminalPrompter: line editing with pre-filled defaults for TTYs.
  - ScriptedPrompter: canned answers for tests and non-interactive runs.
  - Runner: the session orchestrator, with signal handling.

# Usage

	prompter := runner.NewTextPrompter(os.Stdin, os.Stdout)
	wizard := quickstart.New(prompter)

	r := runner.NewRunner(wizard, store,
		runner.WithIngest(ingest.NewService(logger, ingest.Defaults(wizard.Catalog(), logger)...), "."),
		runner.WithConfirm(prompter),
	)
	if _, err := r.Reconfigure(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
