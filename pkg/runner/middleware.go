package runner

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aretw0/quickstart/pkg/ports"
)

// Middleware decorates a Prompter.
type Middleware func(ports.Prompter) ports.Prompter

// Chain wraps p with mws; the first middleware is the outermost.
func Chain(p ports.Prompter, mws ...Middleware) ports.Prompter {
	for i := len(mws) - 1; i >= 0; i-- {
		p = mws[i](p)
	}
	return p
}

// LoggingMiddleware logs every prompt and its answer at debug level.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.Prompter) ports.Prompter {
		return &loggingPrompter{next: next, logger: logger}
	}
}

type loggingPrompter struct {
	next   ports.Prompter
	logger *slog.Logger
}

func (p *loggingPrompter) Announce(ctx context.Context, title string) error {
	p.logger.Debug("announce", "title", title)
	return p.next.Announce(ctx, title)
}

func (p *loggingPrompter) Notify(ctx context.Context, message string) error {
	p.logger.Debug("notify", "message", message)
	return p.next.Notify(ctx, message)
}

func (p *loggingPrompter) AskText(ctx context.Context, prompt string, def string) (string, error) {
	answer, err := p.next.AskText(ctx, prompt, def)
	p.logger.Debug("text answered", "prompt", prompt, "default", def, "answer", answer, "err", err)
	return answer, err
}

func (p *loggingPrompter) AskChoice(ctx context.Context, prompt string, labels []string, def int, multi bool) ([]int, error) {
	picked, err := p.next.AskChoice(ctx, prompt, labels, def, multi)
	p.logger.Debug("choice answered", "prompt", prompt, "options", len(labels), "default", def, "multi", multi, "picked", picked, "err", err)
	return picked, err
}

// Confirm asks a yes/no question. Anything but "y" or "yes" is a no.
func Confirm(ctx context.Context, p ports.Prompter, question string) (bool, error) {
	answer, err := p.AskText(ctx, question+" [y/N] ", "")
	if err != nil {
		return false, err
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}
