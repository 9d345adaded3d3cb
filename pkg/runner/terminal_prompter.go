package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/aretw0/quickstart/pkg/domain"
)

// TerminalPrompter implements ports.Prompter with line editing. Defaults are
// pre-filled so the operator can edit them in place.
type TerminalPrompter struct {
	line     *liner.State
	out      io.Writer
	renderer ContentRenderer
	text     *TextPrompter
}

// NewTerminalPrompter takes over the terminal until Close is called.
func NewTerminalPrompter(renderer ContentRenderer) *TerminalPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &TerminalPrompter{
		line:     line,
		out:      os.Stdout,
		renderer: renderer,
		text:     &TextPrompter{Writer: os.Stdout, Renderer: renderer},
	}
}

// IsTerminal reports whether both stdin and stdout are attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Close restores the terminal mode.
func (p *TerminalPrompter) Close() error {
	return p.line.Close()
}

func (p *TerminalPrompter) Announce(ctx context.Context, title string) error {
	return p.text.Announce(ctx, title)
}

func (p *TerminalPrompter) Notify(ctx context.Context, message string) error {
	return p.text.Notify(ctx, message)
}

func (p *TerminalPrompter) AskText(ctx context.Context, prompt string, def string) (string, error) {
	p.line.SetCompleter(noCompletion)
	answer, err := p.prompt(ctx, prompt, def)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	p.line.AppendHistory(answer)
	return answer, nil
}

func (p *TerminalPrompter) AskChoice(ctx context.Context, prompt string, labels []string, def int, multi bool) ([]int, error) {
	p.line.SetCompleter(func(line string) []string {
		var out []string
		for _, label := range labels {
			if strings.HasPrefix(strings.ToLower(label), strings.ToLower(line)) {
				out = append(out, label)
			}
		}
		return out
	})
	defer p.line.SetCompleter(noCompletion)

	for {
		writeChoices(p.out, prompt, labels)
		answer, err := p.prompt(ctx, " > ", "")
		if err != nil {
			return nil, err
		}
		picked, err := ParseChoice(answer, labels, def, multi)
		if err == nil {
			return picked, nil
		}
		fmt.Fprintln(p.out, err.Error())
	}
}

func (p *TerminalPrompter) prompt(ctx context.Context, prompt, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var (
		answer string
		err    error
	)
	if def != "" {
		answer, err = p.line.PromptWithSuggestion(prompt, def, -1)
	} else {
		answer, err = p.line.Prompt(prompt)
	}
	switch {
	case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
		return "", domain.ErrInputAborted
	case err != nil:
		return "", err
	}
	return SanitizeAnswer(answer)
}

func noCompletion(string) []string {
	return nil
}
