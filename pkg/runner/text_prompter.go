package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/aretw0/quickstart/pkg/domain"
)

// ContentRenderer transforms banner text before it is written, e.g. markdown to ANSI.
type ContentRenderer func(string) (string, error)

// TextPrompter implements ports.Prompter over plain line-oriented IO.
type TextPrompter struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	lines     chan inputResult
	startOnce sync.Once

	done      chan struct{}
	doneOnce  sync.Once
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextPrompterOption configures a TextPrompter.
type TextPrompterOption func(*TextPrompter)

// WithTextRenderer configures the banner renderer.
func WithTextRenderer(renderer ContentRenderer) TextPrompterOption {
	return func(p *TextPrompter) {
		p.Renderer = renderer
	}
}

// NewTextPrompter creates a prompter reading answers from r and writing to w.
// Nil arguments fall back to Stdin and Stdout.
func NewTextPrompter(r io.Reader, w io.Writer, opts ...TextPrompterOption) *TextPrompter {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	p := &TextPrompter{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *TextPrompter) doneChan() chan struct{} {
	p.doneOnce.Do(func() {
		p.done = make(chan struct{})
	})
	return p.done
}

func (p *TextPrompter) initPump() {
	done := p.doneChan()
	p.startOnce.Do(func() {
		p.lines = make(chan inputResult)
		go p.pump(done)
	})
}

// Close releases the background reader. A line read after Close is dropped
// and later reads fail with domain.ErrInputAborted.
func (p *TextPrompter) Close() error {
	done := p.doneChan()
	p.closeOnce.Do(func() {
		close(done)
	})
	return nil
}

// pump reads lines in the background so that reads can be abandoned on cancellation.
// It exits once the reader is exhausted or the prompter is closed.
func (p *TextPrompter) pump(done <-chan struct{}) {
	defer close(p.lines)
	for {
		text, err := p.Reader.ReadString('\n')
		if text != "" && !p.send(done, inputResult{text: text}) {
			return
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				p.send(done, inputResult{err: err})
			}
			return
		}
	}
}

func (p *TextPrompter) send(done <-chan struct{}, res inputResult) bool {
	select {
	case <-done:
		return false
	default:
	}
	select {
	case p.lines <- res:
		return true
	case <-done:
		return false
	}
}

// Announce writes title as an underlined heading, or through the renderer.
func (p *TextPrompter) Announce(ctx context.Context, title string) error {
	if p.Renderer != nil {
		if rendered, err := p.Renderer("# " + title); err == nil {
			_, err = fmt.Fprintln(p.Writer, strings.TrimRight(rendered, "\n"))
			return err
		}
	}
	_, err := fmt.Fprintf(p.Writer, "\n%s\n%s\n\n", title, strings.Repeat("=", utf8.RuneCountInString(title)))
	return err
}

func (p *TextPrompter) Notify(ctx context.Context, message string) error {
	_, err := fmt.Fprintln(p.Writer, message)
	return err
}

func (p *TextPrompter) AskText(ctx context.Context, prompt string, def string) (string, error) {
	fmt.Fprint(p.Writer, prompt)
	answer, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *TextPrompter) AskChoice(ctx context.Context, prompt string, labels []string, def int, multi bool) ([]int, error) {
	for {
		writeChoices(p.Writer, prompt, labels)
		fmt.Fprint(p.Writer, " > ")

		answer, err := p.readLine(ctx)
		if err != nil {
			return nil, err
		}
		picked, err := ParseChoice(answer, labels, def, multi)
		if err == nil {
			return picked, nil
		}
		fmt.Fprintln(p.Writer, err.Error())
	}
}

// readLine returns the next sanitized line. Lines failing sanitization are
// reported and skipped.
func (p *TextPrompter) readLine(ctx context.Context) (string, error) {
	p.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-p.done:
			return "", domain.ErrInputAborted
		case res, ok := <-p.lines:
			if !ok {
				return "", fmt.Errorf("%w: %w", domain.ErrInputAborted, io.EOF)
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeAnswer(res.text)
			if err != nil {
				fmt.Fprintf(p.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}
