package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrScriptExhausted is returned when a ScriptedPrompter runs out of answers.
var ErrScriptExhausted = errors.New("no scripted answer left")

// ScriptedPrompter answers from a fixed list and records what was asked.
// With AcceptDefaults, an exhausted script keeps answering with the default
// until the engine rejects an answer.
type ScriptedPrompter struct {
	AcceptDefaults bool

	mu         sync.Mutex
	answers    []string
	transcript []string
	rejected   bool
}

// NewScriptedPrompter creates a prompter that replies with answers in order.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{answers: answers}
}

// NewDefaultsPrompter creates a non-interactive prompter that accepts every default.
func NewDefaultsPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{AcceptDefaults: true}
}

// Transcript returns every line the prompter was asked to show.
func (p *ScriptedPrompter) Transcript() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.transcript...)
}

// Remaining returns the number of unused answers.
func (p *ScriptedPrompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}

func (p *ScriptedPrompter) Announce(ctx context.Context, title string) error {
	p.record(title)
	return nil
}

func (p *ScriptedPrompter) Notify(ctx context.Context, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transcript = append(p.transcript, message)
	p.rejected = true
	return nil
}

func (p *ScriptedPrompter) AskText(ctx context.Context, prompt string, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.record(prompt)
	answer, err := p.next(prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *ScriptedPrompter) AskChoice(ctx context.Context, prompt string, labels []string, def int, multi bool) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.record(prompt)
	for {
		answer, err := p.next(prompt)
		if err != nil {
			return nil, err
		}
		picked, err := ParseChoice(answer, labels, def, multi)
		if err == nil {
			return picked, nil
		}
		p.mu.Lock()
		p.transcript = append(p.transcript, err.Error())
		p.rejected = true
		p.mu.Unlock()
	}
}

func (p *ScriptedPrompter) record(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transcript = append(p.transcript, line)
}

func (p *ScriptedPrompter) next(prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.answers) > 0 {
		answer := p.answers[0]
		p.answers = p.answers[1:]
		p.rejected = false
		return answer, nil
	}
	if p.AcceptDefaults && !p.rejected {
		return "", nil
	}
	return "", fmt.Errorf("%w: %s", ErrScriptExhausted, prompt)
}
