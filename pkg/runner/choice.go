package runner

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidChoice is returned by ParseChoice when an answer names no offered entry.
var ErrInvalidChoice = errors.New("invalid choice")

// ParseChoice resolves an answer against labels. Entries are matched by index
// or by exact label; multi answers are comma separated. An empty answer
// selects def, or is invalid when def is negative.
func ParseChoice(answer string, labels []string, def int, multi bool) ([]int, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		if def >= 0 && def < len(labels) {
			return []int{def}, nil
		}
		return nil, invalidChoice(answer)
	}

	tokens := []string{answer}
	if multi {
		tokens = strings.Split(answer, ",")
	}

	picked := make([]int, 0, len(tokens))
	seen := map[int]bool{}
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		i, ok := resolveChoice(token, labels)
		if !ok {
			return nil, invalidChoice(token)
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		picked = append(picked, i)
	}
	return picked, nil
}

func resolveChoice(token string, labels []string) (int, bool) {
	if i, err := strconv.Atoi(token); err == nil && strconv.Itoa(i) == token {
		return i, i >= 0 && i < len(labels)
	}
	for i, label := range labels {
		if label == token {
			return i, true
		}
	}
	return -1, false
}

// ChoiceError reports an answer entry that names no offered label.
type ChoiceError struct {
	Value string
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("Value \"%s\" is invalid", e.Value)
}

func (e *ChoiceError) Is(target error) bool {
	return target == ErrInvalidChoice
}

func invalidChoice(token string) error {
	return &ChoiceError{Value: token}
}

// writeChoices prints the prompt followed by the indexed labels.
func writeChoices(w io.Writer, prompt string, labels []string) {
	fmt.Fprintln(w, prompt)
	for i, label := range labels {
		fmt.Fprintf(w, "  [%d] %s\n", i, label)
	}
}
