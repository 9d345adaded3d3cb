package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultMaxAnswerSize bounds a single answer, in bytes.
	DefaultMaxAnswerSize = 4096
	// EnvMaxAnswerSize overrides DefaultMaxAnswerSize.
	EnvMaxAnswerSize = "QUICKSTART_MAX_ANSWER_SIZE"
)

var (
	ErrAnswerTooLarge = errors.New("answer exceeds maximum allowed size")
	ErrInvalidUTF8    = errors.New("answer contains invalid UTF-8 sequences")
)

// SanitizeAnswer trims an answer and rejects oversized or non UTF-8 input.
// Answers end up in a YAML file on a single line, so tabs become spaces and
// every other control character is dropped.
func SanitizeAnswer(answer string) (string, error) {
	limit := maxAnswerSize()
	if len(answer) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrAnswerTooLarge, len(answer), limit)
	}
	if !utf8.ValidString(answer) {
		return "", ErrInvalidUTF8
	}

	clean := strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, answer)
	return strings.TrimSpace(clean), nil
}

func maxAnswerSize() int {
	if val := os.Getenv(EnvMaxAnswerSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxAnswerSize
}
