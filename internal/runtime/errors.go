package runtime

import (
	"errors"
	"fmt"
)

// ErrNoOptions is returned when a select question has nothing left to offer.
var ErrNoOptions = errors.New("no options available")

// ErrInvalidSelection is returned when a prompter answers with an index outside the offered list.
var ErrInvalidSelection = errors.New("invalid selection")

// QuestionError ties a processing failure to the question that caused it.
type QuestionError struct {
	Path string
	Err  error
}

func (e *QuestionError) Error() string {
	return fmt.Sprintf("question %s: %v", e.Path, e.Err)
}

func (e *QuestionError) Unwrap() error {
	return e.Err
}
