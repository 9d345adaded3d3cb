package domain

import "errors"

// ErrUnknownQuestionType is returned when a question names a type outside the known set.
var ErrUnknownQuestionType = errors.New("unknown question type")

// ErrDocumentNotFound is returned when a store has no document under the requested key.
var ErrDocumentNotFound = errors.New("document not found")

// ErrDocumentMalformed is returned when stored content is not a mapping.
var ErrDocumentMalformed = errors.New("configuration file broken")

// ErrInputAborted is returned by prompters when the operator cancels input.
var ErrInputAborted = errors.New("input aborted")
