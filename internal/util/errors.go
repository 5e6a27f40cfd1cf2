package util

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrQuestionNotFound    = fmt.Errorf("question %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrQuestionSetNotFound = fmt.Errorf("question set %w", ErrNotFound)

	// ErrParseAnomaly is raised inside the feedback parser when it hits an
	// unexpected state; callers see the raw text as feedback instead.
	ErrParseAnomaly = errors.New("feedback parse anomaly")

	ErrNoQuestionsGenerated = errors.New("evaluator returned no numbered questions")
	ErrInvalidAnswerType    = errors.New("invalid answer type")
)

// EvaluatorError wraps any failure talking to the language model: transport,
// non-2xx status, an error object in the body, or an empty completion.
type EvaluatorError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *EvaluatorError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("evaluator %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("evaluator %s: %v", e.Op, e.Err)
}

func (e *EvaluatorError) Unwrap() error { return e.Err }

const (
	StorageOpDecode = "decode"
	StorageOpUpload = "upload"
)

// StorageError reports a media payload that could not be decoded or stored.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("media %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
