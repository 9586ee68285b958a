package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed profile analysis.
type ErrorKind string

const (
	KindInvalidInput       ErrorKind = "invalid_input"
	KindUpstreamUnparsable ErrorKind = "upstream_unparsable"
	KindUpstreamFailure    ErrorKind = "upstream_failure"
	KindExtractionFailure  ErrorKind = "extraction_failure"
)

const ErrNoValidInputMessage = "No valid input provided."

// AnalysisError is the only error type returned by the match pipeline.
// RawResponse is set for KindUpstreamUnparsable and holds the model reply
// exactly as received.
type AnalysisError struct {
	Kind        ErrorKind
	Message     string
	RawResponse string
	Cause       error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

func newInvalidInputError() *AnalysisError {
	return &AnalysisError{
		Kind:    KindInvalidInput,
		Message: ErrNoValidInputMessage,
	}
}

func newUnparsableError(raw string, cause error) *AnalysisError {
	return &AnalysisError{
		Kind:        KindUpstreamUnparsable,
		Message:     "Gemini returned invalid JSON format.",
		RawResponse: raw,
		Cause:       cause,
	}
}

func newUpstreamError(cause error) *AnalysisError {
	return &AnalysisError{
		Kind:    KindUpstreamFailure,
		Message: fmt.Sprintf("Gemini processing error: %v", cause),
		Cause:   cause,
	}
}

// KindOf reports the kind of err, or "" when err is not an *AnalysisError.
func KindOf(err error) ErrorKind {
	var aerr *AnalysisError
	if errors.As(err, &aerr) {
		return aerr.Kind
	}
	return ""
}
