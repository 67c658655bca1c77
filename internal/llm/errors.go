package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrNoRegion    = errors.New("AWS region is required")
	ErrEmptyInput  = errors.New("input text is required")
	ErrBadResponse = errors.New("malformed model response")
)

// InvokeError wraps a Bedrock InvokeModel failure with the operation and
// model that produced it.
type InvokeError struct {
	Op      string
	ModelID string
	Err     error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("bedrock %s (%s): %v", e.Op, e.ModelID, e.Err)
}

func (e *InvokeError) Unwrap() error {
	return e.Err
}

func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func classifyError(err error) string {
	switch {
	case err == nil:
		return "none"
	case IsTimeout(err):
		return "timeout"
	case errors.Is(err, ErrBadResponse):
		return "bad_response"
	default:
		return "provider_error"
	}
}
