package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
)

// Sentinel errors for the upstream failure modes callers need to
// distinguish. Anything else is wrapped in a ProviderError.
var (
	ErrTimeout = errors.New("llm: request timed out")
	ErrAuth    = errors.New("llm: authentication with provider failed")
	ErrQuota   = errors.New("llm: rate limit or quota exceeded")
)

// ProviderError carries the upstream status and message for failures that
// don't map to a sentinel. The API key is never included.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm: provider error (status %d): %s", e.StatusCode, e.Message)
	}
	return "llm: provider error: " + e.Message
}

// classifyErr maps transport and API failures from the provider call to the
// typed errors above. Context cancellation is passed through so the caller
// can tell an abandoned request from a deadline.
func classifyErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401, 403:
			return ErrAuth
		case 429:
			return ErrQuota
		}
		return &ProviderError{StatusCode: apierr.StatusCode, Message: apierr.Message}
	}

	return &ProviderError{Message: err.Error()}
}
