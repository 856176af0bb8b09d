package llm

import (
	"context"
	"errors"
	"fmt"
)

// Generator abstracts text-generation providers for resume analysis.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// BlockedError reports that the provider declined to generate, carrying the
// provider's named block reason.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("content blocked for safety reasons (%s)", e.Reason)
}

// ErrEmptyResponse is returned when generation succeeded but produced no
// text parts.
var ErrEmptyResponse = errors.New("model returned an empty response")

// UnconfiguredGenerator stands in when no provider credential is available
// at startup. The process still serves requests; every generation call
// fails with the recorded reason.
type UnconfiguredGenerator struct {
	Reason string
}

// GenerateContent always fails.
func (g UnconfiguredGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", fmt.Errorf("generator is not configured: %s", g.Reason)
}
