package llm

import (
	"context"
	"strings"
	"testing"
)

func TestBlockedErrorNamesReason(t *testing.T) {
	err := &BlockedError{Reason: "SAFETY"}
	if !strings.Contains(err.Error(), "SAFETY") {
		t.Fatalf("error should name the block reason: %q", err.Error())
	}
}

func TestUnconfiguredGeneratorAlwaysFails(t *testing.T) {
	gen := UnconfiguredGenerator{Reason: "gemini api key is required"}

	_, err := gen.GenerateContent(context.Background(), "any prompt")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "gemini api key is required") {
		t.Fatalf("error should carry the configured reason: %q", err.Error())
	}
}
