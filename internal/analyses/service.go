package analyses

import (
	"context"

	"github.com/eshu1234m/resume-analyzer-app/internal/extract"
	"github.com/eshu1234m/resume-analyzer-app/internal/llm"
)

// Service runs the analysis pipeline: extract, prompt, generate, sanitize.
// It holds no per-request state.
type Service struct {
	Generator llm.Generator
}

// Analyze runs one resume through the pipeline and returns the sanitized
// model output. Any stage failure terminates the request; errors surface
// with their original type so the handler can map them to a status.
func (s *Service) Analyze(ctx context.Context, document []byte, mimeType, fileName, jobDescription string) (string, error) {
	resumeText, err := extract.TextFromBytes(ctx, document, mimeType, fileName)
	if err != nil {
		return "", err
	}

	prompt := llm.BuildPrompt(resumeText, jobDescription)

	raw, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	return CleanModelResponse(raw), nil
}
