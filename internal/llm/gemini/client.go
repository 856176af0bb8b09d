package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/eshu1234m/resume-analyzer-app/internal/llm"
	"github.com/eshu1234m/resume-analyzer-app/internal/shared/util"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash-preview-05-20"

const maxLogPreview = 200

// contentCaller matches the subset of genai.Models this client needs.
type contentCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements llm.Generator against the Gemini API.
type Client struct {
	models contentCaller
	model  string
	logger *zap.Logger
}

// NewClient constructs a Gemini client for the given credential.
func NewClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}

	return &Client{models: client.Models, model: model, logger: logger}, nil
}

// generationConfig requests exactly one candidate in plain-text output mode
// with every safety category disabled. Resume content routinely trips
// generic safety filters with false positives.
func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		CandidateCount:   1,
		ResponseMIMEType: "text/plain",
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
		},
	}
}

// GenerateContent sends the prompt to Gemini and returns the in-order
// concatenation of the returned text parts. A prompt-feedback block reason
// maps to *llm.BlockedError; a reply with no text maps to
// llm.ErrEmptyResponse.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}

	c.logger.Debug("gemini generate content request",
		zap.String("model", c.model),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, maxLogPreview)),
	)

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), generationConfig())
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if resp.PromptFeedback != nil &&
		resp.PromptFeedback.BlockReason != "" &&
		resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return "", &llm.BlockedError{Reason: string(resp.PromptFeedback.BlockReason)}
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			builder.WriteString(part.Text)
		}
	}

	output := builder.String()
	if output == "" {
		return "", llm.ErrEmptyResponse
	}

	c.logger.Debug("gemini generate content response",
		zap.String("model", c.model),
		zap.Int("response_length", utf8.RuneCountInString(output)),
		zap.String("response_preview", util.TruncateForLog(output, maxLogPreview)),
	)

	return output, nil
}

// Model reports the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}
