package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/artem13815/interview/pkg/llm"
)

const DefaultModel = "gemini-2.0-flash"

// Client adapts the Gemini SDK to llm.ChatModel.
type Client struct {
	client *genai.Client
	model  string
	keyErr error
}

// New builds the SDK client. A missing or placeholder key is not fatal here:
// every Ask then fails with llm.ErrAuth so callers fall back.
func New(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	c := &Client{model: model}
	if err := llm.CheckKey(apiKey); err != nil {
		c.keyErr = err
		return c, nil
	}
	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.keyErr != nil {
		return "", c.keyErr
	}
	model := c.client.GenerativeModel(c.model)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", toServiceError(err)
	}
	if resp.UsageMetadata != nil {
		slog.Debug("LLM API call",
			"provider", "gemini",
			"input_tokens", resp.UsageMetadata.PromptTokenCount,
			"output_tokens", resp.UsageMetadata.CandidatesTokenCount)
	}
	return firstText(resp)
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &llm.ServiceError{StatusCode: 200, Body: "empty response from LLM"}
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", &llm.ServiceError{StatusCode: 200, Body: "unexpected response format from LLM"}
}

func toServiceError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &llm.ServiceError{StatusCode: gerr.Code, Body: gerr.Message}
	}
	return &llm.ServiceError{Body: err.Error()}
}
