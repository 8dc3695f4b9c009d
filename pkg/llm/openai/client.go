package openai

import (
	"context"
	"errors"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/artem13815/interview/pkg/llm"
)

// Client talks to the OpenAI chat completions API through go-openai.
type Client struct {
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
	client      *goopenai.Client
}

func New(apiKey, baseURL, model string) *Client {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = goopenai.GPT3Dot5Turbo
	}
	return &Client{
		apiKey:      apiKey,
		model:       model,
		temperature: 0.7,
		maxTokens:   1000,
		client:      goopenai.NewClientWithConfig(cfg),
	}
}

func (c *Client) Model() string { return c.model }

func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := llm.CheckKey(c.apiKey); err != nil {
		return "", err
	}
	msgs := make([]goopenai.ChatCompletionMessage, 0, 2)
	if systemPrompt != "" {
		msgs = append(msgs, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt})
	}
	msgs = append(msgs, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleUser, Content: userPrompt})

	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", toServiceError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &llm.ServiceError{StatusCode: 200, Body: "invalid response: no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}

func toServiceError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return &llm.ServiceError{StatusCode: apiErr.HTTPStatusCode, Body: apiErr.Message}
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return &llm.ServiceError{StatusCode: reqErr.HTTPStatusCode, Body: reqErr.Error()}
	}
	return &llm.ServiceError{Body: err.Error()}
}
