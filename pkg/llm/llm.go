package llm

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrAuth is returned before any network call when no usable API key is configured.
var ErrAuth = errors.New("llm api key not configured: add your API key to the environment or .env file")

// ServiceError describes a failed completion call. StatusCode is 0 when the
// request never produced an HTTP response.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("llm service error: %s", e.Body)
	}
	return fmt.Sprintf("llm service error (%d): %s", e.StatusCode, e.Body)
}

var placeholderKeys = map[string]struct{}{
	"your_openai_api_key_here": {},
	"your_api_key_here":        {},
}

// CheckKey reports ErrAuth for empty or placeholder credentials.
func CheckKey(apiKey string) error {
	k := strings.TrimSpace(apiKey)
	if k == "" {
		return ErrAuth
	}
	if _, ok := placeholderKeys[k]; ok {
		return ErrAuth
	}
	return nil
}

var reFence = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)```")

// CleanJSON strips markdown code fences and returns the outermost JSON array
// or object found in a model reply. The input is returned trimmed when no
// JSON delimiters are present.
func CleanJSON(reply string) string {
	s := strings.TrimSpace(reply)
	if m := reFence.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}
	open := strings.IndexAny(s, "[{")
	if open < 0 {
		return s
	}
	closer := byte('}')
	if s[open] == '[' {
		closer = ']'
	}
	end := strings.LastIndexByte(s, closer)
	if end <= open {
		return s
	}
	return s[open : end+1]
}
