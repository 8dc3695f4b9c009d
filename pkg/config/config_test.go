package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LLM_PROVIDER", "LLM_API_KEY", "OPENAI_API_KEY", "OPENROUTER_API_KEY", "STATE_BACKEND", "STATE_KEY", "MAX_UPLOAD_BYTES"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openrouter", cfg.LLMProvider)
	assert.Equal(t, "postgres", cfg.StateBackend)
	assert.Equal(t, "root", cfg.StateKey)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
	assert.Empty(t, cfg.LLMAPIKey)
}

func TestLoadProviderKeys(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		provider string
		key      string
	}{
		{
			name:     "explicit key wins",
			env:      map[string]string{"LLM_PROVIDER": "openai", "LLM_API_KEY": "k1", "OPENAI_API_KEY": "k2"},
			provider: "openai",
			key:      "k1",
		},
		{
			name:     "openai key",
			env:      map[string]string{"LLM_PROVIDER": "OpenAI", "OPENAI_API_KEY": "k2"},
			provider: "openai",
			key:      "k2",
		},
		{
			name:     "gemini key",
			env:      map[string]string{"LLM_PROVIDER": "gemini", "GEMINI_API_KEY": "g"},
			provider: "gemini",
			key:      "g",
		},
		{
			name:     "openrouter falls back to openai key",
			env:      map[string]string{"OPENAI_API_KEY": "o"},
			provider: "openrouter",
			key:      "o",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"LLM_PROVIDER", "LLM_API_KEY", "OPENAI_API_KEY", "OPENROUTER_API_KEY", "GEMINI_API_KEY"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := Load()
			assert.Equal(t, tt.provider, cfg.LLMProvider)
			assert.Equal(t, tt.key, cfg.LLMAPIKey)
		})
	}
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("REDIS_DB", "two")
	assert.Equal(t, 0, getEnvInt("REDIS_DB", 0))
	t.Setenv("REDIS_DB", "3")
	assert.Equal(t, 3, getEnvInt("REDIS_DB", 0))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, splitList(" A@x.com, ,b@y.com "))
}
