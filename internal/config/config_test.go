package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "live", cfg.Ai.ChatEngine)
	assert.Equal(t, "gpt-4.1", cfg.Ai.CompletionModel)
	assert.Equal(t, "openai", cfg.Ai.EmbeddingProvider)
	assert.Equal(t, "text-embedding-3-small", cfg.Ai.EmbeddingModel)
	assert.Equal(t, 0.65, cfg.Ai.GatingThreshold)
	assert.Equal(t, "EXCHANGE_LOG", cfg.Keys.ExchangeLogTopic)
	assert.Equal(t, "3000", cfg.App.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CHAT_ENGINE", "mock")
	t.Setenv("GATING_THRESHOLD", "0.8")
	t.Setenv("EMBEDDING_PROVIDER", "ollama")

	cfg := Load()

	assert.Equal(t, "mock", cfg.Ai.ChatEngine)
	assert.Equal(t, 0.8, cfg.Ai.GatingThreshold)
	assert.Equal(t, "ollama", cfg.Ai.EmbeddingProvider)
}
