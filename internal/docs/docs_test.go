package docs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wayfindex/pkg/config"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "OpenAI", DisplayName(config.ProviderOpenAI))
	assert.Equal(t, "OpenRouter", DisplayName(config.ProviderOpenRouter))
	assert.Equal(t, "Anthropic", DisplayName(config.ProviderAnthropic))
	assert.Equal(t, "Perplexity", DisplayName(config.ProviderPerplexity))
}

func TestWriteConfigReference(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteConfigReference(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Configuration Reference")
	assert.Contains(t, out, "openai_api_key_env_var")
	assert.Contains(t, out, "perplexity_model_names")
	assert.Contains(t, out, "categories.json")
	for _, p := range config.Providers() {
		assert.Contains(t, out, DisplayName(p))
	}
}

func TestWriteReferenceWithConfig(t *testing.T) {
	cfg := &config.Config{
		Environments: []config.Environment{
			{Name: "default", Agents: []string{"openai_gpt-4o"}},
		},
		OpenAIAPIKeyEnvVar: "OPENAI_API_KEY",
		OpenAIModelNames:   []string{"gpt-4o"},
	}

	var buf strings.Builder
	require.NoError(t, WriteReference(&buf, cfg))

	out := buf.String()
	assert.Contains(t, out, "# Loaded Configuration")
	assert.Contains(t, out, "openai_gpt-4o")
	assert.Contains(t, out, "OPENAI_API_KEY")
	// Unconfigured providers stay out of the loaded table.
	assert.NotContains(t, out, "| Anthropic |")
}

func TestWriteReferenceWithoutConfig(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteReference(&buf, nil))
	assert.NotContains(t, buf.String(), "# Loaded Configuration")
}
