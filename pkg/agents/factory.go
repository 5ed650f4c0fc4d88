package agents

import (
	"context"
	"os"

	"github.com/hoangvvo/llm-sdk/sdk-go/anthropic"
	"github.com/hoangvvo/llm-sdk/sdk-go/openai"
	"google.golang.org/genai"

	"github.com/agentstation/wayfindex/pkg/config"
	"github.com/agentstation/wayfindex/pkg/errors"
)

// OpenAI-compatible base URLs for providers without a dedicated client.
const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	perplexityBaseURL = "https://api.perplexity.ai"
)

// Factory constructs agents from configuration. API keys are resolved from
// the environment variables the configuration names; a missing key fails
// construction before any network call.
type Factory struct {
	cfg    *config.Config
	schema *Schema
	prompt string
}

// NewFactory creates a factory bound to a configuration, category set, and
// system prompt. The schema instructions are appended to the prompt so the
// output contract reaches providers without server-side schema enforcement.
func NewFactory(cfg *config.Config, categorySet []string, prompt string) *Factory {
	schema := NewSchema(categorySet)
	return &Factory{
		cfg:    cfg,
		schema: schema,
		prompt: prompt + "\n\n" + schema.PromptInstructions(),
	}
}

// Schema returns the place-note schema the factory binds to its agents.
func (f *Factory) Schema() *Schema {
	return f.schema
}

// Agents constructs one agent per identifier, in order. ctx is used only
// for client construction (the Gemini client takes a context); no request
// is issued here.
func (f *Factory) Agents(ctx context.Context, ids []string) ([]*Agent, error) {
	agents := make([]*Agent, 0, len(ids))
	for _, raw := range ids {
		agent, err := f.agent(ctx, raw)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

func (f *Factory) agent(ctx context.Context, raw string) (*Agent, error) {
	id, err := config.ParseAgentID(raw)
	if err != nil {
		return nil, err
	}

	settings := f.cfg.Provider(id.Provider)
	if settings.APIKeyEnvVar == "" {
		return nil, errors.NewValidationError(string(id.Provider)+"_api_key_env_var", raw,
			"provider has no API key environment variable configured")
	}

	apiKey := os.Getenv(settings.APIKeyEnvVar)
	if apiKey == "" {
		return nil, errors.NewCredentialError(string(id.Provider), settings.APIKeyEnvVar)
	}

	c, err := f.caller(ctx, id, apiKey)
	if err != nil {
		return nil, err
	}

	return &Agent{
		name:   id.DisplayName(),
		id:     id,
		prompt: f.prompt,
		schema: f.schema,
		caller: c,
	}, nil
}

func (f *Factory) caller(ctx context.Context, id config.AgentID, apiKey string) (caller, error) {
	switch id.Provider {
	case config.ProviderOpenAI:
		return &llmCaller{
			model:  openai.NewOpenAIChatModel(id.Model, openai.OpenAIChatModelOptions{APIKey: apiKey}),
			format: f.schema.ResponseFormat(),
		}, nil

	case config.ProviderOpenRouter:
		return &llmCaller{
			model: openai.NewOpenAIChatModel(id.Model, openai.OpenAIChatModelOptions{
				APIKey:  apiKey,
				BaseURL: openRouterBaseURL,
			}),
			format: f.schema.ResponseFormat(),
		}, nil

	case config.ProviderPerplexity:
		return &llmCaller{
			model: openai.NewOpenAIChatModel(id.Model, openai.OpenAIChatModelOptions{
				APIKey:  apiKey,
				BaseURL: perplexityBaseURL,
			}),
			format: f.schema.ResponseFormat(),
		}, nil

	case config.ProviderAnthropic:
		// Anthropic has no native JSON schema mode; the contract rides the
		// system prompt and is validated at parse time.
		return &llmCaller{
			model: anthropic.NewAnthropicModel(id.Model, anthropic.AnthropicModelOptions{APIKey: apiKey}),
		}, nil

	case config.ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, errors.NewProviderError(string(id.Provider), id.Model, "creating client", err)
		}
		return &geminiCaller{
			client: client,
			model:  id.Model,
			schema: f.schema.GenaiSchema(),
		}, nil
	}

	return nil, errors.NewValidationError("agents", id, "unknown provider "+string(id.Provider))
}
