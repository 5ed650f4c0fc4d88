// Package config loads and validates the wayfindex YAML configuration.
// A configuration declares named environments (ordered groups of agent
// identifiers) and, per provider, the environment variable holding the API
// key and the list of permitted model names.
package config

import (
	"strings"

	"github.com/agentstation/wayfindex/pkg/errors"
)

// Provider identifies a supported AI backend.
type Provider string

// Supported provider tags.
const (
	ProviderOpenAI     Provider = "openai"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGemini     Provider = "gemini"
	ProviderOpenRouter Provider = "openrouter"
	ProviderPerplexity Provider = "perplexity"
)

// Providers returns all supported provider tags in a stable order.
func Providers() []Provider {
	return []Provider{
		ProviderOpenAI,
		ProviderAnthropic,
		ProviderGemini,
		ProviderOpenRouter,
		ProviderPerplexity,
	}
}

// String returns the string representation of a Provider.
func (p Provider) String() string {
	return string(p)
}

// Valid reports whether p is a known provider tag.
func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini, ProviderOpenRouter, ProviderPerplexity:
		return true
	}
	return false
}

// Environment is a named group of agent identifiers activated together.
type Environment struct {
	Name   string   `yaml:"name"`
	Agents []string `yaml:"agents"`
}

// ProviderSettings holds the per-provider configuration resolved from the
// flattened YAML keys.
type ProviderSettings struct {
	APIKeyEnvVar string
	ModelNames   []string
}

// Configured reports whether the provider has both an API key variable and
// at least one permitted model.
func (s ProviderSettings) Configured() bool {
	return s.APIKeyEnvVar != "" && len(s.ModelNames) > 0
}

// Allows reports whether the model name appears in the permitted list.
func (s ProviderSettings) Allows(model string) bool {
	for _, name := range s.ModelNames {
		if name == model {
			return true
		}
	}
	return false
}

// Config is the top-level wayfindex configuration document.
type Config struct {
	Environments []Environment `yaml:"environments"`

	OpenAIAPIKeyEnvVar string   `yaml:"openai_api_key_env_var"`
	OpenAIModelNames   []string `yaml:"openai_model_names"`

	AnthropicAPIKeyEnvVar string   `yaml:"anthropic_api_key_env_var"`
	AnthropicModelNames   []string `yaml:"anthropic_model_names"`

	GeminiAPIKeyEnvVar string   `yaml:"gemini_api_key_env_var"`
	GeminiModelNames   []string `yaml:"gemini_model_names"`

	OpenRouterAPIKeyEnvVar string   `yaml:"openrouter_api_key_env_var"`
	OpenRouterModelNames   []string `yaml:"openrouter_model_names"`

	PerplexityAPIKeyEnvVar string   `yaml:"perplexity_api_key_env_var"`
	PerplexityModelNames   []string `yaml:"perplexity_model_names"`
}

// Provider returns the settings for the given provider tag.
func (c *Config) Provider(p Provider) ProviderSettings {
	switch p {
	case ProviderOpenAI:
		return ProviderSettings{APIKeyEnvVar: c.OpenAIAPIKeyEnvVar, ModelNames: c.OpenAIModelNames}
	case ProviderAnthropic:
		return ProviderSettings{APIKeyEnvVar: c.AnthropicAPIKeyEnvVar, ModelNames: c.AnthropicModelNames}
	case ProviderGemini:
		return ProviderSettings{APIKeyEnvVar: c.GeminiAPIKeyEnvVar, ModelNames: c.GeminiModelNames}
	case ProviderOpenRouter:
		return ProviderSettings{APIKeyEnvVar: c.OpenRouterAPIKeyEnvVar, ModelNames: c.OpenRouterModelNames}
	case ProviderPerplexity:
		return ProviderSettings{APIKeyEnvVar: c.PerplexityAPIKeyEnvVar, ModelNames: c.PerplexityModelNames}
	}
	return ProviderSettings{}
}

// EnvironmentNames returns the configured environment names in declared order.
func (c *Config) EnvironmentNames() []string {
	names := make([]string, 0, len(c.Environments))
	for _, env := range c.Environments {
		names = append(names, env.Name)
	}
	return names
}

// Environment returns the ordered agent identifier list for the named
// environment, or a NotFound error enumerating the defined names.
func (c *Config) Environment(name string) ([]string, error) {
	for _, env := range c.Environments {
		if env.Name == name {
			return env.Agents, nil
		}
	}
	return nil, errors.NewNotFoundError("environment", name, c.EnvironmentNames()...)
}

// AgentID is a parsed "provider_modelname" identifier.
type AgentID struct {
	Provider Provider
	Model    string
}

// DisplayName returns the agent's display name, "provider-model".
func (id AgentID) DisplayName() string {
	return string(id.Provider) + "-" + id.Model
}

// ParseAgentID splits an agent identifier into provider tag and model name.
// The identifier format is "provider_modelname"; the model name keeps any
// further underscores or slashes (OpenRouter model ids contain both).
func ParseAgentID(id string) (AgentID, error) {
	provider, model, ok := strings.Cut(id, "_")
	if !ok || provider == "" || model == "" {
		return AgentID{}, errors.NewValidationError("agents", id,
			"agent identifier must have the form provider_modelname")
	}
	p := Provider(provider)
	if !p.Valid() {
		return AgentID{}, errors.NewValidationError("agents", id,
			"unknown provider "+provider)
	}
	return AgentID{Provider: p, Model: model}, nil
}

// Validate checks the structural invariants of the configuration: at least
// one environment, unique non-empty environment names, and every agent
// identifier referencing a configured provider and a permitted model.
func (c *Config) Validate() error {
	if len(c.Environments) == 0 {
		return errors.NewConfigError("environments", "at least one environment must be defined", nil)
	}

	seen := make(map[string]struct{}, len(c.Environments))
	for _, env := range c.Environments {
		if env.Name == "" {
			return errors.NewValidationError("environments", env, "environment name must not be empty")
		}
		if _, dup := seen[env.Name]; dup {
			return errors.NewValidationError("environments", env.Name, "duplicate environment name")
		}
		seen[env.Name] = struct{}{}

		for _, agent := range env.Agents {
			id, err := ParseAgentID(agent)
			if err != nil {
				return err
			}
			settings := c.Provider(id.Provider)
			if settings.APIKeyEnvVar == "" {
				return errors.NewValidationError(string(id.Provider)+"_api_key_env_var", agent,
					"provider referenced by "+agent+" has no API key environment variable configured")
			}
			if !settings.Allows(id.Model) {
				return errors.NewValidationError(string(id.Provider)+"_model_names", agent,
					"model "+id.Model+" is not in the provider's permitted list")
			}
		}
	}

	return nil
}
