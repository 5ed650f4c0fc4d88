// Package docs generates markdown reference documentation for the
// configuration file and the supported providers.
package docs

import (
	"io"
	"strings"

	md "github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/wayfindex/pkg/categories"
	"github.com/agentstation/wayfindex/pkg/config"
)

var titleCaser = cases.Title(language.English)

// providerNotes maps each provider to a short description for the reference.
var providerNotes = map[config.Provider]string{
	config.ProviderOpenAI:     "OpenAI chat completions API",
	config.ProviderAnthropic:  "Anthropic messages API",
	config.ProviderGemini:     "Google Gemini API",
	config.ProviderOpenRouter: "OpenAI-compatible gateway at openrouter.ai",
	config.ProviderPerplexity: "OpenAI-compatible API at perplexity.ai",
}

// DisplayName returns the title-cased name of a provider for documentation.
func DisplayName(p config.Provider) string {
	switch p {
	case config.ProviderOpenAI:
		return "OpenAI"
	case config.ProviderOpenRouter:
		return "OpenRouter"
	default:
		return titleCaser.String(string(p))
	}
}

// WriteReference writes the configuration reference to w. When cfg is
// non-nil, the loaded agent groups and provider models are documented too.
func WriteReference(w io.Writer, cfg *config.Config) error {
	if err := WriteConfigReference(w); err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	doc := md.NewMarkdown(w).
		H1("Loaded Configuration").
		LF()

	groupRows := make([][]string, 0, len(cfg.Environments))
	for _, env := range cfg.Environments {
		groupRows = append(groupRows, []string{
			env.Name,
			strings.Join(env.Agents, ", "),
		})
	}
	doc.H2("Agent groups").
		LF().
		Table(md.TableSet{
			Header: []string{"Group", "Agents"},
			Rows:   groupRows,
		}).
		LF()

	modelRows := make([][]string, 0, len(config.Providers()))
	for _, p := range config.Providers() {
		settings := cfg.Provider(p)
		if !settings.Configured() {
			continue
		}
		modelRows = append(modelRows, []string{
			DisplayName(p),
			settings.APIKeyEnvVar,
			strings.Join(settings.ModelNames, ", "),
		})
	}
	doc.H2("Configured providers").
		LF().
		Table(md.TableSet{
			Header: []string{"Provider", "API key env var", "Allowed models"},
			Rows:   modelRows,
		}).
		LF()

	return doc.Build()
}

// WriteConfigReference writes the configuration file reference to w.
func WriteConfigReference(w io.Writer) error {
	doc := md.NewMarkdown(w).
		H1("Configuration Reference").
		LF().
		PlainText("The configuration file is YAML. It declares named agent groups and, per provider, the environment variable holding the API key and the models agents may use.").
		LF()

	doc.H2("Agent groups").
		LF().
		PlainText("Each entry under `environments` names a group and lists its agents. An agent identifier is `provider_modelname`, split on the first underscore.").
		LF().
		CodeBlocks(md.SyntaxHighlight("yaml"),
			"environments:\n"+
				"  - name: default\n"+
				"    agents:\n"+
				"      - openai_gpt-4o\n"+
				"      - anthropic_claude-sonnet-4-5\n"+
				"      - gemini_gemini-2.0-flash").
		LF()

	providerRows := make([][]string, 0, len(config.Providers()))
	for _, p := range config.Providers() {
		providerRows = append(providerRows, []string{
			DisplayName(p),
			string(p) + "_api_key_env_var",
			string(p) + "_model_names",
			providerNotes[p],
		})
	}
	doc.H2("Providers").
		LF().
		PlainText("Per provider, two top-level keys configure access. The API key itself always stays in the environment and is never written to the configuration file or the logs.").
		LF().
		Table(md.TableSet{
			Header: []string{"Provider", "API key env var key", "Allowed models key", "Notes"},
			Rows:   providerRows,
		}).
		LF()

	doc.H2("Categories").
		LF().
		PlainTextf("Place categories live in `%s` next to the configuration file. The file is created with the defaults below when missing, and the `categories add` command appends to it.", categories.DefaultPath).
		LF().
		BulletList(categories.Defaults()...).
		LF()

	doc.H2("Environment file").
		LF().
		PlainText("A `.env` file beside the configuration file is loaded at startup. Use it for the API key variables the provider sections name.").
		LF()

	return doc.Build()
}
