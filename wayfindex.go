// Package wayfindex fans a place search query out to a group of AI agents,
// validates their structured responses, and writes one rendered markdown
// note per successful agent.
package wayfindex

import (
	"context"

	"github.com/agentstation/utc"

	"github.com/agentstation/wayfindex/internal/embedded"
	"github.com/agentstation/wayfindex/pkg/agents"
	"github.com/agentstation/wayfindex/pkg/categories"
	"github.com/agentstation/wayfindex/pkg/config"
	"github.com/agentstation/wayfindex/pkg/errors"
	"github.com/agentstation/wayfindex/pkg/logging"
	"github.com/agentstation/wayfindex/pkg/notes"
	"github.com/agentstation/wayfindex/pkg/render"
	"github.com/agentstation/wayfindex/pkg/runner"
)

// promptName is the embedded system prompt driving the agents.
const promptName = "place_search"

// timestampDisplay is how generation times appear inside rendered notes.
const timestampDisplay = "2006-01-02 15:04:05 MST"

// Options configures a search run.
type Options struct {
	// ConfigPath locates the YAML configuration file. Empty means
	// config.DefaultPath.
	ConfigPath string

	// Environment names the agent group to run. Empty means the first
	// group in the configuration.
	Environment string

	// Query is the place search text sent to every agent.
	Query string

	// OutputDir receives the rendered note files.
	OutputDir string

	// Template is the note template filename. Empty means the built-in
	// default.
	Template string

	// TemplateDir optionally overrides built-in templates with files on
	// disk.
	TemplateDir string

	// CategoriesPath locates the category store. Empty means
	// categories.DefaultPath resolved beside the configuration file.
	CategoriesPath string
}

// AgentReport records one agent's outcome within a run summary.
type AgentReport struct {
	Agent string `json:"agent"`
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
	Err   error  `json:"-"`
}

// Failed reports whether the agent produced no note.
func (r AgentReport) Failed() bool {
	return r.Err != nil
}

// Summary describes a completed run.
type Summary struct {
	Query       string        `json:"query"`
	Environment string        `json:"environment"`
	Reports     []AgentReport `json:"reports"`
}

// Succeeded counts agents that produced a note file.
func (s *Summary) Succeeded() int {
	n := 0
	for _, r := range s.Reports {
		if !r.Failed() {
			n++
		}
	}
	return n
}

// Failed counts agents that produced no note.
func (s *Summary) Failed() int {
	return len(s.Reports) - s.Succeeded()
}

// Run executes a search: it loads the configuration and category set,
// builds the agent group, queries every agent concurrently, and writes one
// note per successful response. Per-agent failures are reported in the
// summary rather than returned; the error return covers faults that sink
// the whole run, such as a bad configuration or an unknown group.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	if opts.Query == "" {
		return nil, errors.NewValidationError("query", opts.Query, "must not be empty")
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	envName := opts.Environment
	if envName == "" {
		envName = cfg.Environments[0].Name
	}
	agentIDs, err := cfg.Environment(envName)
	if err != nil {
		return nil, err
	}

	categoriesPath := opts.CategoriesPath
	if categoriesPath == "" {
		categoriesPath = categories.PathNear(configPath)
	}
	categorySet, err := categories.Load(categoriesPath)
	if err != nil {
		return nil, err
	}

	prompt, err := embedded.Prompt(promptName)
	if err != nil {
		return nil, err
	}

	factory := agents.NewFactory(cfg, categorySet, prompt)
	group, err := factory.Agents(ctx, agentIDs)
	if err != nil {
		return nil, err
	}

	logging.Info().
		Str("environment", envName).
		Int("agents", len(group)).
		Str("query", opts.Query).
		Msg("starting search")

	list := make([]runner.Agent, len(group))
	for i, a := range group {
		list[i] = a
	}
	outcomes, err := runner.Run(ctx, list, opts.Query)
	if err != nil {
		return nil, err
	}

	templateName := opts.Template
	if templateName == "" {
		templateName = render.DefaultTemplate
	}
	renderer := render.New(opts.TemplateDir)
	writer := notes.NewWriter(opts.OutputDir)

	summary := &Summary{Query: opts.Query, Environment: envName}
	for _, outcome := range outcomes {
		report := AgentReport{Agent: outcome.Agent}
		if outcome.Failed() {
			report.Err = outcome.Err
			report.Error = outcome.Err.Error()
			logging.Err(outcome.Err).Str("agent", outcome.Agent).Msg("agent failed")
			summary.Reports = append(summary.Reports, report)
			continue
		}

		path, err := writeNote(renderer, writer, templateName, outcome.Result)
		if err != nil {
			report.Err = err
			report.Error = err.Error()
			logging.Err(err).Str("agent", outcome.Agent).Msg("note not written")
		} else {
			report.Path = path
			logging.Info().Str("agent", outcome.Agent).Str("path", path).Msg("note written")
		}
		summary.Reports = append(summary.Reports, report)
	}

	return summary, nil
}

func writeNote(renderer *render.Renderer, writer *notes.Writer, template string, result *agents.PlaceResult) (string, error) {
	now := utc.Now()

	website := ""
	if result.Note.Website != nil {
		website = *result.Note.Website
	}
	data := map[string]any{
		"name":         result.Note.Name,
		"category":     result.Note.Category.String(),
		"address":      result.Note.Address,
		"open_hours":   result.Note.OpenHours,
		"website":      website,
		"description":  result.Note.Description,
		"tips":         result.Note.Tips,
		"agent_name":   result.AgentName,
		"query":        result.Query,
		"generated_at": now.Format(timestampDisplay),
	}

	content, err := renderer.Render(template, data)
	if err != nil {
		return "", err
	}
	return writer.Write(result.AgentName, result.Note.Slug, now, content)
}
