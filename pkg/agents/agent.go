// Package agents constructs and queries AI agents. An Agent is an immutable
// binding of one provider model, a fixed system prompt, and the place-note
// schema derived from the configured category set. Construction performs no
// network I/O; a query is a single chat completion returning structured JSON.
package agents

import (
	"context"

	"github.com/agentstation/wayfindex/pkg/config"
	"github.com/agentstation/wayfindex/pkg/errors"
	"github.com/agentstation/wayfindex/pkg/logging"
)

// caller issues one completion call against a concrete provider backend and
// returns the raw response text.
type caller interface {
	call(ctx context.Context, systemPrompt, query string) (string, *Usage, error)
}

// Agent binds a provider model to the place-search prompt and output schema.
type Agent struct {
	name   string
	id     config.AgentID
	prompt string
	schema *Schema
	caller caller
}

// Name returns the agent's display name, e.g. "openai-gpt-4o".
func (a *Agent) Name() string {
	return a.name
}

// Provider returns the agent's provider tag.
func (a *Agent) Provider() config.Provider {
	return a.id.Provider
}

// Model returns the agent's model name.
func (a *Agent) Model() string {
	return a.id.Model
}

// Query sends the place-search query to the agent's model and returns the
// validated result. No retry and no per-call deadline are applied beyond
// what ctx carries; cancellation of ctx aborts the call.
func (a *Agent) Query(ctx context.Context, query string) (*PlaceResult, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("agent", a.name).Str("query", query).Msg("querying agent")

	text, usage, err := a.caller.call(ctx, a.prompt, query)
	if err != nil {
		if errors.IsCanceled(err) {
			return nil, err
		}
		return nil, errors.NewProviderError(string(a.id.Provider), a.id.Model, "query failed", err)
	}

	note, err := a.schema.ParseNote([]byte(text))
	if err != nil {
		return nil, err
	}

	log.Debug().Str("agent", a.name).Str("place", note.Name).Msg("agent completed")

	return &PlaceResult{
		AgentName: a.name,
		Query:     query,
		Note:      note,
		Usage:     usage,
	}, nil
}
