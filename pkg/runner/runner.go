// Package runner fans a query out to a set of agents concurrently and
// gathers every outcome. The join never fails fast: all requests are issued
// at once and the runner waits for each to settle, so one agent's failure
// neither cancels nor delays the others.
package runner

import (
	"context"

	"github.com/sourcegraph/conc"

	"github.com/agentstation/wayfindex/pkg/agents"
	"github.com/agentstation/wayfindex/pkg/errors"
	"github.com/agentstation/wayfindex/pkg/logging"
)

// Agent is the slice of the agent surface the runner needs.
type Agent interface {
	Name() string
	Query(ctx context.Context, query string) (*agents.PlaceResult, error)
}

// Outcome is one agent's settled result: a validated PlaceResult or the
// error that prevented one.
type Outcome struct {
	Agent  string
	Result *agents.PlaceResult
	Err    error
}

// Failed reports whether the outcome is a recorded failure.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Run queries every agent with the same query and returns the outcomes in
// agent order. Individual failures are captured, never raised; the only
// error Run itself returns is for an empty agent list. No per-call timeout
// or retry is applied, so a hanging provider stalls the batch until ctx is
// canceled.
func Run(ctx context.Context, list []Agent, query string) ([]Outcome, error) {
	if len(list) == 0 {
		return nil, errors.NewConfigError("runner", errors.ErrNoAgents.Error(), errors.ErrNoAgents)
	}

	log := logging.FromContext(ctx)
	log.Info().Int("agents", len(list)).Str("query", query).Msg("querying agents")

	outcomes := make([]Outcome, len(list))

	var wg conc.WaitGroup
	for i, agent := range list {
		wg.Go(func() {
			result, err := agent.Query(ctx, query)
			outcomes[i] = Outcome{Agent: agent.Name(), Result: result, Err: err}

			if err != nil {
				log.Error().Err(err).Str("agent", agent.Name()).Msg("agent query failed")
			} else {
				log.Info().Str("agent", agent.Name()).Str("place", result.Note.Name).Msg("agent query completed")
			}
		})
	}
	wg.Wait()

	return outcomes, nil
}

// Succeeded filters the outcomes down to validated results, preserving order.
func Succeeded(outcomes []Outcome) []*agents.PlaceResult {
	results := make([]*agents.PlaceResult, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.Failed() {
			results = append(results, o.Result)
		}
	}
	return results
}

// Failures filters the outcomes down to recorded failures, preserving order.
func Failures(outcomes []Outcome) []Outcome {
	failures := make([]Outcome, 0)
	for _, o := range outcomes {
		if o.Failed() {
			failures = append(failures, o)
		}
	}
	return failures
}
