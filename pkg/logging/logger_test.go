package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wayfindex/pkg/logging"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf).Level(zerolog.InfoLevel)

	logger.Info().Str("agent", "openai-gpt-4o").Msg("querying")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "querying", entry["message"])
	assert.Equal(t, "openai-gpt-4o", entry["agent"])
	assert.NotEmpty(t, entry["time"])
}

func TestFromContextDefaults(t *testing.T) {
	assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Equal(t, logging.Default(), logging.FromContext(nil)) //nolint:staticcheck // nil context is part of the contract
}

func TestWithLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	assert.Equal(t, &logger, logging.FromContext(ctx))
	assert.Equal(t, &logger, logging.Ctx(ctx))
}

func TestWithAgentAddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf).Level(zerolog.InfoLevel)

	ctx := logging.WithLogger(context.Background(), &logger)
	ctx = logging.WithAgent(ctx, "anthropic-claude-sonnet-4-5")

	logging.FromContext(ctx).Info().Msg("done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "anthropic-claude-sonnet-4-5", entry["agent"])
}
