package wayfindex_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wayfindex"
	"github.com/agentstation/wayfindex/pkg/errors"
)

const testConfig = `environments:
  - name: default
    agents:
      - openai_gpt-4o
openai_api_key_env_var: WAYFINDEX_TEST_OPENAI_KEY
openai_model_names:
  - gpt-4o
`

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))
	return path
}

func TestRunEmptyQuery(t *testing.T) {
	_, err := wayfindex.Run(context.Background(), wayfindex.Options{
		ConfigPath: writeConfig(t),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestRunMissingConfig(t *testing.T) {
	_, err := wayfindex.Run(context.Background(), wayfindex.Options{
		ConfigPath: filepath.Join(t.TempDir(), "nope.yaml"),
		Query:      "Pike Place Market",
	})
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestRunUnknownEnvironment(t *testing.T) {
	_, err := wayfindex.Run(context.Background(), wayfindex.Options{
		ConfigPath:  writeConfig(t),
		Environment: "travel",
		Query:       "Pike Place Market",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "default")
}

func TestRunMissingAPIKey(t *testing.T) {
	t.Setenv("WAYFINDEX_TEST_OPENAI_KEY", "")
	os.Unsetenv("WAYFINDEX_TEST_OPENAI_KEY")

	_, err := wayfindex.Run(context.Background(), wayfindex.Options{
		ConfigPath: writeConfig(t),
		Query:      "Pike Place Market",
		OutputDir:  t.TempDir(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsCredential(err))
}

func TestRunCreatesCategoryFileBesideConfig(t *testing.T) {
	t.Setenv("WAYFINDEX_TEST_OPENAI_KEY", "")
	os.Unsetenv("WAYFINDEX_TEST_OPENAI_KEY")

	configPath := writeConfig(t)
	_, err := wayfindex.Run(context.Background(), wayfindex.Options{
		ConfigPath: configPath,
		Query:      "Pike Place Market",
		OutputDir:  t.TempDir(),
	})
	require.Error(t, err, "run still fails on the missing API key")

	// The category store is initialized before agents are built.
	_, statErr := os.Stat(filepath.Join(filepath.Dir(configPath), "categories.json"))
	assert.NoError(t, statErr)
}
