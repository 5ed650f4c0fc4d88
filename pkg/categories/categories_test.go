package categories_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wayfindex/pkg/categories"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")

	got, err := categories.Load(path)
	require.NoError(t, err)
	assert.Equal(t, categories.Defaults(), got)

	// The file should now exist with the same content.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"categories"`)
	assert.Contains(t, string(data), `"restaurant"`)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	list := []string{"cafe", "observatory", "bar", "climbing-gym"}

	require.NoError(t, categories.Save(path, list))

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	got, err := categories.Load(path)
	require.NoError(t, err)
	assert.Equal(t, list, got, "order preserved, no duplicates introduced")

	require.NoError(t, categories.Save(path, got))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second, "save/load/save is byte-for-byte stable")
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := categories.Load(path)
	assert.Error(t, err)
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "categories.json")
	require.NoError(t, categories.Save(path, []string{"cafe"}))

	got, err := categories.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe"}, got)
}

func TestPathNear(t *testing.T) {
	assert.Equal(t, "categories.json", categories.PathNear("config.yaml"))
	assert.Equal(t,
		filepath.Join("etc", "wayfindex", "categories.json"),
		categories.PathNear(filepath.Join("etc", "wayfindex", "config.yaml")))
}

func TestContains(t *testing.T) {
	list := []string{"cafe", "bar"}
	assert.True(t, categories.Contains(list, "bar"))
	assert.False(t, categories.Contains(list, "museum"))
}
