package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseFormat(t *testing.T) {
	schema := NewSchema([]string{"cafe", "bar"})

	format := schema.ResponseFormat()
	require.NotNil(t, format.JSON)
	assert.Equal(t, "place_note", format.JSON.Name)

	js := *format.JSON.Schema
	assert.Equal(t, "object", js["type"])

	props, ok := js["properties"].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{"name", "slug", "address", "category", "description", "open_hours", "website", "tips"} {
		assert.Contains(t, props, field)
	}

	category, ok := props["category"].(map[string]any)
	require.True(t, ok)
	oneOf, ok := category["oneOf"].([]any)
	require.True(t, ok)
	require.Len(t, oneOf, 2)

	enum := oneOf[0].(map[string]any)["enum"]
	assert.Equal(t, []string{"cafe", "bar"}, enum, "category enum follows the loaded set")
}

func TestGenaiSchema(t *testing.T) {
	schema := NewSchema([]string{"cafe", "bar"}).GenaiSchema()

	require.Contains(t, schema.Properties, "category")
	category := schema.Properties["category"]
	require.Len(t, category.AnyOf, 2)
	assert.Equal(t, []string{"cafe", "bar"}, category.AnyOf[0].Enum)
	assert.Contains(t, schema.Required, "category")
}

func TestPromptInstructions(t *testing.T) {
	text := NewSchema([]string{"cafe", "bar"}).PromptInstructions()
	assert.Contains(t, text, "cafe, bar")
	assert.Contains(t, text, "suggested_new_category")
	assert.Contains(t, text, "JSON")
}
