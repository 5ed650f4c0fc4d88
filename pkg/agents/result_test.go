package agents

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wayfindex/pkg/errors"
)

func TestCategoryUnmarshal(t *testing.T) {
	t.Run("plain string", func(t *testing.T) {
		var c Category
		require.NoError(t, json.Unmarshal([]byte(`"cafe"`), &c))
		assert.Equal(t, Category{Name: "cafe"}, c)
		assert.Equal(t, "cafe", c.String())
	})

	t.Run("suggestion object", func(t *testing.T) {
		var c Category
		require.NoError(t, json.Unmarshal([]byte(`{"suggested_new_category":"tea house","fallback_existing_category":"cafe"}`), &c))
		assert.Equal(t, Category{Name: "tea house", Suggested: true, Fallback: "cafe"}, c)
	})

	t.Run("round trip", func(t *testing.T) {
		for _, c := range []Category{
			{Name: "bar"},
			{Name: "tea house", Suggested: true, Fallback: "cafe"},
		} {
			data, err := json.Marshal(c)
			require.NoError(t, err)
			var got Category
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, c, got)
		}
	})
}

const validNoteJSON = `{
	"name": "Aquarium Zen",
	"slug": "aquarium-zen",
	"address": "12021 Aurora Ave N, Seattle, WA",
	"category": "shopping",
	"description": "A serene aquascaping shop inspired by nature aquariums.",
	"open_hours": "Wed-Sun 11 AM - 6 PM",
	"website": "https://aquariumzen.net",
	"tips": ["Ask about the aquascaping workshops"]
}`

func TestParseNote(t *testing.T) {
	schema := NewSchema([]string{"cafe", "shopping", "park"})

	t.Run("valid note", func(t *testing.T) {
		note, err := schema.ParseNote([]byte(validNoteJSON))
		require.NoError(t, err)
		assert.Equal(t, "Aquarium Zen", note.Name)
		assert.Equal(t, "aquarium-zen", note.Slug)
		assert.Equal(t, "shopping", note.Category.Name)
		require.NotNil(t, note.Website)
		assert.Equal(t, "https://aquariumzen.net", *note.Website)
	})

	t.Run("leading whitespace tolerated", func(t *testing.T) {
		_, err := schema.ParseNote([]byte("\n  " + validNoteJSON + "\n"))
		assert.NoError(t, err)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		raw := `{"name":"X","slug":"x","address":"a","category":"volcano","description":"d","open_hours":"h","website":null,"tips":["t"]}`
		_, err := schema.ParseNote([]byte(raw))
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
		assert.Contains(t, err.Error(), "volcano")
	})

	t.Run("suggestion with known fallback accepted", func(t *testing.T) {
		raw := `{"name":"X","slug":"x","address":"a","category":{"suggested_new_category":"tea house","fallback_existing_category":"cafe"},"description":"d","open_hours":"h","website":null,"tips":["t"]}`
		note, err := schema.ParseNote([]byte(raw))
		require.NoError(t, err)
		assert.True(t, note.Category.Suggested)
		assert.Equal(t, "tea house", note.Category.Name)
	})

	t.Run("suggestion with unknown fallback rejected", func(t *testing.T) {
		raw := `{"name":"X","slug":"x","address":"a","category":{"suggested_new_category":"tea house","fallback_existing_category":"volcano"},"description":"d","open_hours":"h","website":null,"tips":["t"]}`
		_, err := schema.ParseNote([]byte(raw))
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("empty tips rejected", func(t *testing.T) {
		raw := `{"name":"X","slug":"x","address":"a","category":"cafe","description":"d","open_hours":"h","website":null,"tips":[]}`
		_, err := schema.ParseNote([]byte(raw))
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("not json", func(t *testing.T) {
		_, err := schema.ParseNote([]byte("I could not find that place."))
		require.Error(t, err)
		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}
