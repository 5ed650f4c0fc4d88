package agents

import (
	"encoding/json"
	"strings"

	"github.com/agentstation/wayfindex/pkg/categories"
	"github.com/agentstation/wayfindex/pkg/errors"
)

// Category is a place category as returned by an agent: either a member of
// the configured set, or a suggested new category with a fallback from the
// set.
type Category struct {
	Name      string // resolved category name (the suggestion when Suggested)
	Suggested bool
	Fallback  string // closest existing category, set only when Suggested
}

// String returns the resolved category name.
func (c Category) String() string {
	return c.Name
}

// categorySuggestion is the wire shape of a suggested category.
type categorySuggestion struct {
	SuggestedNewCategory     string `json:"suggested_new_category"`
	FallbackExistingCategory string `json:"fallback_existing_category"`
}

// UnmarshalJSON accepts either a plain category string or a suggestion object.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Category{Name: name}
		return nil
	}

	var suggestion categorySuggestion
	if err := json.Unmarshal(data, &suggestion); err != nil {
		return err
	}
	*c = Category{
		Name:      suggestion.SuggestedNewCategory,
		Suggested: true,
		Fallback:  suggestion.FallbackExistingCategory,
	}
	return nil
}

// MarshalJSON writes the wire shape back out.
func (c Category) MarshalJSON() ([]byte, error) {
	if c.Suggested {
		return json.Marshal(categorySuggestion{
			SuggestedNewCategory:     c.Name,
			FallbackExistingCategory: c.Fallback,
		})
	}
	return json.Marshal(c.Name)
}

// PlaceNote is the structured place data returned by an agent.
type PlaceNote struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Address     string   `json:"address"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	OpenHours   string   `json:"open_hours"`
	Website     *string  `json:"website"`
	Tips        []string `json:"tips"`
}

// Usage captures token counts reported by a provider for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// PlaceResult is one agent's validated response to a query.
type PlaceResult struct {
	AgentName string     `json:"agent_name"`
	Query     string     `json:"query"`
	Note      *PlaceNote `json:"note"`
	Usage     *Usage     `json:"usage,omitempty"`
}

// ParseNote decodes a provider's JSON payload into a PlaceNote and validates
// it against the schema's category set. Validation happens here, at parse
// time, rather than in a static type: the category set is loaded at runtime.
func (s *Schema) ParseNote(data []byte) (*PlaceNote, error) {
	var note PlaceNote
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &note); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}

	switch {
	case note.Name == "":
		return nil, errors.NewValidationError("name", nil, "place name must not be empty")
	case note.Category.Name == "":
		return nil, errors.NewValidationError("category", nil, "category must not be empty")
	case len(note.Tips) == 0:
		return nil, errors.NewValidationError("tips", nil, "at least one tip is required")
	}

	if note.Category.Suggested {
		if !categories.Contains(s.categories, note.Category.Fallback) {
			return nil, errors.NewValidationError("category", note.Category.Fallback,
				"fallback category is not in the configured set")
		}
	} else if !categories.Contains(s.categories, note.Category.Name) {
		return nil, errors.NewValidationError("category", note.Category.Name,
			"category is not in the configured set")
	}

	return &note, nil
}
