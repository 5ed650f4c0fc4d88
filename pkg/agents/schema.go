package agents

import (
	"fmt"
	"strings"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"
	"google.golang.org/genai"
)

// Schema is the place-note output contract built from the runtime-loaded
// category set. Category membership is enforced twice: advertised to the
// provider through the response schema, and checked again at parse time.
type Schema struct {
	categories []string
}

// NewSchema builds a place-note schema constrained to the given categories.
func NewSchema(categories []string) *Schema {
	return &Schema{categories: categories}
}

// Categories returns the category set the schema validates against.
func (s *Schema) Categories() []string {
	return s.categories
}

// ResponseFormat returns the llm-sdk JSON response format for the schema.
func (s *Schema) ResponseFormat() *llmsdk.ResponseFormatOption {
	schema := s.jsonSchema()
	return llmsdk.NewResponseFormatJSON("place_note", nil, &schema)
}

func (s *Schema) jsonSchema() llmsdk.JSONSchema {
	return llmsdk.JSONSchema{
		"title": "PlaceNote",
		"type":  "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "The name of the place.",
			},
			"slug": map[string]any{
				"type":        "string",
				"description": "A URL-safe slug for the place name (lowercase, alphanumeric and hyphens only, e.g. 'pike-place-market'). Must be suitable for use in filenames.",
			},
			"address": map[string]any{
				"type":        "string",
				"description": "The address of the place.",
			},
			"category": map[string]any{
				"description": "The category of the place.",
				"oneOf": []any{
					map[string]any{
						"type": "string",
						"enum": s.categories,
					},
					map[string]any{
						"type": "object",
						"properties": map[string]any{
							"suggested_new_category": map[string]any{
								"type":        "string",
								"description": "A suggested new category for the place.",
							},
							"fallback_existing_category": map[string]any{
								"type":        "string",
								"enum":        s.categories,
								"description": "An existing category that is the closest match for the place.",
							},
						},
						"required":             []string{"suggested_new_category", "fallback_existing_category"},
						"additionalProperties": false,
					},
				},
			},
			"description": map[string]any{
				"type":        "string",
				"description": "A brief description of the place.",
			},
			"open_hours": map[string]any{
				"type":        "string",
				"description": "The opening hours of the place.",
			},
			"website": map[string]any{
				"type":        []string{"string", "null"},
				"description": "The website URL of the place.",
			},
			"tips": map[string]any{
				"type":        "array",
				"description": "A list of 1-3 tips for visiting the place, each no more than 15 words.",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
			},
		},
		"required":             []string{"name", "slug", "address", "category", "description", "open_hours", "tips"},
		"additionalProperties": false,
	}
}

// GenaiSchema returns the schema in the shape the Gemini API expects.
func (s *Schema) GenaiSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {
				Type:        genai.TypeString,
				Description: "The name of the place.",
			},
			"slug": {
				Type:        genai.TypeString,
				Description: "A URL-safe slug for the place name (lowercase, alphanumeric and hyphens only).",
			},
			"address": {
				Type:        genai.TypeString,
				Description: "The address of the place.",
			},
			"category": {
				Description: "The category of the place.",
				AnyOf: []*genai.Schema{
					{
						Type: genai.TypeString,
						Enum: s.categories,
					},
					{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"suggested_new_category": {
								Type:        genai.TypeString,
								Description: "A suggested new category for the place.",
							},
							"fallback_existing_category": {
								Type:        genai.TypeString,
								Enum:        s.categories,
								Description: "An existing category that is the closest match for the place.",
							},
						},
						Required: []string{"suggested_new_category", "fallback_existing_category"},
					},
				},
			},
			"description": {
				Type:        genai.TypeString,
				Description: "A brief description of the place.",
			},
			"open_hours": {
				Type:        genai.TypeString,
				Description: "The opening hours of the place.",
			},
			"website": {
				Type:        genai.TypeString,
				Nullable:    genai.Ptr(true),
				Description: "The website URL of the place.",
			},
			"tips": {
				Type:        genai.TypeArray,
				Description: "A list of 1-3 tips for visiting the place, each no more than 15 words.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"name", "slug", "address", "category", "description", "open_hours", "tips"},
	}
}

// PromptInstructions returns the output-contract text appended to the system
// prompt. Not every provider enforces a response schema server-side
// (Anthropic has no native JSON schema mode), so the contract also travels
// in the prompt.
func (s *Schema) PromptInstructions() string {
	var b strings.Builder
	b.WriteString("Respond with a single JSON object and nothing else. Fields: ")
	b.WriteString(`"name", "slug" (lowercase, alphanumeric and hyphens only), "address", "category", "description", "open_hours", "website" (or null), and "tips" (1-3 short strings).`)
	fmt.Fprintf(&b, " The category must be one of: %s.", strings.Join(s.categories, ", "))
	b.WriteString(` If none fits, set category to an object {"suggested_new_category": ..., "fallback_existing_category": ...} where the fallback is the closest match from the list.`)
	return b.String()
}
