package agents

import (
	"context"

	"google.golang.org/genai"
)

// geminiCaller issues completions through the Gemini API. Gemini enforces
// the response schema server-side via ResponseSchema, so the returned text
// is already JSON.
type geminiCaller struct {
	client *genai.Client
	model  string
	schema *genai.Schema
}

func (c *geminiCaller) call(ctx context.Context, systemPrompt, query string) (string, *Usage, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(query), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    c.schema,
	})
	if err != nil {
		return "", nil, err
	}

	var usage *Usage
	if resp.UsageMetadata != nil {
		usage = &Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	return resp.Text(), usage, nil
}
