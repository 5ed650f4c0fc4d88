package agents

import (
	"context"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"
)

// languageModel is the slice of the llm-sdk model surface the agent needs.
type languageModel interface {
	Generate(ctx context.Context, input *llmsdk.LanguageModelInput) (*llmsdk.ModelResponse, error)
}

// llmCaller issues completions through an llm-sdk language model. It covers
// OpenAI, Anthropic, and the OpenAI-compatible hosts (OpenRouter,
// Perplexity) via a base URL override on the OpenAI client.
type llmCaller struct {
	model  languageModel
	format *llmsdk.ResponseFormatOption
}

func (c *llmCaller) call(ctx context.Context, systemPrompt, query string) (string, *Usage, error) {
	resp, err := c.model.Generate(ctx, &llmsdk.LanguageModelInput{
		SystemPrompt: &systemPrompt,
		Messages: []llmsdk.Message{
			llmsdk.NewUserMessage(llmsdk.NewTextPart(query)),
		},
		ResponseFormat: c.format,
	})
	if err != nil {
		return "", nil, err
	}

	var text string
	for _, part := range resp.Content {
		if part.TextPart != nil {
			text = part.TextPart.Text
			break
		}
	}

	var usage *Usage
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		}
	}

	return text, usage, nil
}
