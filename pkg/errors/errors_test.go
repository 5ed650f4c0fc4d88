package errors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/agentstation/wayfindex/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("environment", "staging")
		assert.Equal(t, `environment "staging" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("enumerates available names", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("environment", "staging", "prod", "dev")
		assert.Equal(t, `environment "staging" not found (available: prod, dev)`, err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("template", "note.md")
		wrapped := fmt.Errorf("loading: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("openai_model_names", "gpt-9", "model not in allowed list")
		assert.Equal(t, "validation failed for openai_model_names: model not in allowed list", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("", nil, "bad input")
		assert.Equal(t, "validation failed: bad input", err.Error())
		assert.True(t, pkgerrors.IsValidation(err))
	})
}

func TestCredentialError(t *testing.T) {
	err := pkgerrors.NewCredentialError("openai", "OPENAI_API_KEY")
	assert.Equal(t, "missing credential for openai: environment variable OPENAI_API_KEY is not set", err.Error())
	assert.True(t, errors.Is(err, pkgerrors.ErrAPIKeyRequired))
	assert.True(t, pkgerrors.IsCredential(err))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestConfigError(t *testing.T) {
	cause := errors.New("open config.yaml: no such file or directory")
	err := pkgerrors.NewConfigError("loader", "config file not found", cause)
	assert.Equal(t, "configuration error in loader: config file not found", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestProviderError(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		err := &pkgerrors.ProviderError{Provider: "anthropic", Model: "claude-3-5-haiku", StatusCode: 429, Message: "too many requests"}
		assert.True(t, pkgerrors.IsRateLimited(err))
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("server error maps to unavailable", func(t *testing.T) {
		err := &pkgerrors.ProviderError{Provider: "openai", StatusCode: 503, Message: "overloaded"}
		assert.True(t, pkgerrors.IsProviderUnavailable(err))
	})

	t.Run("unwrap", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := pkgerrors.NewProviderError("gemini", "gemini-2.0-flash", "request failed", cause)
		assert.Equal(t, cause, errors.Unwrap(err))
	})
}

func TestRenderError(t *testing.T) {
	err := &pkgerrors.RenderError{Template: "place_note.md", Missing: []string{"address", "name"}}
	assert.Equal(t, "template place_note.md: missing required variables: address, name", err.Error())
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestIsCanceled(t *testing.T) {
	assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))
	assert.True(t, pkgerrors.IsCanceled(context.Canceled))
	assert.False(t, pkgerrors.IsCanceled(errors.New("boom")))
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("write", "out.md", nil))
	assert.NoError(t, pkgerrors.WrapParse("yaml", "config.yaml", nil))

	ioErr := pkgerrors.WrapIO("write", "out.md", errors.New("disk full"))
	assert.Contains(t, ioErr.Error(), "IO error during write of out.md")

	parseErr := pkgerrors.WrapParse("json", "categories.json", errors.New("unexpected EOF"))
	assert.Contains(t, parseErr.Error(), "parse error in json file categories.json")
}
