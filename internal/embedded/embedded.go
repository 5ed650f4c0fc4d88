// Package embedded provides the built-in note templates and system prompts
// compiled into the binary, so a fresh checkout works without any asset
// files on disk.
package embedded

import (
	"embed"
	"strings"

	"github.com/agentstation/wayfindex/pkg/errors"
)

//go:embed templates/*.md prompts/*.txt
var assets embed.FS

// Template returns the embedded template source with the given name.
func Template(name string) (string, error) {
	data, err := assets.ReadFile("templates/" + name)
	if err != nil {
		return "", errors.NewNotFoundError("template", name)
	}
	return string(data), nil
}

// Prompt returns the embedded system prompt with the given name, without a
// trailing newline.
func Prompt(name string) (string, error) {
	data, err := assets.ReadFile("prompts/" + name + ".txt")
	if err != nil {
		return "", errors.NewNotFoundError("prompt", name)
	}
	return strings.TrimSpace(string(data)), nil
}
