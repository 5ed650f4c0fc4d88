// Package notes writes rendered place notes to disk, one markdown file per
// agent response, with collision-safe filenames built from the agent name,
// the place slug, and a UTC timestamp.
package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/agentstation/utc"

	"github.com/agentstation/wayfindex/pkg/errors"
)

// FallbackSlug is used when a slug sanitizes down to nothing.
const FallbackSlug = "unknown-place"

// timestampLayout matches the filename timestamp format.
const timestampLayout = "20060102_150405"

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9-]+`)
	slugCollapse = regexp.MustCompile(`-+`)
	agentStrip   = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// Slugify normalizes s into a lowercase hyphenated slug suitable for a
// filename. Empty or fully stripped input yields FallbackSlug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return FallbackSlug
	}
	return s
}

// sanitizeAgent keeps letters, digits, dots, underscores, and hyphens so
// model names like "gpt-3.5-turbo" survive intact.
func sanitizeAgent(name string) string {
	name = agentStrip.ReplaceAllString(strings.TrimSpace(name), "")
	if name == "" {
		return "agent"
	}
	return name
}

// Filename builds the note filename for an agent's result at the given time.
func Filename(agent, slug string, ts utc.Time) string {
	return fmt.Sprintf("%s_%s_%s.md", sanitizeAgent(agent), Slugify(slug), ts.Format(timestampLayout))
}

// Writer persists rendered notes under a single output directory.
type Writer struct {
	// Dir is the output directory, created on first write if absent.
	Dir string
}

// NewWriter creates a writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Write stores content under the filename derived from agent, slug, and ts,
// and returns the full path of the written file.
func (w *Writer) Write(agent, slug string, ts utc.Time, content string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", errors.WrapIO("create", w.Dir, err)
	}
	path := filepath.Join(w.Dir, Filename(agent, slug, ts))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}
