// Package categories manages the persisted list of place categories used to
// constrain agent responses. The list lives in a small JSON document and is
// created with defaults on first use.
package categories

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/agentstation/wayfindex/pkg/errors"
)

// DefaultPath is the category file used when none is given.
const DefaultPath = "categories.json"

// Defaults returns the default category list written on first use.
func Defaults() []string {
	return []string{
		"restaurant",
		"cafe",
		"bar",
		"museum",
		"park",
		"shopping",
		"attraction",
		"entertainment",
		"hotel",
		"services",
	}
}

// PathNear returns the default category file path in the same directory as
// the given configuration file.
func PathNear(configPath string) string {
	dir := filepath.Dir(configPath)
	if dir == "" || dir == "." {
		return DefaultPath
	}
	return filepath.Join(dir, DefaultPath)
}

// document is the on-disk shape of the category file.
type document struct {
	Categories []string `json:"categories"`
}

// Load reads the category list from path. A missing file is created with the
// default list, which is then returned.
func Load(path string) ([]string, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := Defaults()
			if err := Save(path, defaults); err != nil {
				return nil, err
			}
			return defaults, nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	return doc.Categories, nil
}

// Save writes the category list to path as pretty-printed JSON, preserving
// order. The parent directory is created if absent.
func Save(path string, categories []string) error {
	if path == "" {
		path = DefaultPath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	data, err := json.MarshalIndent(document{Categories: categories}, "", "  ")
	if err != nil {
		return errors.WrapParse("json", path, err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Contains reports whether name appears in the category list.
func Contains(categories []string, name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}
