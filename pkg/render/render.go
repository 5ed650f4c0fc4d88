// Package render renders markdown note templates with validated data. A
// template's variable requirements are extracted from its parse tree and
// checked against the supplied data before execution: missing variables are
// fatal, extra keys only warn.
package render

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"
	"text/template/parse"

	"github.com/agentstation/wayfindex/internal/embedded"
	"github.com/agentstation/wayfindex/pkg/errors"
	"github.com/agentstation/wayfindex/pkg/logging"
)

// DefaultTemplate is the built-in note template used when none is given.
const DefaultTemplate = "place_note.md"

// Renderer loads templates from an optional on-disk directory, falling back
// to the embedded defaults.
type Renderer struct {
	dir string
}

// New creates a renderer. dir may be empty to use only embedded templates.
func New(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// source returns the template text for name.
func (r *Renderer) source(name string) (string, error) {
	if r.dir != "" {
		path := filepath.Join(r.dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", errors.WrapIO("read", path, err)
		}
	}
	return embedded.Template(name)
}

func parseTemplate(name, src string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, &errors.RenderError{Template: name, Err: err}
	}
	return tmpl, nil
}

// Variables returns the sorted set of top-level variable names the template
// references.
func (r *Renderer) Variables(name string) ([]string, error) {
	src, err := r.source(name)
	if err != nil {
		return nil, err
	}
	tmpl, err := parseTemplate(name, src)
	if err != nil {
		return nil, err
	}

	vars := make(map[string]struct{})
	collectNode(tmpl.Tree.Root, false, vars)

	names := make([]string, 0, len(vars))
	for v := range vars {
		names = append(names, v)
	}
	sort.Strings(names)
	return names, nil
}

// collectNode walks the parse tree gathering top-level field references.
// Inside range and with bodies the dot is rebound to the element, so field
// references there are not top-level variables.
func collectNode(node parse.Node, rebound bool, vars map[string]struct{}) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, item := range n.Nodes {
			collectNode(item, rebound, vars)
		}
	case *parse.ActionNode:
		collectPipe(n.Pipe, rebound, vars)
	case *parse.IfNode:
		collectPipe(n.Pipe, rebound, vars)
		collectNode(n.List, rebound, vars)
		collectNode(n.ElseList, rebound, vars)
	case *parse.RangeNode:
		collectPipe(n.Pipe, rebound, vars)
		collectNode(n.List, true, vars)
		collectNode(n.ElseList, rebound, vars)
	case *parse.WithNode:
		collectPipe(n.Pipe, rebound, vars)
		collectNode(n.List, true, vars)
		collectNode(n.ElseList, rebound, vars)
	case *parse.TemplateNode:
		collectPipe(n.Pipe, rebound, vars)
	}
}

func collectPipe(pipe *parse.PipeNode, rebound bool, vars map[string]struct{}) {
	if pipe == nil {
		return
	}
	for _, cmd := range pipe.Cmds {
		for _, arg := range cmd.Args {
			switch a := arg.(type) {
			case *parse.FieldNode:
				if !rebound && len(a.Ident) > 0 {
					vars[a.Ident[0]] = struct{}{}
				}
			case *parse.PipeNode:
				collectPipe(a, rebound, vars)
			}
		}
	}
}

// Validation is the result of checking data against a template's variables.
type Validation struct {
	Missing []string
	Extra   []string
}

// Validate compares the supplied data keys against the template's variables.
func (r *Renderer) Validate(name string, data map[string]any) (Validation, error) {
	vars, err := r.Variables(name)
	if err != nil {
		return Validation{}, err
	}

	required := make(map[string]struct{}, len(vars))
	var v Validation
	for _, name := range vars {
		required[name] = struct{}{}
		if _, ok := data[name]; !ok {
			v.Missing = append(v.Missing, name)
		}
	}
	for key := range data {
		if _, ok := required[key]; !ok {
			v.Extra = append(v.Extra, key)
		}
	}
	sort.Strings(v.Missing)
	sort.Strings(v.Extra)
	return v, nil
}

// Render validates data against the template and executes it. Missing
// variables fail before execution; extra keys log a warning and rendering
// proceeds. On failure no partial output is returned.
func (r *Renderer) Render(name string, data map[string]any) (string, error) {
	validation, err := r.Validate(name, data)
	if err != nil {
		return "", err
	}
	if len(validation.Missing) > 0 {
		return "", &errors.RenderError{Template: name, Missing: validation.Missing}
	}
	if len(validation.Extra) > 0 {
		logging.Warn().
			Str("template", name).
			Strs("keys", validation.Extra).
			Msg("data keys not used by template")
	}

	src, err := r.source(name)
	if err != nil {
		return "", err
	}
	tmpl, err := parseTemplate(name, src)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", &errors.RenderError{Template: name, Err: err}
	}
	return buf.String(), nil
}
