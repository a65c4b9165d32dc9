// Package render turns unit templates and a variable context into concrete
// configuration artifacts.
//
// Templates are Go text templates with the full sprig function map, one
// file per template id under the templates directory. Rendering is strict:
// every placeholder a template references must be present in the supplied
// context, and unresolved placeholders fail with their names rather than
// expanding to empty text. Rendering is pure; the same template and context
// always produce the same artifact.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/Masterminds/sprig/v3"

	"github.com/cameronsjo/stevedore/internal/vars"
)

// Ext is the file extension for template files.
const Ext = ".tmpl"

// Artifact is the rendered configuration text for one managed unit.
type Artifact struct {
	// TemplateID identifies the template the artifact was rendered from.
	TemplateID string

	// Text is the exact content that will be applied.
	Text []byte
}

// NotFoundError indicates a template id with no backing file.
type NotFoundError struct {
	TemplateID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.TemplateID)
}

// UnresolvedError indicates placeholders absent from the supplied context.
type UnresolvedError struct {
	TemplateID   string
	Placeholders []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("template %s: unresolved placeholders: %s",
		e.TemplateID, strings.Join(e.Placeholders, ", "))
}

// Renderer loads templates from a directory and renders them.
type Renderer struct {
	dir string
}

// New creates a Renderer for the given templates directory.
func New(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Path returns the file path backing a template id.
func (r *Renderer) Path(templateID string) string {
	return filepath.Join(r.dir, templateID+Ext)
}

// Templates lists the template ids available in the directory.
func (r *Renderer) Templates() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read templates directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(ids)
	return ids, nil
}

// Render produces the artifact for a template id and context.
// Fails with NotFoundError if the template file does not exist and with
// UnresolvedError if the template references variables the context lacks.
func (r *Renderer) Render(templateID string, ctx *vars.Context) (*Artifact, error) {
	content, err := os.ReadFile(r.Path(templateID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{TemplateID: templateID}
		}
		return nil, fmt.Errorf("read template %s: %w", templateID, err)
	}

	tmpl, err := template.New(templateID).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", templateID, err)
	}

	if err := checkPlaceholders(templateID, tmpl, ctx); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx.Map()); err != nil {
		return nil, fmt.Errorf("render template %s: %w", templateID, err)
	}

	return &Artifact{TemplateID: templateID, Text: buf.Bytes()}, nil
}

// checkPlaceholders walks the parse tree and verifies every top-level
// field reference resolves in the context, so missing variables fail with
// their names instead of a mid-execution error.
func checkPlaceholders(templateID string, tmpl *template.Template, ctx *vars.Context) error {
	refs := make(map[string]bool)
	if tmpl.Tree != nil {
		collectNode(tmpl.Tree.Root, refs)
	}

	var missing []string
	for name := range refs {
		if !ctx.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &UnresolvedError{TemplateID: templateID, Placeholders: missing}
	}
	return nil
}

// collectNode gathers root-context field references from a template node.
// Bodies of range and with blocks are skipped: dot is rebound there and
// their fields do not address the root context.
func collectNode(node parse.Node, refs map[string]bool) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, item := range n.Nodes {
			collectNode(item, refs)
		}
	case *parse.ActionNode:
		collectPipe(n.Pipe, refs)
	case *parse.IfNode:
		collectPipe(n.Pipe, refs)
		collectNode(n.List, refs)
		if n.ElseList != nil {
			collectNode(n.ElseList, refs)
		}
	case *parse.RangeNode:
		collectPipe(n.Pipe, refs)
	case *parse.WithNode:
		collectPipe(n.Pipe, refs)
	case *parse.TemplateNode:
		collectPipe(n.Pipe, refs)
	}
}

// collectPipe gathers field references from a pipeline.
func collectPipe(pipe *parse.PipeNode, refs map[string]bool) {
	if pipe == nil {
		return
	}
	for _, cmd := range pipe.Cmds {
		for _, arg := range cmd.Args {
			switch a := arg.(type) {
			case *parse.FieldNode:
				if len(a.Ident) > 0 {
					refs[a.Ident[0]] = true
				}
			case *parse.PipeNode:
				collectPipe(a, refs)
			case *parse.ChainNode:
				if inner, ok := a.Node.(*parse.PipeNode); ok {
					collectPipe(inner, refs)
				}
			}
		}
	}
}
