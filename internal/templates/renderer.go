package templates

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var templateCache sync.Map

// Renderer substitutes request data into template bodies and destination
// paths. Rendering is pure: the same data always produces the same bytes.
type Renderer struct {
	data Data
}

// NewRenderer creates a renderer for the given template data.
func NewRenderer(data Data) *Renderer {
	return &Renderer{data: data}
}

// RenderAll renders every template for the language variant, in registry
// order, returning the (relative path, content) pairs to emit.
func (r *Renderer) RenderAll(lang Language) ([]File, error) {
	entries := EntriesFor(lang)
	files := make([]File, 0, len(entries))

	for _, entry := range entries {
		path, err := r.RenderString(entry.Target)
		if err != nil {
			return nil, fmt.Errorf("rendering path for %s: %w", entry.Source, err)
		}

		content, err := templateFS.ReadFile(entry.Source)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Source, err)
		}

		rendered, err := r.render(entry.Source, string(content))
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", entry.Source, err)
		}

		files = append(files, File{
			Path:        path,
			Content:     rendered,
			Description: entry.Description,
		})
	}

	return files, nil
}

// RenderString renders an inline template string (used for destination paths).
func (r *Renderer) RenderString(content string) (string, error) {
	rendered, err := r.render(content, content)
	if err != nil {
		return "", err
	}
	return string(rendered), nil
}

// render executes a cached template by name against the renderer's data.
// Missing placeholders are a defect, so execution runs with missingkey=error.
func (r *Renderer) render(name, content string) ([]byte, error) {
	tmpl, err := loadTemplate(name, content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func loadTemplate(name, content string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
