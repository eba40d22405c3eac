// Package prompt provides a small template registry for the advice
// assembler. Templates are registered in code at construction time and
// rendered with text/template, so prompts stay versioned alongside the
// logic that consumes them.
package prompt

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"
)

// Template is one reusable prompt.
type Template struct {
	ID       string // unique identifier, e.g. "advice.savings"
	Category string // grouping, e.g. "advice"
	Text     string // text/template body
}

// Registry holds parsed templates. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*template.Template
	meta      map[string]*Template
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]*template.Template),
		meta:      make(map[string]*Template),
	}
}

// Register parses and adds a template. Re-registering an ID replaces it.
func (r *Registry) Register(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("template ID cannot be empty")
	}
	parsed, err := template.New(t.ID).Parse(t.Text)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", t.ID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[t.ID] = parsed
	r.meta[t.ID] = t
	return nil
}

// Render executes the template against data.
func (r *Registry) Render(id string, data interface{}) (string, error) {
	r.mu.RLock()
	parsed, ok := r.templates[id]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("template not found: %s", id)
	}

	var buf bytes.Buffer
	if err := parsed.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", id, err)
	}
	return buf.String(), nil
}

// ListByCategory returns the IDs registered under a category.
func (r *Registry) ListByCategory(category string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, t := range r.meta {
		if t.Category == category {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of registered templates.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}
