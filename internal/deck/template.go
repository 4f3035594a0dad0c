// Package deck loads input-deck templates and renders them by placeholder
// substitution. Placeholders are written $NAME or ${NAME}; $$ escapes a
// literal dollar sign. Substitution is purely textual, order-independent,
// and placeholders do not nest, which keeps the deck format an opaque
// collaborator: the renderer knows nothing about the solver syntax around
// the placeholders.
package deck

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

var (
	// ErrTemplateNotFound is returned by Load when the template file does
	// not exist on disk.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingParameter is returned by Render when the template references
	// a placeholder with no synthesized value. The error names the first
	// unresolved placeholder.
	ErrMissingParameter = errors.New("missing template parameter")
)

// placeholderPattern matches the $$ escape, ${NAME}, and $NAME in one pass.
var placeholderPattern = regexp.MustCompile(`\$(?:\$|\{[A-Za-z_][A-Za-z0-9_]*\}|[A-Za-z_][A-Za-z0-9_]*)`)

// Load reads a template document from disk.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

// Render substitutes every placeholder referenced by template with its value
// from params. Every referenced placeholder must have an entry; mapping
// entries the template never references are silently ignored. Rendering the
// same inputs twice yields byte-identical output.
func Render(template string, params map[string]string) (string, error) {
	var missing string
	out := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		if m == "$$" {
			return "$"
		}
		name := trimPlaceholder(m)
		v, ok := params[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		return v
	})
	if missing != "" {
		return "", fmt.Errorf("%w: %s", ErrMissingParameter, missing)
	}
	return out, nil
}

// Placeholders returns the distinct placeholder names referenced by
// template, in first-appearance order. The $$ escape is not a placeholder.
func Placeholders(template string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderPattern.FindAllString(template, -1) {
		if m == "$$" {
			continue
		}
		name := trimPlaceholder(m)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func trimPlaceholder(m string) string {
	name := strings.TrimPrefix(m, "$")
	if strings.HasPrefix(name, "{") {
		name = name[1 : len(name)-1]
	}
	return name
}
