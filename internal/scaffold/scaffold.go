// Package scaffold renders a blank API project skeleton: a runnable gin
// service with root and health endpoints, an example model, and a passing
// test, ready for go mod tidy.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Options struct {
	// Name is the project directory name. Defaults to "my-api".
	Name string
	// Module is the generated module path. Defaults to Name.
	Module string
	// Output is the parent directory. Defaults to the current directory.
	Output string
	// Force overwrites an existing project directory.
	Force bool
}

// outputs maps embedded templates to their path inside the generated project.
var outputs = []struct{ src, dst string }{
	{"gomod.tmpl", "go.mod"},
	{"main.go.tmpl", "cmd/api/main.go"},
	{"main_test.go.tmpl", "cmd/api/main_test.go"},
	{"model.go.tmpl", "internal/model/model.go"},
	{"readme.md.tmpl", "README.md"},
	{"gitignore.tmpl", ".gitignore"},
}

type templateData struct {
	Module string
	Title  string
}

// Generate writes the project tree and returns the created directory.
func Generate(opts Options) (string, error) {
	if opts.Name == "" {
		opts.Name = "my-api"
	}
	if opts.Module == "" {
		opts.Module = opts.Name
	}
	if opts.Output == "" {
		opts.Output = "."
	}

	target := filepath.Join(opts.Output, opts.Name)
	if _, err := os.Stat(target); err == nil && !opts.Force {
		return "", fmt.Errorf("directory already exists: %s (use --force to overwrite)", target)
	}

	data := templateData{Module: opts.Module, Title: titleFromName(opts.Name)}

	for _, out := range outputs {
		raw, err := templateFS.ReadFile("templates/" + out.src)
		if err != nil {
			return "", fmt.Errorf("read template %s: %w", out.src, err)
		}

		tmpl, err := template.New(out.src).Parse(string(raw))
		if err != nil {
			return "", fmt.Errorf("parse template %s: %w", out.src, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("render %s: %w", out.src, err)
		}

		dst := filepath.Join(target, out.dst)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
			return "", fmt.Errorf("write %s: %w", dst, err)
		}
	}

	return target, nil
}

// titleFromName turns "my-api" into "My Api" for generated banners.
func titleFromName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
