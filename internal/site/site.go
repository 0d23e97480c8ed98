package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultTemplatePath = "src/template.html"
	DefaultOutputPath   = "public/index.html"

	ContentMarker   = "{{CONTENT}}"
	UpdatedAtMarker = "{{UPDATED_AT}}"

	// UpdatedAtLayout follows the Finnish day.month.year style of the listing
	UpdatedAtLayout = "2.1.2006 15:04:05"
)

// Publisher reads the page template and writes the finished page
type Publisher struct {
	templatePath string
	outputPath   string
}

// New creates a Publisher. Empty paths select the defaults.
func New(templatePath, outputPath string) *Publisher {
	if templatePath == "" {
		templatePath = DefaultTemplatePath
	}
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}
	return &Publisher{
		templatePath: templatePath,
		outputPath:   outputPath,
	}
}

// OutputPath returns the file the page is written to
func (p *Publisher) OutputPath() string {
	return p.outputPath
}

// Publish fills the template with content and the update time and writes the page
func (p *Publisher) Publish(content string, updatedAt time.Time) error {
	tmpl, err := ReadTemplate(p.templatePath)
	if err != nil {
		return err
	}
	return WritePage(p.outputPath, Apply(tmpl, content, updatedAt))
}

// ReadTemplate loads the page template
func ReadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	return string(data), nil
}

// Apply replaces the first {{UPDATED_AT}} and the first {{CONTENT}} marker of tmpl.
// The timestamp goes in first so markers inside content are left alone.
func Apply(tmpl, content string, updatedAt time.Time) string {
	page := strings.Replace(tmpl, UpdatedAtMarker, updatedAt.Format(UpdatedAtLayout), 1)
	return strings.Replace(page, ContentMarker, content, 1)
}

// WritePage writes page to path, creating the parent directory if it doesn't exist
func WritePage(path, page string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	return nil
}
