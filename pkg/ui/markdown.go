package ui

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for terminal display with glamour
type MarkdownRenderer struct {
	Style string // style name ("dark", "light", "notty") or path; "" or "auto" detects
	Width int    // word wrap width, 0 leaves glamour's default
}

// NewMarkdownRenderer returns a renderer with automatic style detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts md to styled terminal output
func (r *MarkdownRenderer) Render(md string) (string, error) {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
