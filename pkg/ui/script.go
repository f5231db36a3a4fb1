package ui

import (
	"path/filepath"
	"strings"
)

// RuleWidth is the width of the lines framing a script
const RuleWidth = 80

// ScriptRenderer formats generated scripts for display
type ScriptRenderer struct {
	Format Format
	Style  string // glamour style name or path; "" or "auto" detects
	Width  int    // word wrap width, 0 leaves glamour's default
}

// NewScriptRenderer returns a renderer for format
func NewScriptRenderer(format Format) *ScriptRenderer {
	return &ScriptRenderer{Format: format, Style: "auto"}
}

// Render frames script between two rules. Terminal output renders the
// script as a highlighted markdown code block for shell and falls back
// to plain colored text when markdown rendering fails.
func (r *ScriptRenderer) Render(script, shell string) string {
	rule := strings.Repeat("=", RuleWidth)

	if r.Format != FormatTerminal {
		return rule + "\n" + script + "\n" + rule + "\n"
	}

	body, err := r.renderMarkdown(script, shell)
	if err != nil {
		body = ScriptStyle.Render(script) + "\n"
	}
	return RuleStyle.Render(rule) + "\n" + body + RuleStyle.Render(rule) + "\n"
}

func (r *ScriptRenderer) renderMarkdown(script, shell string) (string, error) {
	md := &MarkdownRenderer{Style: r.Style, Width: r.Width}
	rendered, err := md.Render("```" + CodeLanguage(shell) + "\n" + script + "\n```\n")
	if err != nil {
		return "", err
	}
	return strings.Trim(rendered, "\n") + "\n", nil
}

// CodeLanguage maps a shell to a markdown code block language
func CodeLanguage(shell string) string {
	name := strings.ToLower(filepath.Base(shell))
	name = strings.TrimSuffix(name, ".exe")
	switch {
	case strings.Contains(name, "powershell"), name == "pwsh":
		return "powershell"
	case name == "fish":
		return "fish"
	case name == "cmd":
		return "batch"
	default:
		return "bash"
	}
}
