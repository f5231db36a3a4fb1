package hu

import (
	"embed"
	"io/fs"
	"os"

	"github.com/npgrosser/houston/pkg/cobrax/topics"
	"github.com/npgrosser/houston/pkg/logging"
	"github.com/npgrosser/houston/pkg/ui"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// installTopics adds "hu help <topic>" for the embedded help topics.
// Markdown is rendered with glamour when stdout is a terminal.
func installTopics(root *cobra.Command, d *deps) {
	logger := logging.GetLogger("cmd.help")

	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		logger.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	renderer := topics.RendererFunc(func(content, ext string) string {
		if ext != ".md" || d.outputFormat(os.Stdout) != ui.FormatTerminal {
			return content
		}
		rendered, err := ui.NewMarkdownRenderer().Render(content)
		if err != nil {
			return content
		}
		return rendered
	})

	m, err := topics.New(sub, topics.Options{Extensions: []string{".md"}, Renderer: renderer})
	if err != nil {
		logger.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m.Install(root)
}
