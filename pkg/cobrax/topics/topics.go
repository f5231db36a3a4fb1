// Package topics adds file-backed help topics to a cobra command tree.
//
// Topics are read from an fs.FS (usually an embed.FS), so "hu help templates"
// prints templates.md. Topics named "option-<flag>" are also reachable as
// "help --<flag>".
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

const optionPrefix = "option-"

// Topic is a single help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Ext returns the topic file extension
func (t *Topic) Ext() string {
	return path.Ext(t.Path)
}

// Options configures a Manager
type Options struct {
	// Extensions considered as topics, [".txt", ".md"] when empty
	Extensions []string
	// Renderer formats topic content, PlainRenderer when nil
	Renderer Renderer
}

// Manager holds the help topics of an application
type Manager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// New loads every topic file in fsys
func New(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	if err := m.scan(fsys); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func (m *Manager) scan(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !m.supported(path.Ext(p)) {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Get returns the topic called name. Flag-style names ("--dry") resolve
// to "option-dry".
func (m *Manager) Get(name string) (*Topic, bool) {
	if flag := strings.TrimLeft(name, "-"); flag != name {
		topic, ok := m.topics[optionPrefix+flag]
		return topic, ok
	}
	topic, ok := m.topics[name]
	return topic, ok
}

// Names returns all topic names, sorted
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the rendered content of topic
func (m *Manager) Render(topic *Topic) string {
	return m.renderer.Render(topic.Content, topic.Ext())
}

// Install replaces the help command of root with one that also knows
// about topics. Arguments that are not topics fall back to cobra's help.
func (m *Manager) Install(root *cobra.Command) {
	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: "Help provides help for any command or topic in the application.\n" +
			"Simply type " + root.Name() + " help [path to command or topic] for full details.\n\n" +
			"To see all available help topics:\n  " + root.Name() + " help topics",
		DisableFlagParsing: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				originalHelp(root, args)
				return
			}
			if args[0] == "topics" {
				m.printList(cmd, root.Name())
				return
			}
			if topic, ok := m.Get(args[0]); ok {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), m.Render(topic))
				return
			}

			target, _, err := root.Find(args)
			if err != nil || target == nil {
				originalHelp(root, args)
				return
			}
			originalHelp(target, args)
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)
}

func (m *Manager) printList(cmd *cobra.Command, app string) {
	out := cmd.OutOrStdout()
	names := m.Names()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(out, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(out, "Available help topics:")
	if len(general) > 0 {
		_, _ = fmt.Fprintln(out, "\nGeneral topics:")
		for _, name := range general {
			_, _ = fmt.Fprintf(out, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		_, _ = fmt.Fprintln(out, "\nOption topics:")
		for _, name := range options {
			_, _ = fmt.Fprintf(out, "  --%s\n", name)
		}
	}
	_, _ = fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}
