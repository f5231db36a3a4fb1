package hu

import (
	"io"
	"os"

	"github.com/npgrosser/houston/pkg/config"
	"github.com/npgrosser/houston/pkg/generator"
	"github.com/npgrosser/houston/pkg/runner"
	"github.com/npgrosser/houston/pkg/ui"
)

// deps holds the collaborators commands are built from
type deps struct {
	newGenerator func(cfg config.OpenAIConfig) generator.Generator
	newRunner    func(opts runner.Options) runner.ScriptRunner
	format       ui.Format
}

func defaultDeps() *deps {
	return &deps{
		newGenerator: func(cfg config.OpenAIConfig) generator.Generator {
			return generator.NewOpenAIGenerator(cfg)
		},
		newRunner: func(opts runner.Options) runner.ScriptRunner {
			return runner.New(opts)
		},
		format: ui.FormatAuto,
	}
}

// outputFormat resolves the format for out
func (d *deps) outputFormat(out io.Writer) ui.Format {
	f, _ := out.(*os.File)
	return d.format.Resolve(f)
}
