package template

import (
	"strings"

	"github.com/npgrosser/houston/pkg/logging"
	"github.com/npgrosser/houston/pkg/runner"
	"github.com/rs/zerolog"
)

// OpenSequence starts a command marker
const OpenSequence = "${"

const (
	openBrace  = '{'
	closeBrace = '}'
)

// Evaluator substitutes command markers using a ScriptRunner
type Evaluator struct {
	runner runner.ScriptRunner
	logger zerolog.Logger
}

// New creates an Evaluator that runs commands with r
func New(r runner.ScriptRunner) *Evaluator {
	return &Evaluator{
		runner: r,
		logger: logging.GetLogger("template"),
	}
}

// Evaluate runs the commands of a template through shell and returns the
// substituted text
func Evaluate(shell, tmpl string, args []string) (string, error) {
	return New(runner.NewShellRunner(shell)).Evaluate(tmpl, args)
}

// Evaluate replaces every marker in tmpl with the output of its command.
// args are passed to every command. Errors are of type *EvalError.
func (e *Evaluator) Evaluate(tmpl string, args []string) (string, error) {
	done := logging.LogOperationStart(e.logger, "evaluate template")
	defer done()

	var out strings.Builder
	out.Grow(len(tmpl))

	rest := tmpl
	consumed := 0
	for {
		start := strings.Index(rest, OpenSequence)
		if start < 0 {
			out.WriteString(rest)
			return out.String(), nil
		}

		end := FindClosingBracket(rest, start, openBrace, closeBrace)
		if end < 0 {
			return "", newSyntaxError(tmpl, consumed+start)
		}

		command := rest[start+len(OpenSequence) : end]
		e.logger.Debug().Int("offset", consumed+start).Msg("Evaluating marker")
		e.logger.Trace().Str("command", command).Strs("args", args).Msg("Marker command")

		output, err := e.runner.RunScriptAndCapture(command, args)
		if err != nil {
			return "", newIoError(err, command)
		}

		out.WriteString(rest[:start])
		out.WriteString(trimOutput(output))

		consumed += end + 1
		rest = rest[end+1:]
	}
}

// FindClosingBracket returns the index of the closing bracket that balances
// the first opening bracket at or after openIndex, or -1 when the brackets
// never balance.
func FindClosingBracket(text string, openIndex int, opening, closing byte) int {
	if openIndex < 0 || openIndex >= len(text) {
		return -1
	}

	depth := 0
	for i := openIndex; i < len(text); i++ {
		switch text[i] {
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// trimOutput removes trailing line breaks from captured command output
func trimOutput(output string) string {
	return strings.TrimRight(output, "\r\n")
}
