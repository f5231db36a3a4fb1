package template

import (
	"fmt"

	"github.com/npgrosser/houston/pkg/errors"
)

// ErrorKind classifies evaluation failures
type ErrorKind int

const (
	// SyntaxError means the template contains a malformed marker
	SyntaxError ErrorKind = iota + 1
	// IoError means a command could not be staged, started or read
	IoError
)

// String returns the string representation of the kind
func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case IoError:
		return "io error"
	default:
		return "unknown error"
	}
}

// EvalError is returned by Evaluate
type EvalError struct {
	Kind ErrorKind
	Err  *errors.HoustonError
}

// Error implements the error interface
func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the coded error
func (e *EvalError) Unwrap() error {
	return e.Err
}

func newSyntaxError(tmpl string, offset int) *EvalError {
	line, col := position(tmpl, offset)
	err := errors.Newf(errors.ErrTemplateSyntax,
		"missing closing curly bracket for marker at line %d, column %d", line, col).
		WithDetail("offset", offset)
	return &EvalError{Kind: SyntaxError, Err: err}
}

func newIoError(err error, command string) *EvalError {
	return &EvalError{
		Kind: IoError,
		Err: errors.Wrap(err, errors.ErrScriptIO, "failed to run template command").
			WithDetail("command", command),
	}
}

// position converts a byte offset into a 1-based line and column
func position(text string, offset int) (int, int) {
	line, col := 1, 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
