package ui

import (
	"fmt"
	"io"
)

// Printer writes status messages in the given format
type Printer struct {
	out    io.Writer
	format Format
}

// NewPrinter creates a Printer. format must not be FormatAuto.
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format}
}

// Format returns the printer's output format
func (p *Printer) Format() Format {
	return p.format
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Info prints a regular status line
func (p *Printer) Info(format string, args ...interface{}) {
	p.print(InfoStyle.Render, fmt.Sprintf(format, args...))
}

// Muted prints a de-emphasized line, used for verbose output
func (p *Printer) Muted(format string, args ...interface{}) {
	p.print(MutedStyle.Render, fmt.Sprintf(format, args...))
}

// Warning prints a warning line
func (p *Printer) Warning(format string, args ...interface{}) {
	p.print(WarningStyle.Render, "Warning: "+fmt.Sprintf(format, args...))
}

// Error prints an error line
func (p *Printer) Error(format string, args ...interface{}) {
	p.print(ErrorStyle.Render, "Error: "+fmt.Sprintf(format, args...))
}

// Plain prints msg without styling
func (p *Printer) Plain(msg string) {
	_, _ = fmt.Fprintln(p.out, msg)
}

func (p *Printer) print(render func(...string) string, msg string) {
	if p.format == FormatTerminal {
		msg = render(msg)
	}
	_, _ = fmt.Fprintln(p.out, msg)
}
