package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/npgrosser/houston/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options control Setup
type Options struct {
	// Verbosity is the -v count: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int
	// Console receives human readable output, os.Stderr when nil
	Console io.Writer
	// LogFile is appended to as JSON lines; empty disables the file
	LogFile string
}

// Level returns the log level for a verbosity count
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	}
	return zerolog.TraceLevel
}

// Setup replaces the global logger. When the log file cannot be opened
// the logger still writes to the console and the error is returned.
func Setup(opts Options) error {
	zerolog.SetGlobalLevel(Level(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !colorable(console),
	}}

	var fileErr error
	if opts.LogFile != "" {
		f, err := openLogFile(opts.LogFile)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	return fileErr
}

// SetupLogger configures the global logger for the CLI: console output
// on stderr plus the houston log file in the state directory.
func SetupLogger(verbosity int) {
	opts := Options{Verbosity: verbosity}
	if p, err := paths.New(); err == nil {
		opts.LogFile = p.LogFilePath()
	}

	if err := Setup(opts); err != nil {
		log.Warn().Err(err).Str("path", opts.LogFile).Msg("Log file unavailable, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("log_file", opts.LogFile).Msg("Logger initialized")
}

// GetLogger returns a logger tagged with the component name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// LogCommand records a process about to be spawned
func LogCommand(logger zerolog.Logger, shell string, args []string) {
	logger.Debug().
		Str("shell", shell).
		Strs("args", args).
		Msg("Spawning process")
}

// LogOperationStart logs op at debug level and returns a func that logs
// its duration
func LogOperationStart(logger zerolog.Logger, op string) func() {
	start := time.Now()
	logger.Debug().Str("op", op).Msg("Started")

	return func() {
		logger.Debug().
			Str("op", op).
			Dur("took", time.Since(start)).
			Msg("Finished")
	}
}
