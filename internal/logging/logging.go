package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the log destination and format.
type Options struct {
	Level  string // trace, debug, info, warn, error
	Format string // console or json
	// File, if set, receives the log instead of stdout.
	File string
	// Out overrides the destination. It takes precedence over File.
	Out io.Writer
}

// ParseLevel maps a level name to a zerolog level. Unknown names are info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(s) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger. The returned close function releases the log file, if any.
func New(opts Options) (zerolog.Logger, func() error, error) {
	out := opts.Out
	closeFn := func() error { return nil }
	if out == nil {
		out = os.Stdout
		if opts.File != "" {
			f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return zerolog.Nop(), closeFn, fmt.Errorf("open log file: %w", err)
			}
			out = f
			closeFn = f.Close
		}
	}

	if opts.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    opts.File != "" || opts.Out != nil,
		}
	}

	log := zerolog.New(out).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
	return log, closeFn, nil
}

// Lines adapts a zerolog logger to line-oriented writers such as hal.Logger.
// Each line becomes one info event tagged with the component name.
type Lines struct {
	log zerolog.Logger
}

func NewLines(log zerolog.Logger, component string) *Lines {
	return &Lines{log: log.With().Str("component", component).Logger()}
}

func (l *Lines) WriteLineString(s string) {
	l.log.Info().Msg(strings.TrimRight(s, "\r\n"))
}

func (l *Lines) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
