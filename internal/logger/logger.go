package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"ravodash/hal"
)

var (
	log  = zerolog.Nop()
	file *lumberjack.Logger
)

// Options configures Init.
type Options struct {
	Debug   bool
	Verbose bool
	// File switches to JSON lines in a size-rotated file.
	File string
	// Out is the console destination; stdout when nil.
	Out     io.Writer
	NoColor bool
}

// Init initializes the logger based on the given configuration. The level
// is warn unless Verbose (info) or Debug (debug) is set.
func Init(opts Options) {
	if file != nil {
		file.Close()
		file = nil
	}

	var w io.Writer
	if opts.File != "" {
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w = file
	} else {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: opts.NoColor}
	}

	level := zerolog.WarnLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	} else if opts.Verbose {
		level = zerolog.InfoLevel
	}
	log = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Close flushes and closes the log file, if any.
func Close() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	log = zerolog.Nop()
	return err
}

// Get returns the current logger for components that want their own
// sub-logger.
func Get() zerolog.Logger { return log }

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }

// HALWriter routes hal.Logger lines into the log at info level.
func HALWriter() hal.Logger { return halWriter{} }

type halWriter struct{}

func (halWriter) WriteLineString(s string) {
	log.Info().Str("src", "hal").Msg(strings.TrimRight(s, "\n"))
}

func (halWriter) WriteLineBytes(b []byte) { halWriter{}.WriteLineString(string(b)) }
