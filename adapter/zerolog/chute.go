// Package zerologchute binds the engine's logging contract to rs/zerolog.
// It either latches onto a logger the embedding application already manages
// (selected by name through the registry) or stands up a simple rolling file
// log of its own.
package zerologchute

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	logchute "github.com/adityavs/velocity-engine"
	"github.com/adityavs/velocity-engine/internal/rollfile"
)

const (
	// LoggerNameKey selects an existing registry logger to bind to. When
	// set, the chute never creates a file destination of its own.
	LoggerNameKey = "runtime.log.logsystem.zerolog.logger"

	// TraceCompatKey set to "false" marks the backend build as lacking the
	// trace level; trace output is then downgraded to debug.
	TraceCompatKey = "runtime.log.logsystem.zerolog.trace"

	// DefaultLoggerName is the registry name the chute binds when no
	// override is configured, chosen to avoid colliding with loggers the
	// application owns.
	DefaultLoggerName = "velocity.zerologchute"
)

const (
	maxFileBytes = 100000
	maxBackups   = 1

	// log4j-style "%d" timestamp
	timestampLayout = "2006-01-02 15:04:05,000"
)

// Chute implements logchute.Chute on top of zerolog.
//
// A single goroutine owns Init and Shutdown; concurrent Log calls are safe
// because zerolog and the rolling writer are.
type Chute struct {
	rs       logchute.RuntimeServices
	l        zerolog.Logger
	name     string
	file     *rollfile.Writer
	hasTrace bool
}

// New returns an unbound chute. Logging through it before Init is a silent
// no-op, never a panic.
func New() *Chute {
	return &Chute{l: zerolog.Nop()}
}

func (c *Chute) Init(rs logchute.RuntimeServices) error {
	c.rs = rs

	if name := rs.Property(LoggerNameKey); name != "" {
		// the application routes engine output into a logger it manages
		c.name = name
		c.l = Get(name)
		c.Log(logchute.LevelDebug, fmt.Sprintf("zerolog chute using logger %q", name))
	} else {
		c.name = DefaultLoggerName
		c.l = Get(c.name)
		if path := strings.TrimSpace(rs.Property(logchute.RuntimeLogKey)); path != "" {
			if err := c.initFile(path); err != nil {
				return err
			}
		}
	}

	c.hasTrace = traceSupported() && rs.Property(TraceCompatKey) != "false"
	if !c.hasTrace {
		c.Log(logchute.LevelDebug, "the backend build in use does not support the trace level")
	}
	return nil
}

// traceSupported asks the backend whether it knows the trace level at all.
func traceSupported() bool {
	_, err := zerolog.ParseLevel(zerolog.LevelTraceValue)
	return err == nil
}

// initFile creates the dedicated rolling file destination and rebinds the
// logger to write there exclusively.
func (c *Chute) initFile(path string) error {
	w, err := rollfile.Open(path, rollfile.Options{MaxBytes: maxFileBytes, Backups: maxBackups})
	if err != nil {
		if sys := c.rs.Log(); sys != nil {
			sys.LogErr(logchute.LevelWarn, fmt.Sprintf("could not create rolling log file %q", path), err)
		}
		return &logchute.ConfigurationError{Path: path, Err: err}
	}
	c.file = w

	// "<timestamp> - <message>" lines, nothing else
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.TimestampFieldName, zerolog.MessageFieldName},
		FormatTimestamp: func(i interface{}) string {
			return fmt.Sprintf("%v -", i)
		},
	}

	// records bound here must not also reach the registry's shared writer,
	// and trace stays excluded from the file even when supported
	c.l = zerolog.New(cw).Level(zerolog.DebugLevel)
	Register(c.name, c.l)

	c.Log(logchute.LevelDebug, fmt.Sprintf("zerolog chute initialized using file %q", path))
	return nil
}

// Log emits msg at level. It never fails; logging problems must not
// interrupt the caller's rendering work.
func (c *Chute) Log(level logchute.Level, msg string) {
	c.emit(level, msg, nil)
}

// LogErr emits msg at level together with the causing error.
func (c *Chute) LogErr(level logchute.Level, msg string, cause error) {
	c.emit(level, msg, cause)
}

func (c *Chute) emit(level logchute.Level, msg string, cause error) {
	zl := c.mapLevel(level)

	// drop early if below the backend's threshold, no event allocation
	if zl < c.l.GetLevel() {
		return
	}

	ev := c.l.WithLevel(zl)
	ev.Str(zerolog.TimestampFieldName, xclock.Now().Format(timestampLayout))
	if cause != nil {
		ev.Err(cause)
	}
	ev.Msg(msg)
}

// mapLevel converts an engine level to zerolog's, downgrading trace when the
// backend lacks it and keeping the lenient default of debug for unrecognized
// values.
func (c *Chute) mapLevel(level logchute.Level) zerolog.Level {
	switch level {
	case logchute.LevelWarn:
		return zerolog.WarnLevel
	case logchute.LevelInfo:
		return zerolog.InfoLevel
	case logchute.LevelDebug:
		return zerolog.DebugLevel
	case logchute.LevelTrace:
		if c.hasTrace {
			return zerolog.TraceLevel
		}
		return zerolog.DebugLevel
	case logchute.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.DebugLevel
	}
}

// Enabled consults the backend's threshold. Errors cannot be suppressed.
func (c *Chute) Enabled(level logchute.Level) bool {
	switch level {
	case logchute.LevelTrace, logchute.LevelDebug, logchute.LevelInfo, logchute.LevelWarn:
		return c.mapLevel(level) >= c.l.GetLevel()
	default:
		return true
	}
}

// Shutdown detaches and closes the rolling file destination if one was
// created. Safe to call more than once. Applications must call it
// explicitly; there is no finalizer to fall back on.
func (c *Chute) Shutdown() {
	if c.file == nil {
		return
	}
	c.l = zerolog.Nop()
	remove(c.name)
	_ = c.file.Close()
	c.file = nil
}
