package zerologchute

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Named logger instances. An embedding application Registers a logger it
// already manages and points the chute at it via LoggerNameKey; the chute
// Gets loggers by name the way log4j resolves them.

var (
	regMu         sync.Mutex
	registry      = map[string]zerolog.Logger{}
	defaultWriter io.Writer = os.Stderr
)

// Register binds name to l. Subsequent Get calls for name return l.
func Register(name string, l zerolog.Logger) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[name] = l
}

// Get returns the logger registered under name, creating one against the
// default writer when absent.
func Get(name string) zerolog.Logger {
	regMu.Lock()
	defer regMu.Unlock()
	l, ok := registry[name]
	if !ok {
		l = zerolog.New(defaultWriter).Level(zerolog.DebugLevel)
		registry[name] = l
	}
	return l
}

// SetDefaultWriter replaces the writer backing loggers Get creates itself.
// Passing nil restores stderr.
func SetDefaultWriter(w io.Writer) {
	regMu.Lock()
	defer regMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	defaultWriter = w
}

func remove(name string) {
	regMu.Lock()
	defer regMu.Unlock()
	delete(registry, name)
}
