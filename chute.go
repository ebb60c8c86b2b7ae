// Package logchute defines the logging contract the template engine depends
// on. The engine never talks to a logging library directly: it emits through
// a Chute, and the embedding application decides which implementation backs
// it. Backend bindings live under adapter/.
package logchute

// RuntimeLogKey names the file the engine logs to when no application-managed
// logger has been selected. Consumed by file-capable chutes during Init.
const RuntimeLogKey = "runtime.log"

// Chute is the pluggable logging backend (Strategy).
//
// Init is the only operation that can fail; Log, LogErr and Enabled are total
// and must never interrupt the caller's rendering work. Shutdown releases any
// destination the chute created and is safe to call more than once.
type Chute interface {
	// Init binds the chute to its backend using the engine's runtime
	// services. Called once at engine startup, before any other method.
	Init(rs RuntimeServices) error

	// Log emits msg at the given level.
	Log(level Level, msg string)

	// LogErr emits msg at the given level together with the causing error,
	// so the backend can render its chain.
	LogErr(level Level, msg string, cause error)

	// Enabled reports whether the backend would emit at level. Callers
	// should guard expensive message construction with it.
	Enabled(level Level) bool

	// Shutdown flushes and closes destinations owned by the chute.
	// Idempotent. Go has no finalizer safety net here: skipping Shutdown
	// leaks the destination handle until process exit.
	Shutdown()
}

// PropertySource exposes the engine's string configuration properties.
// An empty string means the property is unset.
type PropertySource interface {
	Property(key string) string
}

// RuntimeServices is the slice of the engine runtime a chute needs during
// Init: configuration access plus the engine's own system log, used as a
// best-effort channel for reporting setup problems.
type RuntimeServices interface {
	PropertySource
	Log() Chute
}

// Runtime is a minimal RuntimeServices for embedding applications and tests.
type Runtime struct {
	Properties PropertySource
	System     Chute
}

func (r *Runtime) Property(key string) string {
	if r.Properties == nil {
		return ""
	}
	return r.Properties.Property(key)
}

// Log returns the system chute, or a NullChute when none was configured so
// callers never need a nil check.
func (r *Runtime) Log() Chute {
	if r.System == nil {
		return NullChute{}
	}
	return r.System
}
