package logchute

import "fmt"

// ConfigurationError is returned by Init when a chute's dedicated log
// destination cannot be created. The engine is expected to abort startup on
// it; every other chute operation is total.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("logchute: could not configure rolling log file %q: %v", e.Path, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
