package logchute

import (
	"fmt"
	"io"
	"os"
)

// SystemLevelKey sets the minimum level SystemChute emits at.
const SystemLevelKey = "runtime.log.logsystem.system.level"

// SystemChute writes engine log messages to the process's standard streams:
// warnings and errors go to stderr, everything else to stdout. It is the
// usual choice for RuntimeServices.Log.
type SystemChute struct {
	min    Level
	out    io.Writer
	errOut io.Writer
}

func NewSystemChute() *SystemChute {
	return &SystemChute{min: LevelTrace, out: os.Stdout, errOut: os.Stderr}
}

func (s *SystemChute) Init(rs RuntimeServices) error {
	if rs == nil {
		return nil
	}
	if lv := rs.Property(SystemLevelKey); lv != "" {
		s.min = ParseLevel(lv)
	}
	return nil
}

func (s *SystemChute) Log(level Level, msg string) { s.write(level, msg, nil) }

func (s *SystemChute) LogErr(level Level, msg string, cause error) { s.write(level, msg, cause) }

func (s *SystemChute) write(level Level, msg string, cause error) {
	if !s.Enabled(level) {
		return
	}
	w := s.out
	if level >= LevelWarn {
		w = s.errOut
	}
	if cause != nil {
		fmt.Fprintf(w, "%s  %s: %v\n", level, msg, cause)
		return
	}
	fmt.Fprintf(w, "%s  %s\n", level, msg)
}

// Enabled applies the configured floor. Errors cannot be suppressed.
func (s *SystemChute) Enabled(level Level) bool {
	if level >= LevelError {
		return true
	}
	return level >= s.min
}

func (s *SystemChute) Shutdown() {}
