package logchute

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// mapSource is a minimal PropertySource for tests.
type mapSource map[string]string

func (m mapSource) Property(key string) string { return m[key] }

func TestRuntimeDefaults(t *testing.T) {
	t.Parallel()

	rt := &Runtime{}
	if got := rt.Property("runtime.log"); got != "" {
		t.Fatalf("nil property source should yield empty, got %q", got)
	}
	sys := rt.Log()
	if sys == nil {
		t.Fatal("Runtime.Log must never return nil")
	}
	if sys.Enabled(LevelError) {
		t.Fatal("fallback system chute should be the null chute")
	}
}

func TestNullChute(t *testing.T) {
	t.Parallel()

	var c Chute = NullChute{}
	if err := c.Init(&Runtime{}); err != nil {
		t.Fatalf("null init: %v", err)
	}
	c.Log(LevelError, "dropped")
	c.LogErr(LevelError, "dropped", errors.New("boom"))
	c.Shutdown()
	for _, lv := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if c.Enabled(lv) {
			t.Fatalf("null chute reports %v enabled", lv)
		}
	}
}

func TestSystemChuteRouting(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	s := NewSystemChute()
	s.out = &out
	s.errOut = &errOut

	rt := &Runtime{Properties: mapSource{SystemLevelKey: "info"}}
	if err := s.Init(rt); err != nil {
		t.Fatalf("init: %v", err)
	}

	s.Log(LevelDebug, "quiet")
	s.Log(LevelInfo, "to stdout")
	s.Log(LevelWarn, "to stderr")
	s.LogErr(LevelError, "failed", errors.New("boom"))

	if strings.Contains(out.String(), "quiet") {
		t.Fatalf("debug leaked past info floor: %q", out.String())
	}
	if !strings.Contains(out.String(), "info  to stdout") {
		t.Fatalf("info missing from stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warn  to stderr") {
		t.Fatalf("warn missing from stderr: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "failed: boom") {
		t.Fatalf("error cause missing: %q", errOut.String())
	}
}

func TestSystemChuteErrorAlwaysEnabled(t *testing.T) {
	t.Parallel()

	s := NewSystemChute()
	if err := s.Init(&Runtime{Properties: mapSource{SystemLevelKey: "error"}}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if s.Enabled(LevelWarn) {
		t.Fatal("warn enabled despite error floor")
	}
	if !s.Enabled(LevelError) {
		t.Fatal("error must never be suppressed")
	}
}

func TestConfigurationErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := &ConfigurationError{Path: "/var/log/velocity.log", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatal("cause lost in wrapping")
	}
	if !strings.Contains(err.Error(), "/var/log/velocity.log") {
		t.Fatalf("message should name the path: %q", err.Error())
	}
}
