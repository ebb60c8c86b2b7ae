package logchute

import "testing"

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	if !(LevelTrace < LevelDebug && LevelDebug < LevelInfo && LevelInfo < LevelWarn && LevelWarn < LevelError) {
		t.Fatalf("level ordering broken: %d %d %d %d %d",
			LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError)
	}
	if LevelDebug != 0 {
		t.Fatalf("debug must be the zero value, got %d", LevelDebug)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if got := ParseLevel("warn"); got != LevelWarn {
		t.Fatalf("warn parsed as %v", got)
	}
	if got := ParseLevel(" ERROR "); got != LevelError {
		t.Fatalf("case/space-insensitive parse failed: %v", got)
	}
	if got := ParseLevel("warning"); got != LevelWarn {
		t.Fatalf("warning alias parsed as %v", got)
	}
	// unknown names stay lenient
	if got := ParseLevel("loud"); got != LevelDebug {
		t.Fatalf("unknown level parsed as %v, want debug", got)
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	for _, lv := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if ParseLevel(lv.String()) != lv {
			t.Fatalf("String/ParseLevel disagree for %d: %q", lv, lv.String())
		}
	}
	if Level(42).String() != "debug" {
		t.Fatalf("unrecognized level should stringify as debug, got %q", Level(42).String())
	}
}
