package log

import (
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	t.Parallel()

	ordered := []Level{
		LevelDebug,
		LevelInfo,
		LevelNotice,
		LevelWarning,
		LevelError,
		LevelCritical,
		LevelAlert,
		LevelEmergency,
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Fatalf("expected %s < %s", ordered[i-1], ordered[i])
		}
	}
}

func TestHostIDMappingInjective(t *testing.T) {
	t.Parallel()

	seen := map[string]Level{}
	for l := LevelDebug; l <= LevelEmergency; l++ {
		id := l.HostID()
		if id == "" {
			t.Fatalf("level %d has no host identifier", l)
		}
		if prev, dup := seen[id]; dup {
			t.Fatalf("host identifier %q maps to both %d and %d", id, prev, l)
		}
		seen[id] = l

		// Stable across calls.
		if l.HostID() != id {
			t.Fatalf("host identifier for %q changed between calls", id)
		}
	}

	if len(seen) != 8 {
		t.Fatalf("expected 8 host identifiers, got %d", len(seen))
	}
}

func TestHostIDOutOfRange(t *testing.T) {
	t.Parallel()

	if got := Level(-1).HostID(); got != "debug" {
		t.Fatalf("expected out-of-range level to report as debug, got %q", got)
	}
	if got := Level(99).HostID(); got != "debug" {
		t.Fatalf("expected out-of-range level to report as debug, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tt := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"notice", LevelNotice},
		{"warning", LevelWarning},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"alert", LevelAlert},
		{"emergency", LevelEmergency},
		// convenience synonyms
		{"trace", LevelDebug},
		{"warn", LevelWarning},
		{"fatal", LevelEmergency},
		// unknown names degrade to debug
		{"verbose", LevelDebug},
		{"", LevelDebug},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseLevel(tc.name); got != tc.want {
				t.Fatalf("ParseLevel(%q) = %s, want %s", tc.name, got, tc.want)
			}
		})
	}
}
