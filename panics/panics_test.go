package panics

import (
	"errors"
	"testing"
)

// reset clears the process-wide handler between test cases.
func reset() {
	installed.Store(nil)
}

func TestInstall(t *testing.T) {
	reset()
	t.Cleanup(reset)

	if Installed() {
		t.Fatalf("expected no handler before Install")
	}

	if err := Install(nil); !errors.Is(err, ErrHandlerNil) {
		t.Fatalf("expected ErrHandlerNil, got %v", err)
	}

	if err := Install(func(Info) {}); err != nil {
		t.Fatalf("first Install returned error: %v", err)
	}
	if !Installed() {
		t.Fatalf("expected Installed after first Install")
	}

	if err := Install(func(Info) {}); !errors.Is(err, ErrInstalled) {
		t.Fatalf("expected ErrInstalled on second Install, got %v", err)
	}
}

func TestNotifyReportsOnce(t *testing.T) {
	reset()
	t.Cleanup(reset)

	var reports []Info
	if err := Install(func(info Info) { reports = append(reports, info) }); err != nil {
		t.Fatalf("Install returned error: %v", err)
	}

	outer := func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected panic to reach the outermost recover")
			}
			obs, ok := r.(*Observed)
			if !ok {
				t.Fatalf("expected *Observed, got %T", r)
			}
			if obs.Value != "boom" {
				t.Fatalf("expected original payload %q, got %v", "boom", obs.Value)
			}
		}()

		// Two nested wrapped frames: only the inner one reports.
		func() {
			defer Notify()
			func() {
				defer Notify()
				panic("boom")
			}()
		}()
	}
	outer()

	if len(reports) != 1 {
		t.Fatalf("expected exactly one report, got %d", len(reports))
	}
	if reports[0].Message != "boom" {
		t.Fatalf("expected message %q, got %q", "boom", reports[0].Message)
	}
	if reports[0].File == "" || reports[0].Line == 0 {
		t.Fatalf("expected panic site to be captured, got %q:%d", reports[0].File, reports[0].Line)
	}
}

func TestNotifyWithoutPanic(t *testing.T) {
	reset()
	t.Cleanup(reset)

	fired := false
	if err := Install(func(Info) { fired = true }); err != nil {
		t.Fatalf("Install returned error: %v", err)
	}

	func() {
		defer Notify()
	}()

	if fired {
		t.Fatalf("handler fired without a panic")
	}
}

func TestNotifyWithoutHandler(t *testing.T) {
	reset()
	t.Cleanup(reset)

	defer func() {
		r := recover()
		obs, ok := r.(*Observed)
		if !ok {
			t.Fatalf("expected *Observed even without a handler, got %T", r)
		}
		if obs.Value != "unhandled" {
			t.Fatalf("expected payload %q, got %v", "unhandled", obs.Value)
		}
	}()

	defer Notify()
	panic("unhandled")
}

func TestNotifySurvivesFaultyHandler(t *testing.T) {
	reset()
	t.Cleanup(reset)

	if err := Install(func(Info) { panic("handler fault") }); err != nil {
		t.Fatalf("Install returned error: %v", err)
	}

	defer func() {
		r := recover()
		obs, ok := r.(*Observed)
		if !ok {
			t.Fatalf("expected *Observed, got %T", r)
		}
		if obs.Value != "original" {
			t.Fatalf("expected original payload to survive handler fault, got %v", obs.Value)
		}
	}()

	defer Notify()
	panic("original")
}

func TestMessageRendering(t *testing.T) {
	tt := []struct {
		name    string
		payload any
		want    string
	}{
		{"string", "text", "text"},
		{"error", errors.New("wrapped failure"), "wrapped failure"},
		{"other", 42, "42"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if got := message(tc.payload); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
