package panics

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
)

var (
	// ErrInstalled is returned when Install is called after a handler has
	// already been installed.
	ErrInstalled = errors.New("panic handler already installed")

	// ErrHandlerNil is returned when Install is called with a nil handler.
	ErrHandlerNil = errors.New("panic handler cannot be nil")
)

// Info describes an in-flight panic as observed by Notify.
type Info struct {
	// Payload is the value the panic was raised with.
	Payload any

	// Message is the payload rendered as text.
	Message string

	// File and Line identify the panic site when it could be determined.
	// File is empty and Line is zero otherwise.
	File string
	Line int
}

// Handler receives panic reports. It runs while the panicking goroutine is
// unwinding, so it must be fast and must not rely on state the unwind may
// have invalidated.
type Handler func(Info)

// Observed wraps a panic value that has already been reported, so that outer
// wrapped frames re-raise it without reporting again.
type Observed struct {
	// Value is the original panic payload.
	Value any
}

func (o *Observed) Error() string {
	return fmt.Sprintf("panic: %v", o.Value)
}

// installed holds the process-wide handler. Written at most once.
var installed atomic.Pointer[Handler]

// Install registers h as the process-wide panic handler. The first call
// wins; subsequent calls return ErrInstalled and leave the existing handler
// in place.
func Install(h Handler) error {
	if h == nil {
		return ErrHandlerNil
	}
	if !installed.CompareAndSwap(nil, &h) {
		return ErrInstalled
	}
	return nil
}

// Installed reports whether a handler has been installed.
func Installed() bool {
	return installed.Load() != nil
}

// Notify observes a panic unwinding through the calling frame. It must be
// deferred directly:
//
//	defer panics.Notify()
//
// Place it after the context guard's release defer so it runs first on
// unwind, while the guard's context is still current. A panic that has
// already been observed passes through untouched; otherwise the installed
// handler (if any) is fired and the panic resumes wrapped in *Observed.
func Notify() {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(*Observed); ok {
		panic(r)
	}

	if h := installed.Load(); h != nil {
		fire(*h, describe(r))
	}
	panic(&Observed{Value: r})
}

// fire runs the handler shielded from its own panics. A failure inside the
// handler during unwind would abort the process, so it is swallowed.
func fire(h Handler, info Info) {
	defer func() {
		_ = recover()
	}()
	h(info)
}

// describe builds an Info from the recovered value, locating the panic site
// from the call stack of the in-flight unwind.
func describe(r any) Info {
	info := Info{Payload: r, Message: message(r)}
	info.File, info.Line = site()
	return info
}

// message renders the panic payload as text without formatting machinery
// that could itself fail.
func message(r any) string {
	switch v := r.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// site walks the stack of the unwinding goroutine and returns the frame that
// raised the panic: the first non-runtime frame after runtime.gopanic.
func site() (string, int) {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	seenPanic := false
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.gopanic") {
			seenPanic = true
		} else if seenPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return frame.File, frame.Line
		}
		if !more {
			return "", 0
		}
	}
}
