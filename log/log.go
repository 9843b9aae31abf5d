package log

import (
	"errors"
	"fmt"
	"sync/atomic"

	wapc "github.com/wapc/wapc-guest-tinygo"

	sdk "github.com/hostbridge-project/sdk"
	"github.com/hostbridge-project/sdk/execctx"
	"github.com/hostbridge-project/sdk/panics"
)

const (
	capabilityName = "logging"
	fnEmit         = "emit"
)

// HostCall defines the waPC host function signature used to transmit log
// records.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Fallback receives records that could not be attributed to a host
// invocation, rendered as a single line of text.
type Fallback func(string)

// Config controls how a Logger interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used to transmit records.
	HostCall HostCall

	// Fallback overrides the degraded sink used when no invocation context
	// is available. Defaults to the host console.
	Fallback Fallback
}

// Logger emits log records to the host runtime's logging facility,
// attributed to the invocation context current on the calling goroutine.
type Logger struct {
	runtime  sdk.RuntimeConfig
	hostCall HostCall
	fallback Fallback
}

// New creates a Logger with namespace defaults and optional host-call and
// fallback overrides.
func New(config Config) (*Logger, error) {
	runtime := config.SDKConfig
	if runtime.Namespace == "" {
		runtime.Namespace = sdk.DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	fallback := config.Fallback
	if fallback == nil {
		fallback = wapc.ConsoleLog
	}

	return &Logger{runtime: runtime, hostCall: hostCall, fallback: fallback}, nil
}

// Debug logs a debug-level record.
func (l *Logger) Debug(format string, args ...any) { l.Log(LevelDebug, format, args...) }

// Info logs an info-level record.
func (l *Logger) Info(format string, args ...any) { l.Log(LevelInfo, format, args...) }

// Notice logs a notice-level record.
func (l *Logger) Notice(format string, args ...any) { l.Log(LevelNotice, format, args...) }

// Warning logs a warning-level record.
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }

// Error logs an error-level record.
func (l *Logger) Error(format string, args ...any) { l.Log(LevelError, format, args...) }

// Critical logs a critical-level record.
func (l *Logger) Critical(format string, args ...any) { l.Log(LevelCritical, format, args...) }

// Alert logs an alert-level record.
func (l *Logger) Alert(format string, args ...any) { l.Log(LevelAlert, format, args...) }

// Emergency logs an emergency-level record.
func (l *Logger) Emergency(format string, args ...any) { l.Log(LevelEmergency, format, args...) }

// Log emits a record at a level chosen at runtime. The format template and
// positional values are forwarded to the host formatter verbatim; calls
// carrying metadata use NewRecord instead.
func (l *Logger) Log(level Level, format string, args ...any) {
	r := l.NewRecord(level, format)
	r.args = args
	r.Send()
}

// emit is the single transmission path for records. It looks up the current
// invocation context; with one present the record is shipped to the host as
// a fire-and-forget call, otherwise it degrades to the fallback sink. emit
// never returns an error and never panics; it runs inside the panic handler.
func (l *Logger) emit(r *Record) {
	defer func() {
		_ = recover()
	}()

	ctx, ok := execctx.Current()
	if !ok {
		l.drop(r, "no invocation context")
		return
	}

	payload, err := r.envelope(ctx)
	if err != nil {
		l.drop(r, "encode failed")
		return
	}

	_, _ = l.hostCall(l.runtime.Namespace, capabilityName, fnEmit, payload)
}

// drop renders a best-effort notice on the fallback sink.
func (l *Logger) drop(r *Record, reason string) {
	line := fmt.Sprintf("log dropped (%s): level=%s format=%q args=%v", reason, r.level, r.format, r.args)
	l.fallback(line)
}

// defaultLogger backs the package-level entry points and the panic handler.
var defaultLogger atomic.Pointer[Logger]

// Default returns the package-level Logger, creating one with default
// configuration on first use.
func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	l, _ := New(Config{})
	defaultLogger.CompareAndSwap(nil, l)
	return defaultLogger.Load()
}

// Init configures the package-level Logger and installs the process-wide
// panic handler. It is intended to run once during module load; calling it
// again replaces the package-level Logger but leaves the already-installed
// handler in place.
func Init(config Config) (*Logger, error) {
	l, err := New(config)
	if err != nil {
		return nil, err
	}
	defaultLogger.Store(l)

	if err := panics.Install(reportPanic); err != nil && !errors.Is(err, panics.ErrInstalled) {
		return nil, err
	}
	return l, nil
}

// reportPanic translates an observed panic into an emergency record: the
// payload text becomes the template, the panic site goes under the reserved
// metadata keys. Emission swallows its own failures, so this can run safely
// while the stack unwinds.
func reportPanic(info panics.Info) {
	r := Default().NewRecord(LevelEmergency, info.Message)
	if info.File != "" {
		r.Meta(MetaPanicFile, info.File)
		r.Meta(MetaPanicLine, info.Line)
	}
	r.Send()
}

// Debug logs a debug-level record through the package-level Logger.
func Debug(format string, args ...any) { Default().Debug(format, args...) }

// Info logs an info-level record through the package-level Logger.
func Info(format string, args ...any) { Default().Info(format, args...) }

// Notice logs a notice-level record through the package-level Logger.
func Notice(format string, args ...any) { Default().Notice(format, args...) }

// Warning logs a warning-level record through the package-level Logger.
func Warning(format string, args ...any) { Default().Warning(format, args...) }

// Error logs an error-level record through the package-level Logger.
func Error(format string, args ...any) { Default().Error(format, args...) }

// Critical logs a critical-level record through the package-level Logger.
func Critical(format string, args ...any) { Default().Critical(format, args...) }

// Alert logs an alert-level record through the package-level Logger.
func Alert(format string, args ...any) { Default().Alert(format, args...) }

// Emergency logs an emergency-level record through the package-level Logger.
func Emergency(format string, args ...any) { Default().Emergency(format, args...) }

// Log emits a record at a runtime-chosen level through the package-level
// Logger.
func Log(level Level, format string, args ...any) { Default().Log(level, format, args...) }
