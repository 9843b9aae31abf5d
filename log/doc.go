/*
Package log emits structured log records from guest code to the host
runtime's logging facility.

Records are attributed to the host invocation currently executing on the
calling goroutine (package execctx); the formatted output is produced by the
host, not here, so templates and positional values are forwarded verbatim. When
no invocation context is available the record degrades to a local fallback
sink instead of erroring, so logging is always safe to attempt.

A Logger is a capability client in the usual SDK shape:

	logger, err := log.New(log.Config{SDKConfig: sdk.RuntimeConfig{Namespace: "hostbridge"}})
	if err != nil {
	    // handle
	}
	logger.Info("~p items ready", count)

Calls that carry metadata use the record builder:

	logger.NewRecord(log.LevelWarning, "quota ~p exceeded").
	    Arg(quota).
	    Meta("user", user).
	    Send()

Init installs the process-wide panic handler and should be called once during
module load; panics inside wrapped calls are then reported to the host as
emergency-level records before the stack unwinds past the invocation
boundary.
*/
package log
