/*
Package execctx tracks which host runtime invocation a goroutine is currently
servicing.

The host runtime invokes guest functions on its own workers, and log entries
emitted from arbitrary call depth must still be attributed to the invocation
that triggered them. Each wrapped entry point pushes an opaque Context handle
onto a goroutine-local stack via Enter and holds the returned Guard for the
duration of the call; Current reads the most recent, not-yet-released handle.

The stack is strictly local to the calling goroutine. Nothing on the Current
path takes a lock, so it remains safe to call while a panic is unwinding.
*/
package execctx
