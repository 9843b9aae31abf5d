/*
Package panics reports guest panics to a process-wide handler before the
stack finishes unwinding.

A handler is installed at most once per process with Install. Wrapped entry
points defer Notify; when a panic unwinds through it, Notify captures the
payload and panic site, fires the handler, and re-raises the panic wrapped in
Observed so outer wrapped frames do not report it again. Notify never
suppresses a panic and the handler invocation is shielded so that a faulty
handler cannot abort the unwind.
*/
package panics
