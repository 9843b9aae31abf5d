/*
Package sdk provides the core entry point and runtime configuration for guest
functions whose logs and panics are reported through the host runtime's
logging facility.

New registers a waPC handler wrapped in an execution context scope: each host
invocation pushes an opaque context handle for its duration, so log records
emitted anywhere inside the call (package log) are attributed to the correct
invocation, and panics are reported to the host (package panics) before the
scope unwinds. RuntimeConfig is shared by capability clients and
DefaultNamespace is used when a namespace is not explicitly provided.
*/
package sdk
