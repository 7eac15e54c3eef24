// Package osl declares the operating-system services an ACPI
// interpreter requires from its host and dispatches interpreter
// callbacks, including the variadic debug print path, to one
// caller-supplied Services implementation. Dispatchers are explicit
// instances so tests can build as many as they need; a single
// process-wide registration is available for the native binding layer
// that cannot carry a handle through C callbacks.
package osl
