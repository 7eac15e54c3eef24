// Package acpiosl wires an ACPI interpreter's operating-system callback
// surface to a caller-supplied implementation, including the C
// printf-compatible formatter behind the interpreter's debug output
// path. The root package re-exports the common entry points; pkg/cfmt
// and pkg/osl hold the full API.
package acpiosl

import (
	"github.com/goliatone/go-acpiosl/pkg/cfmt"
	"github.com/goliatone/go-acpiosl/pkg/osl"
)

// Services is the host callback surface consumed by the dispatcher.
type Services = osl.Services

// DebuggerServices is the optional debugger callback surface.
type DebuggerServices = osl.DebuggerServices

// NopServices is an embeddable do-nothing Services implementation.
type NopServices = osl.NopServices

// Status mirrors the interpreter's status codes.
type Status = osl.Status

// Dispatcher forwards interpreter callbacks to one Services value.
type Dispatcher = osl.Dispatcher

// Cursor reads one argument slot at a time during a render.
type Cursor = cfmt.Cursor

// Value is a tagged argument slot for in-memory cursors.
type Value = cfmt.Value

// NewDispatcher constructs a dispatcher around svc.
func NewDispatcher(svc Services, options ...osl.Option) (*Dispatcher, error) {
	return osl.NewDispatcher(svc, options...)
}

// Register installs the process-wide dispatcher used by the native
// binding layer. Only the first call succeeds.
func Register(d *Dispatcher) error { return osl.Register(d) }

// Format renders a printf-style format string over an explicit value
// list.
func Format(format string, values ...Value) (string, error) {
	return cfmt.Format(format, cfmt.Values(values...))
}

// Values builds an in-memory argument cursor.
func Values(values ...Value) *cfmt.ValueCursor { return cfmt.Values(values...) }

// Int tags a signed integer argument.
func Int(v int64) Value { return cfmt.Int(v) }

// Uint tags an unsigned integer argument.
func Uint(v uint64) Value { return cfmt.Uint(v) }

// Byte tags a character argument.
func Byte(v byte) Value { return cfmt.Byte(v) }

// Pointer tags a pointer-valued argument.
func Pointer(v uint64) Value { return cfmt.Pointer(v) }

// String tags a terminated string argument.
func String(s string) Value { return cfmt.String(s) }
