package osl

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-acpiosl/internal/hostmem"
	"github.com/goliatone/go-acpiosl/pkg/cfmt"
)

// ErrNotImplemented reports a callback this layer deliberately does not
// provide.
var ErrNotImplemented = errors.New("osl: not implemented")

// Option customises the dispatcher configuration.
type Option func(*Dispatcher)

// WithConverter injects the format converter used by Vprintf.
func WithConverter(conv *cfmt.Converter) Option {
	return func(d *Dispatcher) {
		d.conv = conv
	}
}

// WithStrictErrors makes Vprintf return render errors instead of
// degrading to the raw format string.
func WithStrictErrors() Option {
	return func(d *Dispatcher) {
		d.strict = true
	}
}

// Dispatcher hands interpreter callbacks to one Services
// implementation. Dispatchers are independent instances sharing no
// state, so tests can construct as many as they need without
// process-wide fixtures.
type Dispatcher struct {
	svc    Services
	conv   *cfmt.Converter
	strict bool
}

// NewDispatcher wires a dispatcher around svc. By default Vprintf
// formats through a converter that resolves string arguments from live
// process memory.
func NewDispatcher(svc Services, options ...Option) (*Dispatcher, error) {
	if svc == nil {
		return nil, errors.New("osl: services implementation is required")
	}
	d := &Dispatcher{svc: svc}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if d.conv == nil {
		d.conv = cfmt.New(cfmt.WithMemory(hostmem.Reader{}))
	}
	return d, nil
}

// Vprintf renders format with args and forwards the text to the host's
// Print callback. Diagnostic output must never destabilise the host, so
// render failures degrade to printing the raw format string together
// with the failure, unless the dispatcher was built WithStrictErrors.
func (d *Dispatcher) Vprintf(format string, args cfmt.Cursor) error {
	var buf cfmt.Buffer
	err := d.conv.Render(format, args, &buf)
	if err == nil {
		d.svc.Print(buf.String())
		return nil
	}
	if d.strict {
		return err
	}
	d.svc.Print(fmt.Sprintf("%s [unformatted: %v]", format, err))
	return nil
}

// Printf is Vprintf over an explicit value list.
func (d *Dispatcher) Printf(format string, values ...cfmt.Value) error {
	return d.Vprintf(format, cfmt.Values(values...))
}

// RedirectOutput mirrors the interpreter's output redirection hook,
// which this layer does not support.
func (d *Dispatcher) RedirectOutput(destination uintptr) error {
	return fmt.Errorf("%w: output redirection", ErrNotImplemented)
}

// Services returns the wrapped implementation.
func (d *Dispatcher) Services() Services { return d.svc }

// Debugger returns the host's debugger surface when it has one.
func (d *Dispatcher) Debugger() (DebuggerServices, bool) {
	dbg, ok := d.svc.(DebuggerServices)
	return dbg, ok
}
