package cfmt

import (
	"errors"
	"fmt"
	"strconv"
)

// Option customises the converter configuration.
type Option func(*Converter)

// WithMemory injects the bounded memory reader used to resolve %s
// arguments for cursors that cannot resolve them on their own.
func WithMemory(mem Memory) Option {
	return func(c *Converter) {
		c.mem = mem
	}
}

// Converter walks a format string left to right, copying literal bytes
// verbatim and rendering one directive at a time. A converter holds no
// per-call state, so a single instance may serve concurrent renders as
// long as each call owns its cursor and sink.
type Converter struct {
	mem Memory
}

// New constructs a converter applying any provided options.
func New(options ...Option) *Converter {
	c := &Converter{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Render formats into out, consuming arguments from args as directives
// require them. A cursor that implements Memory resolves its own string
// arguments; otherwise the converter's configured Memory is used. Any
// failure aborts the render and the partial sink output is unusable.
func (c *Converter) Render(format string, args Cursor, out Sink) error {
	if args == nil {
		return errors.New("cfmt: argument cursor is required")
	}
	if out == nil {
		return errors.New("cfmt: output sink is required")
	}

	mem := c.mem
	if m, ok := args.(Memory); ok {
		mem = m
	}

	literal := 0
	i := 0
	for i < len(format) {
		if format[i] != '%' {
			i++
			continue
		}
		if literal < i {
			if err := write(out, format[literal:i]); err != nil {
				return err
			}
		}

		// %% emits a literal percent and consumes no argument; this
		// check precedes all directive parsing.
		if i+1 < len(format) && format[i+1] == '%' {
			if err := write(out, "%"); err != nil {
				return err
			}
			i += 2
			literal = i
			continue
		}

		d, next, err := scanDirective(format, i+1, args)
		if err != nil {
			return err
		}
		if err := renderDirective(d, args, mem, out); err != nil {
			return err
		}
		i = next
		literal = i
	}
	if literal < len(format) {
		return write(out, format[literal:])
	}
	return nil
}

func renderDirective(d directive, args Cursor, mem Memory, out Sink) error {
	switch d.verb {
	case 'c':
		// Width, precision, and justification are not applied to %c;
		// the interpreter never formats char output, and changing this
		// would alter rendered text for callers that rely on it.
		b, err := args.NextByte()
		if err != nil {
			return err
		}
		return write(out, string(rune(b)))
	case 'd', 'i':
		v, err := args.NextInt()
		if err != nil {
			return err
		}
		return writeSigned(out, v, d)
	case 'u':
		v, err := args.NextUint()
		if err != nil {
			return err
		}
		return writeUnsigned(out, v, baseDecimal, false, d)
	case 'o':
		v, err := args.NextUint()
		if err != nil {
			return err
		}
		return writeUnsigned(out, v, baseOctal, false, d)
	case 'x':
		v, err := args.NextUint()
		if err != nil {
			return err
		}
		return writeUnsigned(out, v, baseHex, false, d)
	case 'X':
		v, err := args.NextUint()
		if err != nil {
			return err
		}
		return writeUnsigned(out, v, baseHex, true, d)
	case 's':
		if mem == nil {
			return errors.New("cfmt: no memory reader available for %s")
		}
		addr, err := args.NextAddress()
		if err != nil {
			return err
		}
		return writeString(out, mem, addr, d)
	case 'p':
		addr, err := args.NextAddress()
		if err != nil {
			return err
		}
		return write(out, "0x"+strconv.FormatUint(addr, 16))
	case 'n':
		return fmt.Errorf("%w: %%n", ErrUnsupportedConversion)
	case 'h', 'l', 'j', 'z', 't', 'L':
		return fmt.Errorf("%w: length modifier %q", ErrUnsupportedConversion, string(d.verb))
	case 'f', 'F', 'e', 'E', 'a', 'A', 'g', 'G':
		return fmt.Errorf("%w: floating point conversion %q", ErrUnsupportedConversion, string(d.verb))
	default:
		return fmt.Errorf("%w: unknown conversion %q", ErrMalformedFormat, string(d.verb))
	}
}

// Render formats into out using a converter with the default
// configuration.
func Render(format string, args Cursor, out Sink) error {
	return New().Render(format, args, out)
}

// Format renders to a string.
func Format(format string, args Cursor) (string, error) {
	var buf Buffer
	if err := New().Render(format, args, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
