package cfmt

import "errors"

// Render failures abort the whole call; partial sink output is not
// meaningful. Each failure wraps one of these sentinels so callers can
// classify with errors.Is.
var (
	// ErrMalformedFormat reports a format string this renderer cannot
	// parse: a '%' at end of input or an unknown conversion letter.
	ErrMalformedFormat = errors.New("cfmt: malformed format string")

	// ErrUnsupportedConversion reports a conversion that is valid C
	// printf but outside the supported subset: %n, length modifiers,
	// and floating point.
	ErrUnsupportedConversion = errors.New("cfmt: unsupported conversion")

	// ErrInvalidPrecision reports a negative dynamic precision value.
	ErrInvalidPrecision = errors.New("cfmt: invalid precision")

	// ErrInvalidEncoding reports a string argument whose bytes are not
	// valid UTF-8 within the applicable bound.
	ErrInvalidEncoding = errors.New("cfmt: invalid string encoding")

	// ErrArgumentExhausted reports a cursor with no more slots when one
	// is required.
	ErrArgumentExhausted = errors.New("cfmt: argument list exhausted")

	// ErrSink wraps a write failure from the output sink.
	ErrSink = errors.New("cfmt: sink write failed")
)
