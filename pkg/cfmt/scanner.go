package cfmt

import (
	"fmt"
	"math"
)

// directive describes one %...conversion unit. It lives only for the
// duration of a single render and has no identity beyond it.
type directive struct {
	justifyLeft bool
	alwaysSign  bool
	spaceSign   bool
	alternate   bool
	zeroPad     bool

	width        int
	hasWidth     bool
	precision    int
	hasPrecision bool

	verb byte
}

func (d directive) padChar() byte {
	if d.zeroPad {
		return '0'
	}
	return ' '
}

// scanDirective parses the directive starting just after a '%' at
// format[start:] and returns it together with the index of the first
// byte after the conversion letter. Dynamic width and precision values
// are pulled from args in format-string order, before the conversion's
// own argument.
func scanDirective(format string, start int, args Cursor) (directive, int, error) {
	var d directive
	i := start

flags:
	for i < len(format) {
		switch format[i] {
		case '-':
			d.justifyLeft = true
		case '+':
			d.alwaysSign = true
		case ' ':
			d.spaceSign = true
		case '#':
			d.alternate = true
		case '0':
			d.zeroPad = true
		default:
			break flags
		}
		i++
	}

	width, hasWidth, negative, next, err := scanFieldValue(format, i, args)
	if err != nil {
		return d, i, err
	}
	i = next
	d.width, d.hasWidth = width, hasWidth
	if negative {
		// A negative dynamic width means its magnitude with left
		// justification forced, as in native printf.
		d.justifyLeft = true
	}

	if i < len(format) && format[i] == '.' {
		precision, hasPrecision, negative, next, err := scanFieldValue(format, i+1, args)
		if err != nil {
			return d, i, err
		}
		if negative {
			return d, i, fmt.Errorf("%w: dynamic precision is negative", ErrInvalidPrecision)
		}
		i = next
		d.precision, d.hasPrecision = precision, hasPrecision
	}

	if i >= len(format) {
		return d, i, fmt.Errorf("%w: format ends after %%", ErrMalformedFormat)
	}
	d.verb = format[i]
	return d, i + 1, nil
}

// scanFieldValue reads one width or precision field: '*' pulls a signed
// value from args, decimal digits accumulate literally, anything else
// leaves the field unset.
func scanFieldValue(format string, i int, args Cursor) (value int, ok, negative bool, next int, err error) {
	if i < len(format) && format[i] == '*' {
		v, err := args.NextInt()
		if err != nil {
			return 0, false, false, i, err
		}
		if v < 0 {
			// The magnitude of the most negative argument does not fit
			// in an int, so saturate instead of wrapping back negative.
			magnitude := -uint64(v)
			width := math.MaxInt
			if magnitude < uint64(math.MaxInt) {
				width = int(magnitude)
			}
			return width, true, true, i + 1, nil
		}
		return int(v), true, false, i + 1, nil
	}

	start := i
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		value = value*10 + int(format[i]-'0')
		i++
	}
	return value, i > start, false, i, nil
}
