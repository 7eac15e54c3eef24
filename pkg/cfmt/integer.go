package cfmt

import (
	"strconv"
	"strings"
)

// base is an integer radix together with its alternate-form prefix.
type base int

const (
	baseOctal   base = 8
	baseDecimal base = 10
	baseHex     base = 16
)

func (b base) prefix(upper bool) string {
	switch {
	case b == baseOctal:
		return "0"
	case b == baseDecimal && upper:
		return "0D"
	case b == baseDecimal:
		return "0d"
	case upper:
		return "0X"
	default:
		return "0x"
	}
}

// writeUnsigned renders value in b, honoring precision zero-padding,
// alternate-form prefixes, and width justification. The emit order is
// pad, prefix, zero-filled digits, trailing pad.
func writeUnsigned(out Sink, value uint64, b base, upper bool, d directive) error {
	precision := 1
	if d.hasPrecision {
		precision = d.precision
	}

	contentWidth := 0
	if d.alternate {
		// The octal prefix is the leading zero digit itself: it
		// consumes one unit of precision instead of adding width. The
		// two-character decimal and hex prefixes add width directly.
		if b == baseOctal {
			if precision > 0 {
				precision--
			}
		} else {
			contentWidth += 2
		}
	}

	digits := strconv.FormatUint(value, int(b))
	if upper {
		digits = strings.ToUpper(digits)
	}

	digitWidth := len(digits)
	if precision > digitWidth {
		digitWidth = precision
	}
	contentWidth += digitWidth

	pad := 0
	if d.hasWidth && d.width > contentWidth {
		pad = d.width - contentWidth
	}

	if !d.justifyLeft {
		if err := writeRepeat(out, d.padChar(), pad); err != nil {
			return err
		}
	}
	if d.alternate {
		if err := write(out, b.prefix(upper)); err != nil {
			return err
		}
	}
	// Zero digits are legitimate exactly once: octal zero under an
	// explicit precision of zero.
	if b != baseOctal || value != 0 || precision != 0 {
		if err := writeRepeat(out, '0', precision-len(digits)); err != nil {
			return err
		}
		if err := write(out, digits); err != nil {
			return err
		}
	}
	if d.justifyLeft {
		return writeRepeat(out, d.padChar(), pad)
	}
	return nil
}

// writeSigned renders value in base 10 with sign handling. The sign is
// emitted between the leading pad and the digits, so zero padding fills
// before the sign character.
func writeSigned(out Sink, value int64, d directive) error {
	precision := 1
	if d.hasPrecision {
		precision = d.precision
	}

	magnitude := uint64(value)
	if value < 0 {
		magnitude = -magnitude
	}
	digits := strconv.FormatUint(magnitude, 10)

	contentWidth := len(digits)
	if precision > contentWidth {
		contentWidth = precision
	}
	if value < 0 || d.alwaysSign {
		contentWidth++
	}

	pad := 0
	if d.hasWidth && d.width > contentWidth {
		pad = d.width - contentWidth
	}

	if !d.justifyLeft {
		if err := writeRepeat(out, d.padChar(), pad); err != nil {
			return err
		}
	}

	var sign string
	switch {
	case value < 0:
		sign = "-"
	case d.alwaysSign:
		sign = "+"
	case d.spaceSign:
		sign = " "
	}
	if sign != "" {
		if err := write(out, sign); err != nil {
			return err
		}
	}

	if err := writeRepeat(out, '0', precision-len(digits)); err != nil {
		return err
	}
	if err := write(out, digits); err != nil {
		return err
	}

	if d.justifyLeft {
		return writeRepeat(out, d.padChar(), pad)
	}
	return nil
}
