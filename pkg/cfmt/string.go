package cfmt

import (
	"fmt"
	"unicode/utf8"
)

// writeString renders a string argument read from mem at addr. A set
// precision caps the number of bytes read, so the source buffer need
// not be terminated when it holds at least that many bytes.
func writeString(out Sink, mem Memory, addr uint64, d directive) error {
	limit := -1
	if d.hasPrecision {
		limit = d.precision
	}
	raw, err := mem.ReadString(addr, limit)
	if err != nil {
		return err
	}
	if !utf8.Valid(raw) {
		return fmt.Errorf("%w: string argument at %#x", ErrInvalidEncoding, addr)
	}

	pad := 0
	if d.hasWidth && d.width > len(raw) {
		pad = d.width - len(raw)
	}

	// Strings always pad with spaces; the zero flag applies to integer
	// conversions only.
	if !d.justifyLeft {
		if err := writeRepeat(out, ' ', pad); err != nil {
			return err
		}
	}
	if err := write(out, string(raw)); err != nil {
		return err
	}
	if d.justifyLeft {
		return writeRepeat(out, ' ', pad)
	}
	return nil
}
