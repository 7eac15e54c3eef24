package cfmt

import "errors"

// Memory resolves string arguments from addresses supplied by the
// cursor. Implementations must never touch bytes past the cap.
type Memory interface {
	// ReadString returns the bytes at addr up to but excluding the
	// first zero byte. A non-negative max caps the read at max bytes;
	// the byte at addr+max is never read. A negative max scans until
	// the terminator.
	ReadString(addr uint64, max int) ([]byte, error)
}

// boundedRead applies the scan rule to an in-memory buffer: stop at the
// first zero byte, read at most max bytes when max is non-negative, and
// fail if the scan would run off the end of the buffer.
func boundedRead(buf []byte, max int) ([]byte, error) {
	n := len(buf)
	if max >= 0 && max < n {
		n = max
	}
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			return buf[:i], nil
		}
	}
	if max >= 0 && n == max {
		return buf[:n], nil
	}
	return nil, errors.New("cfmt: unterminated string argument")
}
