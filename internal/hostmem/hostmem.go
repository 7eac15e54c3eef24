// Package hostmem resolves string arguments against live process
// addresses. It backs the cfmt Memory capability when formats arrive
// from the interpreter with native pointers; test code should prefer
// the arena built into the in-memory value cursor.
package hostmem

import (
	"errors"
	"unsafe"
)

// Reader reads C strings from raw addresses. The caller must guarantee
// the addressed memory is readable, mirroring the readability check the
// services layer already exposes.
type Reader struct{}

// ReadString scans from addr up to max bytes (unbounded when max is
// negative), stopping at the first zero byte. The byte at addr+max is
// never dereferenced.
func (Reader) ReadString(addr uint64, max int) ([]byte, error) {
	if addr == 0 {
		return nil, errors.New("hostmem: nil string address")
	}
	var out []byte
	for i := 0; max < 0 || i < max; i++ {
		b := *(*byte)(unsafe.Pointer(uintptr(addr) + uintptr(i)))
		if b == 0 {
			break
		}
		out = append(out, b)
	}
	return out, nil
}
