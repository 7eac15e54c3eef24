package osl

import (
	"errors"
	"sync"
)

// The native binding layer receives raw interpreter callbacks with no
// room to carry a handle, so it needs one process-wide dispatcher. It
// is installed exactly once and only read afterwards.
var (
	registryMu sync.Mutex
	registered *Dispatcher
)

// Register installs the process-wide dispatcher. Only the first call
// succeeds; later calls are rejected rather than replacing it.
func Register(d *Dispatcher) error {
	if d == nil {
		return errors.New("osl: dispatcher is required")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if registered != nil {
		return errors.New("osl: dispatcher already registered")
	}
	registered = d
	return nil
}

// Registered returns the process-wide dispatcher, if any.
func Registered() (*Dispatcher, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	return registered, registered != nil
}
