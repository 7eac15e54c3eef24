package osl

import "fmt"

// Status mirrors the interpreter's ACPI_STATUS return codes.
type Status uint32

const (
	// StatusOK reports success (AE_OK).
	StatusOK Status = 0
	// StatusBadParameter reports a rejected argument (AE_BAD_PARAMETER).
	StatusBadParameter Status = 0x1001
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "AE_OK"
	case StatusBadParameter:
		return "AE_BAD_PARAMETER"
	default:
		return fmt.Sprintf("AE_%#04x", uint32(s))
	}
}

// Handle types for the synchronisation primitives the interpreter asks
// the host to manage. The values are opaque to this layer.
type (
	Mutex     uint64
	Semaphore uint64
	SpinLock  uint64
	ThreadID  uint64
	CPUFlags  uint64
)

// PhysicalAddress is a physical memory address.
type PhysicalAddress uint64

// IOAddress is a port I/O address.
type IOAddress uint64

// ExecuteType selects the priority class for deferred work handed to
// Execute.
type ExecuteType uint32

const (
	ExecuteGlobalLockHandler ExecuteType = iota
	ExecuteNotifyHandler
	ExecuteGPEHandler
	ExecuteDebuggerMainThread
	ExecuteDebuggerExecThread
	ExecuteEventHandler
)

// InterruptHandler is invoked for a registered system interrupt.
type InterruptHandler func(context uintptr) uint32

// ExecCallback is deferred work scheduled through Execute.
type ExecCallback func(context uintptr)

// PCIID identifies one PCI function for configuration-space access.
type PCIID struct {
	Segment  uint16
	Bus      uint16
	Device   uint16
	Function uint16
}

// TableHeader is the 36-byte system description table header shared by
// all ACPI tables.
type TableHeader struct {
	Signature       [4]byte
	Length          uint32
	Revision        uint8
	Checksum        uint8
	OEMID           [6]byte
	OEMTableID      [8]byte
	OEMRevision     uint32
	CreatorID       [4]byte
	CreatorRevision uint32
}
