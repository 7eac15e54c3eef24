package osl

// Services is the full callback surface the interpreter needs from its
// host. Every method is a one-to-one forwarding target for the
// corresponding interpreter callback; out-parameters in the C surface
// become multiple return values here.
type Services interface {
	Initialize() Status
	Terminate() Status

	// Address space management.
	MapMemory(physical PhysicalAddress, length uint64) uintptr
	UnmapMemory(logical uintptr, length uint64)
	PhysicalAddressOf(logical uintptr) (PhysicalAddress, Status)
	Allocate(size uint64) uintptr
	Free(address uintptr)
	Readable(address uintptr, length uint64) bool
	Writable(address uintptr, length uint64) bool

	// Threads and deferred work.
	ThreadID() ThreadID
	Execute(kind ExecuteType, fn ExecCallback, context uintptr) Status
	Sleep(milliseconds uint64)
	Stall(microseconds uint32)
	WaitEventsComplete()

	// Synchronisation primitives.
	CreateMutex() (Mutex, Status)
	DeleteMutex(handle Mutex)
	AcquireMutex(handle Mutex, timeout uint16) Status
	ReleaseMutex(handle Mutex)
	CreateSemaphore(maxUnits, initialUnits uint32) (Semaphore, Status)
	DeleteSemaphore(handle Semaphore) Status
	WaitSemaphore(handle Semaphore, units uint32, timeout uint16) Status
	SignalSemaphore(handle Semaphore, units uint32) Status
	CreateLock() (SpinLock, Status)
	DeleteLock(handle SpinLock)
	AcquireLock(handle SpinLock) CPUFlags
	ReleaseLock(handle SpinLock, flags CPUFlags)

	// Interrupt handling.
	InstallInterruptHandler(level uint32, handler InterruptHandler, context uintptr) Status
	RemoveInterruptHandler(level uint32, handler InterruptHandler) Status

	// Hardware access.
	ReadMemory(address PhysicalAddress, width uint32) (uint64, Status)
	WriteMemory(address PhysicalAddress, value uint64, width uint32) Status
	ReadPort(address IOAddress, width uint32) (uint32, Status)
	WritePort(address IOAddress, value uint32, width uint32) Status
	ReadPCIConfig(id PCIID, register, width uint32) (uint64, Status)
	WritePCIConfig(id PCIID, register uint32, value uint64, width uint32) Status

	// Table and namespace overrides.
	OverridePredefined(name string) (string, bool)
	OverrideTable(existing *TableHeader) (*TableHeader, Status)
	OverridePhysicalTable(existing *TableHeader) (PhysicalAddress, uint32, Status)

	// Miscellaneous.
	Timer() uint64
	Signal(function uint32, info uintptr) Status
	EnterSleep(state uint32, registerA, registerB uint32)

	// Print receives fully rendered diagnostic text from the debug
	// output path.
	Print(text string)
}

// DebuggerServices is implemented by hosts that enable the
// interpreter's debugger alongside the base Services.
type DebuggerServices interface {
	InitializeDebugger()
	TerminateDebugger()
	WaitCommandReady()
	NotifyCommandComplete()
	Disassemble(walkState, origin uint64, opcodes uint32)
	ParseDeferredOps(root uint64)
}

// NopServices accepts every callback and does nothing. Embed it to
// implement only the callbacks a host cares about.
type NopServices struct{}

func (NopServices) Initialize() Status { return StatusOK }
func (NopServices) Terminate() Status  { return StatusOK }

func (NopServices) MapMemory(PhysicalAddress, uint64) uintptr { return 0 }
func (NopServices) UnmapMemory(uintptr, uint64)               {}
func (NopServices) PhysicalAddressOf(uintptr) (PhysicalAddress, Status) {
	return 0, StatusOK
}
func (NopServices) Allocate(uint64) uintptr       { return 0 }
func (NopServices) Free(uintptr)                  {}
func (NopServices) Readable(uintptr, uint64) bool { return false }
func (NopServices) Writable(uintptr, uint64) bool { return false }

func (NopServices) ThreadID() ThreadID                                { return 0 }
func (NopServices) Execute(ExecuteType, ExecCallback, uintptr) Status { return StatusOK }
func (NopServices) Sleep(uint64)                                      {}
func (NopServices) Stall(uint32)                                      {}
func (NopServices) WaitEventsComplete()                               {}

func (NopServices) CreateMutex() (Mutex, Status)          { return 0, StatusOK }
func (NopServices) DeleteMutex(Mutex)                     {}
func (NopServices) AcquireMutex(Mutex, uint16) Status     { return StatusOK }
func (NopServices) ReleaseMutex(Mutex)                    {}
func (NopServices) CreateSemaphore(uint32, uint32) (Semaphore, Status) {
	return 0, StatusOK
}
func (NopServices) DeleteSemaphore(Semaphore) Status                { return StatusOK }
func (NopServices) WaitSemaphore(Semaphore, uint32, uint16) Status  { return StatusOK }
func (NopServices) SignalSemaphore(Semaphore, uint32) Status        { return StatusOK }
func (NopServices) CreateLock() (SpinLock, Status)                  { return 0, StatusOK }
func (NopServices) DeleteLock(SpinLock)                             {}
func (NopServices) AcquireLock(SpinLock) CPUFlags                   { return 0 }
func (NopServices) ReleaseLock(SpinLock, CPUFlags)                  {}

func (NopServices) InstallInterruptHandler(uint32, InterruptHandler, uintptr) Status {
	return StatusOK
}
func (NopServices) RemoveInterruptHandler(uint32, InterruptHandler) Status {
	return StatusOK
}

func (NopServices) ReadMemory(PhysicalAddress, uint32) (uint64, Status) {
	return 0, StatusOK
}
func (NopServices) WriteMemory(PhysicalAddress, uint64, uint32) Status { return StatusOK }
func (NopServices) ReadPort(IOAddress, uint32) (uint32, Status)        { return 0, StatusOK }
func (NopServices) WritePort(IOAddress, uint32, uint32) Status         { return StatusOK }
func (NopServices) ReadPCIConfig(PCIID, uint32, uint32) (uint64, Status) {
	return 0, StatusOK
}
func (NopServices) WritePCIConfig(PCIID, uint32, uint64, uint32) Status {
	return StatusOK
}

func (NopServices) OverridePredefined(string) (string, bool) { return "", false }
func (NopServices) OverrideTable(*TableHeader) (*TableHeader, Status) {
	return nil, StatusOK
}
func (NopServices) OverridePhysicalTable(*TableHeader) (PhysicalAddress, uint32, Status) {
	return 0, 0, StatusOK
}

func (NopServices) Timer() uint64                  { return 0 }
func (NopServices) Signal(uint32, uintptr) Status  { return StatusOK }
func (NopServices) EnterSleep(uint32, uint32, uint32) {}

func (NopServices) Print(string) {}
