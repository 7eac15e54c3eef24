package cfmt

import "fmt"

// Cursor reads the caller-supplied argument list one slot at a time in
// format-string order. Implementations advance by exactly one slot per
// call, never rewind, and fail once the list is exhausted. Whether a
// slot-type mismatch is detected is up to the implementation: a native
// variadic cursor cannot tell, a ValueCursor can and does.
type Cursor interface {
	NextInt() (int64, error)
	NextUint() (uint64, error)
	NextByte() (byte, error)
	NextAddress() (uint64, error)
}

// Kind tags one Value slot.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindByte
	KindPointer
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindByte:
		return "byte"
	case KindPointer:
		return "pointer"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one tagged argument slot for a ValueCursor.
type Value struct {
	kind Kind
	num  uint64
	str  []byte
}

// Int builds a signed integer slot.
func Int(v int64) Value { return Value{kind: KindInt, num: uint64(v)} }

// Uint builds an unsigned integer slot.
func Uint(v uint64) Value { return Value{kind: KindUint, num: v} }

// Byte builds a single-byte slot for %c.
func Byte(v byte) Value { return Value{kind: KindByte, num: uint64(v)} }

// Pointer builds a raw address slot for %p.
func Pointer(v uint64) Value { return Value{kind: KindPointer, num: v} }

// String builds a string slot backed by a terminated copy of s, the
// shape of an ordinary C string argument.
func String(s string) Value {
	return Value{kind: KindString, str: append([]byte(s), 0)}
}

// Bytes builds a string slot backed by b verbatim, with no terminator
// appended. Use it to exercise precision-bounded reads of unterminated
// buffers.
func Bytes(b []byte) Value {
	buf := make([]byte, len(b))
	copy(buf, b)
	return Value{kind: KindString, str: buf}
}

// Kind reports the slot's tag.
func (v Value) Kind() Kind { return v.kind }

// ValueCursor is an in-memory Cursor over an explicit ordered list of
// tagged values. It also implements Memory: string slots are surfaced
// through NextAddress as synthetic addresses that ReadString resolves
// against the cursor's own backing buffers.
type ValueCursor struct {
	values []Value
	pos    int
}

// Values builds a cursor positioned at the first slot.
func Values(values ...Value) *ValueCursor {
	return &ValueCursor{values: values}
}

// stringArgBase offsets synthetic string addresses so they cannot be
// mistaken for small handles or nil.
const stringArgBase uint64 = 1 << 32

// Remaining reports the number of unconsumed slots.
func (c *ValueCursor) Remaining() int { return len(c.values) - c.pos }

func (c *ValueCursor) next(want ...Kind) (Value, error) {
	if c.pos >= len(c.values) {
		return Value{}, fmt.Errorf("%w: slot %d", ErrArgumentExhausted, c.pos)
	}
	v := c.values[c.pos]
	for _, k := range want {
		if v.kind == k {
			c.pos++
			return v, nil
		}
	}
	return Value{}, fmt.Errorf("cfmt: argument %d is %s, want %s", c.pos, v.kind, want[0])
}

func (c *ValueCursor) NextInt() (int64, error) {
	v, err := c.next(KindInt)
	if err != nil {
		return 0, err
	}
	return int64(v.num), nil
}

func (c *ValueCursor) NextUint() (uint64, error) {
	v, err := c.next(KindUint)
	if err != nil {
		return 0, err
	}
	return v.num, nil
}

func (c *ValueCursor) NextByte() (byte, error) {
	v, err := c.next(KindByte)
	if err != nil {
		return 0, err
	}
	return byte(v.num), nil
}

// NextAddress serves both pointer conversions and string arguments:
// pointer slots return their value directly, string slots return a
// synthetic address resolvable through ReadString.
func (c *ValueCursor) NextAddress() (uint64, error) {
	pos := c.pos
	v, err := c.next(KindPointer, KindString)
	if err != nil {
		return 0, err
	}
	if v.kind == KindString {
		return stringArgBase + uint64(pos), nil
	}
	return v.num, nil
}

// ReadString implements Memory for the cursor's synthetic string
// addresses.
func (c *ValueCursor) ReadString(addr uint64, max int) ([]byte, error) {
	if addr < stringArgBase || addr-stringArgBase >= uint64(len(c.values)) {
		return nil, fmt.Errorf("cfmt: address %#x is outside the cursor arena", addr)
	}
	v := c.values[addr-stringArgBase]
	if v.kind != KindString {
		return nil, fmt.Errorf("cfmt: address %#x does not name a string slot", addr)
	}
	return boundedRead(v.str, max)
}
