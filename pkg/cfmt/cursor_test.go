package cfmt_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acpiosl/pkg/cfmt"
)

func TestValueCursorSequentialReads(t *testing.T) {
	cursor := cfmt.Values(
		cfmt.Int(-4),
		cfmt.Uint(9),
		cfmt.Byte('Z'),
		cfmt.Pointer(0xfee0),
	)

	if got := cursor.Remaining(); got != 4 {
		t.Fatalf("Remaining = %d, want 4", got)
	}

	i, err := cursor.NextInt()
	if err != nil || i != -4 {
		t.Fatalf("NextInt = %d, %v", i, err)
	}
	u, err := cursor.NextUint()
	if err != nil || u != 9 {
		t.Fatalf("NextUint = %d, %v", u, err)
	}
	b, err := cursor.NextByte()
	if err != nil || b != 'Z' {
		t.Fatalf("NextByte = %q, %v", b, err)
	}
	p, err := cursor.NextAddress()
	if err != nil || p != 0xfee0 {
		t.Fatalf("NextAddress = %#x, %v", p, err)
	}

	if got := cursor.Remaining(); got != 0 {
		t.Fatalf("Remaining = %d, want 0", got)
	}
	if _, err := cursor.NextInt(); !errors.Is(err, cfmt.ErrArgumentExhausted) {
		t.Fatalf("NextInt after exhaustion = %v, want %v", err, cfmt.ErrArgumentExhausted)
	}
}

func TestValueCursorKindMismatch(t *testing.T) {
	cursor := cfmt.Values(cfmt.String("x"))

	if _, err := cursor.NextInt(); err == nil {
		t.Fatal("NextInt accepted a string slot")
	}
	// The failed read must not consume the slot.
	if got := cursor.Remaining(); got != 1 {
		t.Fatalf("Remaining = %d, want 1", got)
	}
}

func TestValueCursorStringMemory(t *testing.T) {
	tests := []struct {
		name    string
		value   cfmt.Value
		max     int
		want    string
		wantErr bool
	}{
		{
			name:  "terminated unbounded",
			value: cfmt.String("abc"),
			max:   -1,
			want:  "abc",
		},
		{
			name:  "terminator before cap",
			value: cfmt.String("ab"),
			max:   5,
			want:  "ab",
		},
		{
			name:  "cap before terminator",
			value: cfmt.String("hello"),
			max:   2,
			want:  "he",
		},
		{
			name:  "unterminated buffer at exact cap",
			value: cfmt.Bytes([]byte("abc")),
			max:   3,
			want:  "abc",
		},
		{
			name:    "unterminated buffer short of cap",
			value:   cfmt.Bytes([]byte("abc")),
			max:     5,
			wantErr: true,
		},
		{
			name:    "unterminated buffer unbounded",
			value:   cfmt.Bytes([]byte("abc")),
			max:     -1,
			wantErr: true,
		},
		{
			name:  "embedded terminator stops the scan",
			value: cfmt.Bytes([]byte("ab\x00cd")),
			max:   5,
			want:  "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := cfmt.Values(tt.value)
			addr, err := cursor.NextAddress()
			if err != nil {
				t.Fatalf("NextAddress: %v", err)
			}

			got, err := cursor.ReadString(addr, tt.max)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ReadString = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadString: %v", err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Fatalf("bytes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValueCursorRejectsForeignAddresses(t *testing.T) {
	cursor := cfmt.Values(cfmt.String("x"))

	if _, err := cursor.ReadString(0x1234, -1); err == nil {
		t.Fatal("ReadString resolved an address outside the arena")
	}
	if _, err := cursor.ReadString(1<<40, -1); err == nil {
		t.Fatal("ReadString resolved an out-of-range arena address")
	}
}

func TestValueCursorStringSlotAfterPointer(t *testing.T) {
	cursor := cfmt.Values(cfmt.Pointer(5), cfmt.String("ok"))

	if _, err := cursor.NextAddress(); err != nil {
		t.Fatalf("NextAddress: %v", err)
	}
	addr, err := cursor.NextAddress()
	if err != nil {
		t.Fatalf("NextAddress: %v", err)
	}
	got, err := cursor.ReadString(addr, -1)
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if string(got) != "ok" {
		t.Fatalf("ReadString = %q, want %q", got, "ok")
	}
}
