package cfmt

import (
	"math"
	"testing"
)

func TestScanFieldValueNegativeWidthMagnitude(t *testing.T) {
	value, ok, negative, next, err := scanFieldValue("*d", 0, Values(Int(-7)))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !ok || !negative || value != 7 || next != 1 {
		t.Fatalf("got value=%d ok=%v negative=%v next=%d, want 7 true true 1",
			value, ok, negative, next)
	}
}

func TestScanFieldValueMostNegativeWidthSaturates(t *testing.T) {
	value, ok, negative, _, err := scanFieldValue("*d", 0, Values(Int(math.MinInt64)))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !ok || !negative {
		t.Fatalf("got ok=%v negative=%v, want true true", ok, negative)
	}
	if value < 0 {
		t.Fatalf("width magnitude is negative: %d", value)
	}
	if value != math.MaxInt {
		t.Fatalf("width magnitude = %d, want saturation at %d", value, math.MaxInt)
	}
}
