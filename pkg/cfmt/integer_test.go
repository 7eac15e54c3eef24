package cfmt_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acpiosl/pkg/cfmt"
)

// The integer path has most of the edge-case density: base prefixes
// interacting with precision, zero padding interacting with signs, and
// the one legitimate empty digit sequence.
func TestFormatIntegerEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []cfmt.Value
		want   string
	}{
		{
			name:   "octal zero with zero precision renders empty",
			format: "%.0o",
			args:   []cfmt.Value{cfmt.Uint(0)},
			want:   "",
		},
		{
			name:   "decimal zero with zero precision keeps its digit",
			format: "%.0d",
			args:   []cfmt.Value{cfmt.Int(0)},
			want:   "0",
		},
		{
			name:   "hex zero with zero precision keeps its digit",
			format: "%.0x",
			args:   []cfmt.Value{cfmt.Uint(0)},
			want:   "0",
		},
		{
			name:   "alternate octal zero",
			format: "%#o",
			args:   []cfmt.Value{cfmt.Uint(0)},
			want:   "0",
		},
		{
			name:   "alternate octal zero with zero precision",
			format: "%#.0o",
			args:   []cfmt.Value{cfmt.Uint(0)},
			want:   "0",
		},
		{
			name:   "alternate octal with wide precision",
			format: "%#.3o",
			args:   []cfmt.Value{cfmt.Uint(8)},
			want:   "010",
		},
		{
			name:   "alternate hex zero",
			format: "%#x",
			args:   []cfmt.Value{cfmt.Uint(0)},
			want:   "0x0",
		},
		{
			name:   "alternate hex prefix counts toward width",
			format: "%#5x",
			args:   []cfmt.Value{cfmt.Uint(255)},
			want:   " 0xff",
		},
		{
			name:   "zero pad fills before alternate prefix",
			format: "%#05x",
			args:   []cfmt.Value{cfmt.Uint(255)},
			want:   "00xff",
		},
		{
			name:   "hex precision zero fills",
			format: "%.5x",
			args:   []cfmt.Value{cfmt.Uint(255)},
			want:   "000ff",
		},
		{
			name:   "zero pad fills before the minus sign",
			format: "%05d",
			args:   []cfmt.Value{cfmt.Int(-5)},
			want:   "000-5",
		},
		{
			name:   "left justified zero pad fills on the right",
			format: "%-05d",
			args:   []cfmt.Value{cfmt.Int(3)},
			want:   "30000",
		},
		{
			name:   "zero pad with precision",
			format: "%08.3d",
			args:   []cfmt.Value{cfmt.Int(5)},
			want:   "00000005",
		},
		{
			name:   "space flag with precision",
			format: "% .3d",
			args:   []cfmt.Value{cfmt.Int(5)},
			want:   " 005",
		},
		{
			name:   "smallest signed value",
			format: "%d",
			args:   []cfmt.Value{cfmt.Int(math.MinInt64)},
			want:   "-9223372036854775808",
		},
		{
			name:   "largest unsigned value",
			format: "%u",
			args:   []cfmt.Value{cfmt.Uint(math.MaxUint64)},
			want:   "18446744073709551615",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfmt.Format(tt.format, cfmt.Values(tt.args...))
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
