// Package testsupport provides testing.T helpers shared by the package
// test suites.
package testsupport

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acpiosl/pkg/cfmt"
	"github.com/goliatone/go-acpiosl/pkg/fixture"
)

// MustLoadCases reads a case file, failing the test on any error.
func MustLoadCases(t *testing.T, path string) []fixture.Case {
	t.Helper()

	cases, err := fixture.Load(path)
	if err != nil {
		t.Fatalf("load cases: %v", err)
	}
	return cases
}

// RunCase renders one fixture case through conv and checks the expected
// output or error class.
func RunCase(t *testing.T, conv *cfmt.Converter, c fixture.Case) {
	t.Helper()

	cursor, err := c.Cursor()
	if err != nil {
		t.Fatalf("build cursor: %v", err)
	}

	var buf cfmt.Buffer
	renderErr := conv.Render(c.Format, cursor, &buf)

	wantErr, err := c.WantError()
	if err != nil {
		t.Fatalf("resolve expected error: %v", err)
	}
	if wantErr != nil {
		if !errors.Is(renderErr, wantErr) {
			t.Fatalf("render error = %v, want %v", renderErr, wantErr)
		}
		return
	}
	if renderErr != nil {
		t.Fatalf("render: %v", renderErr)
	}
	if diff := cmp.Diff(c.Want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
