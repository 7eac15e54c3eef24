// Package fixture loads YAML conformance cases for the cfmt renderer.
// Case files drive both the package test suites and the cfmt CLI's
// batch mode, so expected behaviour is written down once.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-acpiosl/pkg/cfmt"
)

// Document is the top-level shape of a case file.
type Document struct {
	Cases []Case `yaml:"cases"`
}

// Case is one format/arguments/expectation triple.
type Case struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Args   []Arg  `yaml:"args"`
	Want   string `yaml:"want"`

	// Error names the expected failure class: malformed, unsupported,
	// precision, encoding, or exhausted. Empty means the render must
	// succeed and produce Want.
	Error string `yaml:"error"`
}

// Arg tags a single argument slot, written in YAML as a one-key map
// such as {int: -5} or {string: hello}. Bytes values are stored with no
// terminator for bounded-read cases.
type Arg struct {
	Int     *int64  `yaml:"int"`
	Uint    *uint64 `yaml:"uint"`
	Byte    *uint8  `yaml:"byte"`
	Pointer *uint64 `yaml:"pointer"`
	String  *string `yaml:"string"`
	Bytes   *string `yaml:"bytes"`
}

// Load reads and decodes a case file.
func Load(path string) ([]Case, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("fixture: case file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	cases, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("fixture: file %s: %w", path, err)
	}
	return cases, nil
}

// Decode parses case file bytes and validates every case up front so a
// bad fixture fails loudly rather than on its first use.
func Decode(data []byte) ([]Case, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parse cases: %w", err)
	}
	if len(doc.Cases) == 0 {
		return nil, errors.New("fixture: no cases defined")
	}
	for i, c := range doc.Cases {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("fixture: case %d has no name", i)
		}
		if _, err := c.values(); err != nil {
			return nil, fmt.Errorf("fixture: case %q: %w", c.Name, err)
		}
		if _, err := c.WantError(); err != nil {
			return nil, fmt.Errorf("fixture: case %q: %w", c.Name, err)
		}
	}
	return doc.Cases, nil
}

// Cursor builds a fresh argument cursor for one run of the case.
func (c Case) Cursor() (*cfmt.ValueCursor, error) {
	vals, err := c.values()
	if err != nil {
		return nil, err
	}
	return cfmt.Values(vals...), nil
}

// WantError resolves the case's error class to its cfmt sentinel. A
// nil first return means the case expects success.
func (c Case) WantError() (error, error) {
	switch strings.ToLower(strings.TrimSpace(c.Error)) {
	case "":
		return nil, nil
	case "malformed":
		return cfmt.ErrMalformedFormat, nil
	case "unsupported":
		return cfmt.ErrUnsupportedConversion, nil
	case "precision":
		return cfmt.ErrInvalidPrecision, nil
	case "encoding":
		return cfmt.ErrInvalidEncoding, nil
	case "exhausted":
		return cfmt.ErrArgumentExhausted, nil
	default:
		return nil, fmt.Errorf("unknown error class %q", c.Error)
	}
}

func (c Case) values() ([]cfmt.Value, error) {
	out := make([]cfmt.Value, 0, len(c.Args))
	for i, a := range c.Args {
		v, err := a.value()
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (a Arg) value() (cfmt.Value, error) {
	set := 0
	var v cfmt.Value
	if a.Int != nil {
		set++
		v = cfmt.Int(*a.Int)
	}
	if a.Uint != nil {
		set++
		v = cfmt.Uint(*a.Uint)
	}
	if a.Byte != nil {
		set++
		v = cfmt.Byte(*a.Byte)
	}
	if a.Pointer != nil {
		set++
		v = cfmt.Pointer(*a.Pointer)
	}
	if a.String != nil {
		set++
		v = cfmt.String(*a.String)
	}
	if a.Bytes != nil {
		set++
		v = cfmt.Bytes([]byte(*a.Bytes))
	}
	if set != 1 {
		return cfmt.Value{}, fmt.Errorf("want exactly one of int/uint/byte/pointer/string/bytes, got %d", set)
	}
	return v, nil
}
