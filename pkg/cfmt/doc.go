// Package cfmt renders C printf-style format strings for the ACPI
// interpreter's debug output path. It supports the subset
// %[flags][width][.precision]{d,i,u,o,x,X,c,s,p,%} with dynamic '*'
// width and precision, alternate-form base prefixes, and
// precision-bounded reads from possibly unterminated string buffers.
// Arguments are consumed one slot at a time, in format-string order,
// from a Cursor; string bytes are resolved through a Memory capability
// so the same renderer serves both a native variadic shim and the
// in-memory ValueCursor used in tests. Floating point conversions, %n,
// and length modifiers are rejected with ErrUnsupportedConversion.
package cfmt
