// Package iarglib is a small command-line option parser for Go.
//
// Options are declared up front with one or more literal identifiers
// ("-f|--file") and an optional requirement for a following argument. A
// single call to Parse walks the process arguments once, records which
// options appeared and with what value, and then runs the callbacks of any
// event options that were present, in command-line order.
//
// Built-in help and version options print immediately when seen and can
// stop parsing so the caller exits early.
package iarglib
