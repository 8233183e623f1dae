package common

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IdentifierSeparator separates the aliases of one option in an identifier spec.
const IdentifierSeparator = "|"

// DefaultWidth is used when the output is not a terminal or its size is unknown.
const DefaultWidth = 80

// SplitIdentifiers splits an identifier spec such as "-f|--file" into its tokens.
// Empty segments are kept: "" yields [""] and "-a||-b" yields ["-a", "", "-b"].
func SplitIdentifiers(spec string) []string {
	return strings.Split(spec, IdentifierSeparator)
}

// ArgsIndexOf returns the index of the first occurrence of s in args, or -1 if not found.
func ArgsIndexOf(args []string, s string) int {
	for i, arg := range args {
		if arg == s {
			return i
		}
	}
	return -1
}

// Contains reports whether s occurs in args.
func Contains(args []string, s string) bool {
	return ArgsIndexOf(args, s) >= 0
}

// fder is satisfied by *os.File and anything else backed by a descriptor.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth returns the column count of the terminal behind w, or
// DefaultWidth when w is not a terminal.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !IsTerminal(w) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
