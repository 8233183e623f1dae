package core

import (
	"io"
	"os"

	"github.com/trevin-j/iarglib/display"
	"github.com/trevin-j/iarglib/internal/common"
)

// ColorMode selects whether help and version output is colored.
type ColorMode int

const (
	// ColorAuto colors output only when it goes to a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Settings configures one Arger. Each instance owns its own copy.
type Settings struct {
	// ContinueOnHelp keeps parsing after the built-in help option printed help.
	// When false Parse returns false as soon as help is printed.
	ContinueOnHelp bool
	// ContinueOnVersion is the version counterpart of ContinueOnHelp. Help
	// still wins when it appears first and stops the scan.
	ContinueOnVersion bool
	// Output receives help and version text. Nil means os.Stdout.
	Output io.Writer
	Color  ColorMode
	// Width is the column budget for help output. Zero means detect from
	// Output, falling back to 80 columns.
	Width int
}

// DefaultSettings returns the settings used by New.
func DefaultSettings() Settings {
	return Settings{
		ContinueOnHelp:    true,
		ContinueOnVersion: true,
		Output:            os.Stdout,
		Color:             ColorAuto,
	}
}

func (s Settings) output() io.Writer {
	if s.Output == nil {
		return os.Stdout
	}
	return s.Output
}

func (s Settings) style() display.Style {
	out := s.output()
	st := display.Style{Width: s.Width}
	if st.Width == 0 {
		st.Width = common.TerminalWidth(out)
	}
	switch s.Color {
	case ColorAlways:
		st.Color = true
	case ColorNever:
		st.Color = false
	default:
		st.Color = os.Getenv("NO_COLOR") == "" && common.IsTerminal(out)
	}
	return st
}
