package display

import "github.com/fatih/color"

// Entry describes one registered option as it appears in help output.
type Entry struct {
	Name        string
	Identifiers []string
	Description string
	TakesArg    bool
}

// Page holds everything the help and version builders render. The parser
// fills it from its registry; display never sees parser internals.
type Page struct {
	AppName string
	Version string
	Message string
	Entries []Entry
}

// Style controls terminal presentation.
type Style struct {
	Color bool
	// Width is the number of columns available. Zero disables wrapping.
	Width int
}

var (
	ansiHeading = []color.Attribute{color.Bold, color.Underline}
	ansiName    = []color.Attribute{color.Bold}
)

// paint applies attrs to text when the style has color enabled. Each call
// builds its own *color.Color so the package-level color.NoColor switch is
// never touched.
func (s Style) paint(text string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if s.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

func appLabel(name string) string {
	if name == "" {
		return "<app>"
	}
	return name
}
