package core

// ArgMode says whether an option consumes the token that follows it.
type ArgMode int

const (
	NoArgument ArgMode = iota
	RequiresArgument
)

func (m ArgMode) String() string {
	if m == RequiresArgument {
		return "RequiresArgument"
	}
	return "NoArgument"
}

// Callback is run for an event option that appeared on the command line.
// It receives read-only access to the parser.
type Callback func(View)

// Option is a registered option declaration. It is not modified after
// registration; parsed argument values are kept by the Arger.
type Option struct {
	Name        string
	Identifiers []string
	Description string
	Arg         ArgMode
	Callback    Callback
}

// IsEvent reports whether the option carries a callback.
func (o Option) IsEvent() bool { return o.Callback != nil }

// View is the read-only side of an Arger, handed to callbacks.
type View interface {
	PassedOptions() []string
	AllOptions() []string
	OptionExists(name string) bool
	OptionArgument(name string) (string, error)
	Option(name string) (Option, bool)
	AppName() string
	AppVersion() string
	HelpMessage() string
}
