package core

import (
	"github.com/kballard/go-shellquote"

	"github.com/trevin-j/iarglib/errors"
	"github.com/trevin-j/iarglib/internal/common"
)

// Built-in option names and identifiers.
const (
	HelpName    = "help"
	HelpIDs     = "-h|--help"
	VersionName = "version"
	VersionIDs  = "-v|--version"
	helpDesc    = "Display this help message"
	versionDesc = "Display the version of this application"
)

// registration is a registry slot. seq orders identifier precedence: a
// higher seq wins when two options claim the same identifier.
type registration struct {
	opt     Option
	seq     int
	builtin bool
}

// Arger declares options and parses one argument vector against them.
//
// Usage:
//
//	arger := core.New(os.Args)
//	arger.SetAppName("mytool")
//	arger.AddHelpOption("Reads files.")
//	arger.AddOption("file", "-f|--file", "The file to read", core.RequiresArgument)
//
//	ok, err := arger.Parse()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !ok {
//		return
//	}
//	file, _ := arger.OptionArgument("file")
type Arger struct {
	args     []string
	settings Settings

	appName string
	version string
	helpMsg string

	usingAutoHelp    bool
	usingAutoVersion bool

	options map[string]registration
	order   []string
	nextSeq int

	// Parse results.
	index     map[string]string
	passed    []string
	arguments map[string]string
	pending   []Callback
}

// New returns an Arger for args, laid out like os.Args: args[0] is the
// program name and is never parsed.
func New(args []string) *Arger {
	return NewWithSettings(args, DefaultSettings())
}

// NewWithSettings is New with explicit settings.
func NewWithSettings(args []string, settings Settings) *Arger {
	return &Arger{
		args:      append([]string(nil), args...),
		settings:  settings,
		options:   map[string]registration{},
		arguments: map[string]string{},
	}
}

// NewFromCommandLine splits line with POSIX shell quoting rules and returns
// an Arger for the resulting words. The first word is the program name.
func NewFromCommandLine(line string, settings Settings) (*Arger, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, errors.WrapParseError("invalid command line", err)
	}
	return NewWithSettings(words, settings), nil
}

// Args returns a copy of the raw argument vector, program name included.
func (a *Arger) Args() []string {
	return append([]string(nil), a.args...)
}

// Settings returns the current settings.
func (a *Arger) Settings() Settings { return a.settings }

// SetAppName sets the name shown by help and version output.
func (a *Arger) SetAppName(name string) { a.appName = name }

// SetContinueOnHelp controls whether Parse keeps going after printing help.
// It only affects the built-in help option.
func (a *Arger) SetContinueOnHelp(v bool) { a.settings.ContinueOnHelp = v }

// SetContinueOnVersion controls whether Parse keeps going after printing the
// version. It only affects the built-in version option.
func (a *Arger) SetContinueOnVersion(v bool) { a.settings.ContinueOnVersion = v }

// AddOption registers an option. identifiers holds the CLI tokens for the
// option separated by "|", e.g. "-f|--file". Registering an existing name
// replaces the previous declaration.
func (a *Arger) AddOption(name, identifiers, description string, arg ArgMode) {
	a.register(Option{
		Name:        name,
		Identifiers: common.SplitIdentifiers(identifiers),
		Description: description,
		Arg:         arg,
	})
}

// AddOptionWithCallback registers an event option. cb runs after a
// successful parse, once per occurrence of the option, in command-line order.
func (a *Arger) AddOptionWithCallback(name, identifiers, description string, arg ArgMode, cb Callback) {
	a.register(Option{
		Name:        name,
		Identifiers: common.SplitIdentifiers(identifiers),
		Description: description,
		Arg:         arg,
		Callback:    cb,
	})
}

// AddHelpOption registers the built-in help option (-h, --help). message is
// printed under the usage line.
func (a *Arger) AddHelpOption(message string) {
	a.usingAutoHelp = true
	a.helpMsg = message
	a.registerBuiltin(HelpName, HelpIDs, helpDesc, a.printHelp)
}

// AddVersionOption records version and registers the built-in version option
// (-v, --version).
func (a *Arger) AddVersionOption(version string) {
	a.usingAutoVersion = true
	a.version = version
	a.registerBuiltin(VersionName, VersionIDs, versionDesc, a.printVersion)
}

func (a *Arger) registerBuiltin(name, identifiers, description string, cb Callback) {
	a.AddOptionWithCallback(name, identifiers, description, NoArgument, cb)
	reg := a.options[name]
	reg.builtin = true
	a.options[name] = reg
}

func (a *Arger) register(opt Option) {
	if _, ok := a.options[opt.Name]; !ok {
		a.order = append(a.order, opt.Name)
	}
	a.nextSeq++
	a.options[opt.Name] = registration{opt: opt, seq: a.nextSeq}
}
