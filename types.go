package iarglib

import "github.com/trevin-j/iarglib/core"

// Arger holds option declarations and the results of parsing one argument
// vector. See New.
type Arger = core.Arger

// Option is a registered option declaration.
//
// Name is the caller's handle for the option and is what PassedOptions,
// OptionExists and OptionArgument work with. Identifiers are the literal
// tokens accepted on the command line.
type Option = core.Option

// View is the read-only side of an Arger. Callbacks receive one.
type View = core.View

// Callback is the function attached to an event option.
//
// Usage:
//
//	arger.AddOptionWithCallback("notify", "-n|--notify", "Send a notification",
//		iarglib.NoArgument, func(v iarglib.View) {
//			fmt.Println("notifying", v.AppName())
//		})
type Callback = core.Callback

// ArgMode says whether an option takes an argument.
type ArgMode = core.ArgMode

// NoArgument and RequiresArgument are the ArgMode values. An option that
// requires an argument consumes the next token, which must be non-empty and
// must not equal the name of a registered option.
const (
	NoArgument       = core.NoArgument
	RequiresArgument = core.RequiresArgument
)

// Settings configures an Arger.
type Settings = core.Settings

// ColorMode selects colored output for help and version text.
type ColorMode = core.ColorMode

const (
	ColorAuto   = core.ColorAuto
	ColorAlways = core.ColorAlways
	ColorNever  = core.ColorNever
)
