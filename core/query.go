package core

import (
	"github.com/trevin-j/iarglib/errors"
	"github.com/trevin-j/iarglib/internal/common"
)

var _ View = (*Arger)(nil)

// PassedOptions returns the names of the options found by Parse, in
// command-line order. An option passed twice appears twice.
func (a *Arger) PassedOptions() []string {
	return append([]string(nil), a.passed...)
}

// AllOptions returns every registered option name in registration order.
func (a *Arger) AllOptions() []string {
	return append([]string(nil), a.order...)
}

// OptionExists reports whether the named option was passed.
func (a *Arger) OptionExists(name string) bool {
	return common.Contains(a.passed, name)
}

// OptionArgument returns the argument given to the named option. It is empty
// when the option was not passed or takes no argument, and an
// UnregisteredOptionError when name was never registered.
func (a *Arger) OptionArgument(name string) (string, error) {
	if _, ok := a.options[name]; !ok {
		return "", errors.NewUnregisteredOption(name)
	}
	return a.arguments[name], nil
}

// Option returns the declaration registered under name.
func (a *Arger) Option(name string) (Option, bool) {
	reg, ok := a.options[name]
	if !ok {
		return Option{}, false
	}
	opt := reg.opt
	opt.Identifiers = append([]string(nil), opt.Identifiers...)
	return opt, true
}

func (a *Arger) AppName() string     { return a.appName }
func (a *Arger) AppVersion() string  { return a.version }
func (a *Arger) HelpMessage() string { return a.helpMsg }
