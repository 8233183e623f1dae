package errors

import (
	stderrs "errors"
	"fmt"
)

// Sentinels for use with errors.Is. Every typed error below reports itself as
// its matching sentinel.
var (
	ErrUnknownOption      = stderrs.New("unknown option")
	ErrMissingArgument    = stderrs.New("missing argument")
	ErrUnregisteredOption = stderrs.New("unregistered option")
)

// ParseError represents a generic parsing error produced by the CLI parser.
// It is intended for user-facing messages.
type ParseError struct {
	Msg string
	Err error
}

func (e ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e ParseError) Unwrap() error { return e.Err }

// UnknownOptionError indicates a token on the command line matched no registered identifier.
// Suggestion, if present, is a close identifier the user may have intended.
type UnknownOptionError struct{ Token, Suggestion string }

func (e UnknownOptionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("invalid option: %s (did you mean %q?)", e.Token, e.Suggestion)
	}
	return fmt.Sprintf("invalid option: %s", e.Token)
}

func (e UnknownOptionError) Is(target error) bool { return target == ErrUnknownOption }

// MissingArgumentError indicates an option that requires an argument was not given a usable one.
type MissingArgumentError struct{ Option string }

func (e MissingArgumentError) Error() string {
	return fmt.Sprintf("option %s requires an argument", e.Option)
}

func (e MissingArgumentError) Is(target error) bool { return target == ErrMissingArgument }

// UnregisteredOptionError is returned by queries naming an option that was never registered.
type UnregisteredOptionError struct{ Name string }

func (e UnregisteredOptionError) Error() string {
	return fmt.Sprintf("option %q is not registered", e.Name)
}

func (e UnregisteredOptionError) Is(target error) bool { return target == ErrUnregisteredOption }

// Helper constructors
func NewParseError(msg string) error             { return ParseError{Msg: msg} }
func WrapParseError(msg string, err error) error { return ParseError{Msg: msg, Err: err} }
func NewMissingArgument(option string) error     { return MissingArgumentError{Option: option} }
func NewUnregisteredOption(name string) error    { return UnregisteredOptionError{Name: name} }
func NewUnknownOption(token, suggestion string) error {
	return UnknownOptionError{Token: token, Suggestion: suggestion}
}
