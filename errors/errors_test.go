package errors

import (
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownOptionError_Message(t *testing.T) {
	assert.Equal(t, "invalid option: -x", NewUnknownOption("-x", "").Error())
	assert.Equal(t, `invalid option: --flie (did you mean "--file"?)`, NewUnknownOption("--flie", "--file").Error())
}

func TestMissingArgumentError_Message(t *testing.T) {
	assert.Equal(t, "option file requires an argument", NewMissingArgument("file").Error())
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("parse: %w", NewMissingArgument("file"))
	assert.True(t, stderrs.Is(err, ErrMissingArgument))
	assert.False(t, stderrs.Is(err, ErrUnknownOption))

	var me MissingArgumentError
	assert.True(t, stderrs.As(err, &me))
	assert.Equal(t, "file", me.Option)

	assert.True(t, stderrs.Is(NewUnknownOption("-x", ""), ErrUnknownOption))
	assert.True(t, stderrs.Is(NewUnregisteredOption("nope"), ErrUnregisteredOption))
}

func TestParseError_Unwrap(t *testing.T) {
	cause := stderrs.New("boom")
	err := WrapParseError("invalid command line", cause)
	assert.Equal(t, "invalid command line: boom", err.Error())
	assert.True(t, stderrs.Is(err, cause))
	assert.Equal(t, "plain", NewParseError("plain").Error())
}
