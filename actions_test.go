package diagflags

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	diagflagserrors "github.com/leodido/diagflags/errors"
)

func TestExitActionDefault(t *testing.T) {
	c := New()

	assert.Equal(t, ExitTerminate, c.DefaultExitAction())
}

func TestExitActionRoundTrip(t *testing.T) {
	c := New()

	for _, action := range []ExitAction{ExitRaiseError, ExitTerminate} {
		c.SetDefaultExitAction(action)
		assert.Equal(t, action, c.DefaultExitAction())
	}
}

func TestDebugActionDefault(t *testing.T) {
	c := New()

	assert.Equal(t, DebugAsk, c.DefaultDebugAction())
}

func TestDebugActionRoundTrip(t *testing.T) {
	c := New()

	actions := []DebugAction{
		DebugAsk,
		DebugContinue,
		DebugAbort,
		DebugHalt,
		DebugRaiseError,
		DebugAttachGdb,
		DebugAttachLldb,
	}
	for _, action := range actions {
		c.SetDefaultDebugAction(action)
		assert.Equal(t, action, c.DefaultDebugAction())
	}
}

func TestExitActionString(t *testing.T) {
	assert.Equal(t, "raise", ExitRaiseError.String())
	assert.Equal(t, "exit", ExitTerminate.String())
	assert.Equal(t, "ExitAction(42)", ExitAction(42).String())
}

func TestDebugActionString(t *testing.T) {
	assert.Equal(t, "ask", DebugAsk.String())
	assert.Equal(t, "continue", DebugContinue.String())
	assert.Equal(t, "abort", DebugAbort.String())
	assert.Equal(t, "halt", DebugHalt.String())
	assert.Equal(t, "raise", DebugRaiseError.String())
	assert.Equal(t, "gdb", DebugAttachGdb.String())
	assert.Equal(t, "lldb", DebugAttachLldb.String())
	assert.Equal(t, "DebugAction(42)", DebugAction(42).String())
}

func TestParseExitAction(t *testing.T) {
	cases := map[string]ExitAction{
		"raise": ExitRaiseError,
		"RAISE": ExitRaiseError,
		"exit":  ExitTerminate,
		"Exit":  ExitTerminate,
	}
	for in, want := range cases {
		got, err := ParseExitAction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseExitActionUnknown(t *testing.T) {
	_, err := ParseExitAction("explode")
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagflagserrors.ErrUnknownAction))
	assert.Equal(t, `unknown exit action "explode"`, err.Error())
}

func TestParseDebugAction(t *testing.T) {
	cases := map[string]DebugAction{
		"ask":      DebugAsk,
		"continue": DebugContinue,
		"cont":     DebugContinue,
		"abort":    DebugAbort,
		"halt":     DebugHalt,
		"stop":     DebugHalt,
		"raise":    DebugRaiseError,
		"gdb":      DebugAttachGdb,
		"LLDB":     DebugAttachLldb,
	}
	for in, want := range cases {
		got, err := ParseDebugAction(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseDebugActionUnknown(t *testing.T) {
	_, err := ParseDebugAction("windbg")
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagflagserrors.ErrUnknownAction))
}
