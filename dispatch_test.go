package diagflags

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	diagflagserrors "github.com/leodido/diagflags/errors"
	"github.com/leodido/diagflags/internal/debugger"
)

func failure() Failure {
	return Failure{
		Condition: "len(queue) > 0",
		File:      "queue.go",
		Line:      42,
		Message:   "pop on empty queue",
	}
}

func TestDispatchContinue(t *testing.T) {
	c := New()
	c.SetDefaultDebugAction(DebugContinue)

	assert.NoError(t, c.HandleAssertionFailure(failure()))
}

func TestDispatchRaise(t *testing.T) {
	c := New()
	c.SetDefaultDebugAction(DebugRaiseError)

	err := c.HandleAssertionFailure(failure())
	require.Error(t, err)

	var aerr *diagflagserrors.AssertionError
	require.True(t, errors.As(err, &aerr))
	assert.Equal(t, "len(queue) > 0", aerr.Condition)
	assert.Equal(t, "queue.go", aerr.File)
	assert.Equal(t, 42, aerr.Line)
	assert.True(t, errors.Is(err, diagflagserrors.ErrAssertionViolation))
}

func TestDispatchAbort(t *testing.T) {
	c := New()
	c.SetDefaultDebugAction(DebugAbort)

	exitCode := -1
	c.exit = func(code int) {
		exitCode = code
	}

	assert.NoError(t, c.HandleAssertionFailure(failure()))
	assert.Equal(t, 1, exitCode)
}

func TestDispatchHalt(t *testing.T) {
	c := New()
	c.SetDefaultDebugAction(DebugHalt)

	halted := false
	c.halt = func() {
		halted = true
	}

	assert.NoError(t, c.HandleAssertionFailure(failure()))
	assert.True(t, halted)
}

func TestDispatchAttach(t *testing.T) {
	cases := map[DebugAction]debugger.Tool{
		DebugAttachGdb:  debugger.Gdb,
		DebugAttachLldb: debugger.Lldb,
	}

	for action, want := range cases {
		c := New()
		c.SetDefaultDebugAction(action)

		var gotTool debugger.Tool
		gotPid := -1
		c.attach = func(tool debugger.Tool, pid int) error {
			gotTool = tool
			gotPid = pid

			return nil
		}

		assert.NoError(t, c.HandleAssertionFailure(failure()))
		assert.Equal(t, want, gotTool)
		assert.Equal(t, os.Getpid(), gotPid)
	}
}

func TestDispatchAskContinue(t *testing.T) {
	out := &strings.Builder{}
	c := New(WithPrompt(strings.NewReader("c\n"), out))

	assert.NoError(t, c.HandleAssertionFailure(failure()))
	assert.Contains(t, out.String(), "len(queue) > 0")
	assert.Contains(t, out.String(), "(C)ontinue, (A)bort, (G)db, (L)ldb?")
}

func TestDispatchAskAbort(t *testing.T) {
	out := &strings.Builder{}
	c := New(WithPrompt(strings.NewReader("A\n"), out))

	exitCode := -1
	c.exit = func(code int) {
		exitCode = code
	}

	assert.NoError(t, c.HandleAssertionFailure(failure()))
	assert.Equal(t, 1, exitCode)
}

func TestDispatchAskRetriesOnGarbage(t *testing.T) {
	out := &strings.Builder{}
	c := New(WithPrompt(strings.NewReader("what\n\nC\n"), out))

	assert.NoError(t, c.HandleAssertionFailure(failure()))
	assert.Equal(t, 3, strings.Count(out.String(), "(C)ontinue"))
}

func TestDispatchAskDebugger(t *testing.T) {
	out := &strings.Builder{}
	c := New(WithPrompt(strings.NewReader("g\n"), out))

	var gotTool debugger.Tool
	c.attach = func(tool debugger.Tool, pid int) error {
		gotTool = tool

		return nil
	}

	assert.NoError(t, c.HandleAssertionFailure(failure()))
	assert.Equal(t, debugger.Gdb, gotTool)
}

func TestDispatchAskEOFAborts(t *testing.T) {
	c := New(WithPrompt(strings.NewReader(""), &strings.Builder{}))

	exitCode := -1
	c.exit = func(code int) {
		exitCode = code
	}

	assert.NoError(t, c.HandleAssertionFailure(failure()))
	assert.Equal(t, 1, exitCode)
}

func TestDispatchLogsFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	c := New(WithLogger(zap.New(core)))
	c.SetDefaultDebugAction(DebugContinue)

	require.NoError(t, c.HandleAssertionFailure(failure()))

	entries := logs.FilterMessage("assertion violation").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "len(queue) > 0", entries[0].ContextMap()["condition"])
	assert.Equal(t, int64(42), entries[0].ContextMap()["line"])
}
