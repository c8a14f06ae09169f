package diagflags

import (
	"fmt"
	"strings"

	diagflagserrors "github.com/leodido/diagflags/errors"
)

// ExitAction selects the response to an invoked fatal condition.
type ExitAction int32

const (
	// ExitRaiseError makes InvokeExitAction return a catchable
	// *errors.FatalError carrying the condition code.
	ExitRaiseError ExitAction = iota
	// ExitTerminate makes InvokeExitAction end the process.
	ExitTerminate
)

// ExitActionIDs maps exit actions to their textual representations.
//
// The map is in the format thediveo/enumflag expects, so it can back an enum
// flag directly.
var ExitActionIDs = map[ExitAction][]string{
	ExitRaiseError: {"raise"},
	ExitTerminate:  {"exit"},
}

func (a ExitAction) String() string {
	if names, ok := ExitActionIDs[a]; ok {
		return names[0]
	}

	return fmt.Sprintf("ExitAction(%d)", int32(a))
}

// ParseExitAction converts a textual representation into an ExitAction.
// Matching is case-insensitive.
func ParseExitAction(text string) (ExitAction, error) {
	for action, names := range ExitActionIDs {
		for _, name := range names {
			if strings.EqualFold(text, name) {
				return action, nil
			}
		}
	}

	return 0, &diagflagserrors.UnknownActionError{Kind: "exit action", Value: text}
}

// DebugAction selects the response to a failed correctness check.
type DebugAction int32

const (
	// DebugAsk prompts interactively whether to continue, abort, or attach
	// a debugger.
	DebugAsk DebugAction = iota
	// DebugContinue resumes execution as if the check had passed.
	DebugContinue
	// DebugAbort ends the process.
	DebugAbort
	// DebugHalt stops the process with a breakpoint trap so an already
	// attached debugger takes over.
	DebugHalt
	// DebugRaiseError turns the failure into a catchable
	// *errors.AssertionError.
	DebugRaiseError
	// DebugAttachGdb spawns gdb attached to the current process.
	DebugAttachGdb
	// DebugAttachLldb spawns lldb attached to the current process.
	DebugAttachLldb
)

// DebugActionIDs maps debug actions to their textual representations, in the
// format thediveo/enumflag expects.
var DebugActionIDs = map[DebugAction][]string{
	DebugAsk:        {"ask"},
	DebugContinue:   {"continue", "cont"},
	DebugAbort:      {"abort"},
	DebugHalt:       {"halt", "stop"},
	DebugRaiseError: {"raise"},
	DebugAttachGdb:  {"gdb"},
	DebugAttachLldb: {"lldb"},
}

func (a DebugAction) String() string {
	if names, ok := DebugActionIDs[a]; ok {
		return names[0]
	}

	return fmt.Sprintf("DebugAction(%d)", int32(a))
}

// ParseDebugAction converts a textual representation into a DebugAction.
// Matching is case-insensitive.
func ParseDebugAction(text string) (DebugAction, error) {
	for action, names := range DebugActionIDs {
		for _, name := range names {
			if strings.EqualFold(text, name) {
				return action, nil
			}
		}
	}

	return 0, &diagflagserrors.UnknownActionError{Kind: "debug action", Value: text}
}

// SetDefaultExitAction configures the response to subsequent
// InvokeExitAction calls. Every ExitAction value is a legal target.
func (c *Controller) SetDefaultExitAction(a ExitAction) {
	c.exitAction.Store(int32(a))
}

// DefaultExitAction returns the currently configured exit action.
func (c *Controller) DefaultExitAction() ExitAction {
	return ExitAction(c.exitAction.Load())
}

// SetDefaultDebugAction configures the response to subsequent assertion
// failures. Every DebugAction value is a legal target.
func (c *Controller) SetDefaultDebugAction(a DebugAction) {
	c.debugAction.Store(int32(a))
}

// DefaultDebugAction returns the currently configured debug action.
func (c *Controller) DefaultDebugAction() DebugAction {
	return DebugAction(c.debugAction.Load())
}
