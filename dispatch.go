package diagflags

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"

	diagflagserrors "github.com/leodido/diagflags/errors"
	"github.com/leodido/diagflags/internal/debugger"
)

// Failure describes a failed correctness check: the condition that did not
// hold, where it was checked, and an optional message from the call site.
type Failure struct {
	Condition string
	File      string
	Line      int
	Message   string
}

// HandleAssertionFailure reacts to f according to the currently configured
// debug action.
//
// It returns nil when execution may resume (DebugContinue, a debugger attach,
// or an interactive choice to continue) and a catchable
// *errors.AssertionError when DebugRaiseError is configured. DebugAbort ends
// the process; DebugHalt stops it with a breakpoint trap. The failure is
// reported through the controller's logger before any action is taken.
func (c *Controller) HandleAssertionFailure(f Failure) error {
	c.logger.Error("assertion violation",
		zap.String("condition", f.Condition),
		zap.String("file", f.File),
		zap.Int("line", f.Line),
		zap.String("message", f.Message),
	)

	switch a := c.DefaultDebugAction(); a {
	case DebugContinue:
		return nil
	case DebugRaiseError:
		return &diagflagserrors.AssertionError{
			Condition: f.Condition,
			File:      f.File,
			Line:      f.Line,
			Message:   f.Message,
		}
	case DebugAbort:
		c.exit(1)

		return nil
	case DebugHalt:
		c.halt()

		return nil
	case DebugAttachGdb:
		return c.attach(debugger.Gdb, os.Getpid())
	case DebugAttachLldb:
		return c.attach(debugger.Lldb, os.Getpid())
	case DebugAsk:
		return c.ask(f)
	default:
		panic(fmt.Sprintf("unhandled debug action %d", int32(a)))
	}
}

// ask prompts on the controller's prompt endpoints until it gets a usable
// answer. EOF on the prompt reader behaves like abort.
func (c *Controller) ask(f Failure) error {
	fmt.Fprintf(c.out, "assertion violation: %s (%s:%d)\n", f.Condition, f.File, f.Line)
	if f.Message != "" {
		fmt.Fprintln(c.out, f.Message)
	}

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "(C)ontinue, (A)bort, (G)db, (L)ldb? ")
		if !scanner.Scan() {
			c.exit(1)

			return nil
		}

		switch scanner.Text() {
		case "C", "c":
			return nil
		case "A", "a":
			c.exit(1)

			return nil
		case "G", "g":
			return c.attach(debugger.Gdb, os.Getpid())
		case "L", "l":
			return c.attach(debugger.Lldb, os.Getpid())
		}
	}
}
