package diagflags

import (
	"fmt"

	"go.uber.org/zap"

	diagflagserrors "github.com/leodido/diagflags/errors"
)

// InvokeExitAction triggers the fatal-condition path for the given code.
//
// With ExitRaiseError configured it returns a *errors.FatalError carrying
// code verbatim. Any integer is accepted the same way: there is no registry
// of known codes and no validation step.
//
// With ExitTerminate configured it ends the process with code as the exit
// status and does not return.
//
// Every call produces one of these two outcomes; an invocation is never
// silently dropped.
func (c *Controller) InvokeExitAction(code int) error {
	switch a := c.DefaultExitAction(); a {
	case ExitRaiseError:
		return &diagflagserrors.FatalError{Code: code}
	case ExitTerminate:
		c.logger.Error("terminating on fatal condition", zap.Int("code", code))
		c.exit(code)

		// os.Exit does not return; reachable only with a test exit seam.
		return nil
	default:
		panic(fmt.Sprintf("unhandled exit action %d", int32(a)))
	}
}
