package diagflags

import "runtime"

// SetAssertionsEnabled turns the host's internal correctness checks on or
// off.
func (c *Controller) SetAssertionsEnabled(on bool) {
	c.assertions.Store(on)
}

// AssertionsEnabled reports whether internal correctness checks are active.
//
// Hot-path checks consult this before evaluating expensive conditions.
// Note that Go has no conditional compilation at call sites: the condition
// expression passed to Assert is always evaluated by the caller; only its
// consequences are skipped when assertions are disabled. Guard expensive
// conditions with AssertionsEnabled directly.
func (c *Controller) AssertionsEnabled() bool {
	return c.assertions.Load()
}

// Assert dispatches an assertion failure when cond is false and assertions
// are enabled. It returns nil when cond holds, when assertions are disabled,
// or when the configured debug action resumes execution; it returns a
// catchable error when the configured debug action raises one.
//
// The failure is reported with the caller's file and line.
func (c *Controller) Assert(cond bool, condition string) error {
	if cond || !c.AssertionsEnabled() {
		return nil
	}

	f := Failure{Condition: condition}
	if _, file, line, ok := runtime.Caller(1); ok {
		f.File = file
		f.Line = line
	}

	return c.HandleAssertionFailure(f)
}
