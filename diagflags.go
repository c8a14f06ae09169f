// Package diagflags is a runtime diagnostics policy controller for host
// applications: it tracks whether internal correctness checks are active,
// which named debug trace tags are enabled, and what happens when a
// correctness check fails or a fatal condition is raised.
//
// The policies live on a Controller. Hosts that want a single process-wide
// instance can use the package-level functions, which operate on the
// controller returned by Default.
package diagflags

// std backs the package-level functions.
var std = New()

// Default returns the package-level Controller.
func Default() *Controller {
	return std
}

// SetAssertionsEnabled calls Controller.SetAssertionsEnabled on the
// package-level controller.
func SetAssertionsEnabled(on bool) {
	std.SetAssertionsEnabled(on)
}

// AssertionsEnabled calls Controller.AssertionsEnabled on the package-level
// controller.
func AssertionsEnabled() bool {
	return std.AssertionsEnabled()
}

// EnableDebug calls Controller.EnableDebug on the package-level controller.
func EnableDebug(tag string) {
	std.EnableDebug(tag)
}

// DisableDebug calls Controller.DisableDebug on the package-level controller.
func DisableDebug(tag string) {
	std.DisableDebug(tag)
}

// IsDebugEnabled calls Controller.IsDebugEnabled on the package-level
// controller.
func IsDebugEnabled(tag string) bool {
	return std.IsDebugEnabled(tag)
}

// ResetDebug calls Controller.ResetDebug on the package-level controller.
func ResetDebug() {
	std.ResetDebug()
}

// SetDefaultExitAction calls Controller.SetDefaultExitAction on the
// package-level controller.
func SetDefaultExitAction(a ExitAction) {
	std.SetDefaultExitAction(a)
}

// DefaultExitAction calls Controller.DefaultExitAction on the package-level
// controller.
func DefaultExitAction() ExitAction {
	return std.DefaultExitAction()
}

// InvokeExitAction calls Controller.InvokeExitAction on the package-level
// controller.
func InvokeExitAction(code int) error {
	return std.InvokeExitAction(code)
}

// SetDefaultDebugAction calls Controller.SetDefaultDebugAction on the
// package-level controller.
func SetDefaultDebugAction(a DebugAction) {
	std.SetDefaultDebugAction(a)
}

// DefaultDebugAction calls Controller.DefaultDebugAction on the
// package-level controller.
func DefaultDebugAction() DebugAction {
	return std.DefaultDebugAction()
}
