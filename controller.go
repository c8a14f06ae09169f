package diagflags

import (
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/leodido/diagflags/internal/debugger"
)

// Controller holds the diagnostics policies of a host application: whether
// internal correctness checks run, which debug trace tags are enabled, what
// happens when a fatal condition is invoked, and what happens when a
// correctness check fails.
//
// A single Controller is meant to be owned by the host runtime and shared
// across every call site, including hot paths. All methods are safe for
// concurrent use. Tests should construct their own instances with New
// instead of sharing the package-level one.
type Controller struct {
	assertions  atomic.Bool
	exitAction  atomic.Int32
	debugAction atomic.Int32

	mu   sync.RWMutex
	tags map[string]struct{}

	logger *zap.Logger

	// Prompt endpoints for the Ask debug action.
	in  io.Reader
	out io.Writer

	// Seams for the terminal paths, replaced in tests.
	exit   func(code int)
	halt   func()
	attach func(tool debugger.Tool, pid int) error
}

// Option configures a Controller at construction time.
type Option func(*Controller)

// WithLogger sets the logger the controller reports assertion failures and
// fatal conditions to. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPrompt sets the reader and writer the Ask debug action interacts with.
// The defaults are os.Stdin and os.Stderr.
func WithPrompt(in io.Reader, out io.Writer) Option {
	return func(c *Controller) {
		if in != nil {
			c.in = in
		}
		if out != nil {
			c.out = out
		}
	}
}

// New creates a Controller with assertions enabled, exit action
// ExitTerminate, and debug action DebugAsk.
func New(options ...Option) *Controller {
	c := &Controller{
		logger: zap.NewNop(),
		in:     os.Stdin,
		out:    os.Stderr,
		exit:   os.Exit,
		halt:   runtime.Breakpoint,
		attach: debugger.Attach,
	}
	c.assertions.Store(true)
	c.exitAction.Store(int32(ExitTerminate))
	c.debugAction.Store(int32(DebugAsk))

	for _, o := range options {
		o(c)
	}

	return c
}
