// Package debugger spawns an external debugger attached to the current
// process.
package debugger

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Tool identifies a supported external debugger.
type Tool string

const (
	Gdb  Tool = "gdb"
	Lldb Tool = "lldb"
)

// Attach spawns tool attached to pid, wired to the parent's terminal, and
// waits until it detaches or exits.
func Attach(tool Tool, pid int) error {
	var cmd *exec.Cmd

	switch tool {
	case Gdb:
		cmd = exec.Command("gdb", "-nw", fmt.Sprintf("/proc/%d/exe", pid), strconv.Itoa(pid))
	case Lldb:
		cmd = exec.Command("lldb", "-p", strconv.Itoa(pid))
	default:
		return fmt.Errorf("unsupported debugger %q", tool)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("attaching %s to pid %d: %w", tool, pid, err)
	}

	return nil
}
