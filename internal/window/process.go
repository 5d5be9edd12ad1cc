package window

import "github.com/windrift/windrift/internal/logging/events"

// Controller performs the two process-level actions a switcher offers:
// asking a window to close and stopping its process outright.
type Controller struct {
	ops ProcessOps
}

// NewController wires a controller to platform process operations.
func NewController(ops ProcessOps) *Controller {
	return &Controller{ops: ops}
}

// CloseWindow sends a fire-and-forget close request. The window decides
// whether to honor it; there is no wait for exit.
func (c *Controller) CloseWindow(w *Window) {
	if w == nil {
		return
	}
	events.Process.CloseRequested(uintptr(w.Handle))
	c.ops.PostClose(w.Handle)
}

// StopProcess terminates the owning process tree. Returns false when the
// process cannot be opened with sufficient rights; never panics.
func (c *Controller) StopProcess(w *Window) bool {
	if w == nil {
		return false
	}
	ok := c.ops.KillProcessTree(w.PID)
	events.Process.Kill(w.PID, ok)
	return ok
}
