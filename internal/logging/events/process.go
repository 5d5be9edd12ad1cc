package events

import "github.com/windrift/windrift/internal/logging"

type ProcessTracer struct{}

var Process = ProcessTracer{}

func (ProcessTracer) CloseRequested(handle uintptr) {
	logging.Trace("process.close", map[string]interface{}{"handle": handle})
}

func (ProcessTracer) Kill(pid uint32, ok bool) {
	logging.Trace("process.kill", map[string]interface{}{"pid": pid, "ok": ok})
}
