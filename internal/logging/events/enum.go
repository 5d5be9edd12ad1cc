package events

import "github.com/windrift/windrift/internal/logging"

type EnumTracer struct{}

var Enum = EnumTracer{}

func (EnumTracer) Snapshot(total, kept int) {
	logging.Trace("enum.snapshot", map[string]interface{}{"total": total, "kept": kept})
}

func (EnumTracer) Skipped(handle uintptr, reason string) {
	logging.Trace("enum.skipped", map[string]interface{}{"handle": handle, "reason": reason})
}
