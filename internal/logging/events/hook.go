package events

import "github.com/windrift/windrift/internal/logging"

type HookTracer struct{}

var Hook = HookTracer{}

func (HookTracer) Installed() {
	logging.Trace("hook.installed", nil)
}

func (HookTracer) InstallFailed(err error) {
	logging.Trace("hook.install.failed", map[string]interface{}{"error": err.Error()})
}

func (HookTracer) Removed() {
	logging.Trace("hook.removed", nil)
}

func (HookTracer) Intent(intent string) {
	logging.Trace("hook.intent", map[string]interface{}{"intent": intent})
}

func (HookTracer) Dropped(total uint64) {
	logging.Trace("hook.dropped", map[string]interface{}{"total": total})
}

func (HookTracer) FallbackHotkey(registered bool) {
	logging.Trace("hook.fallback", map[string]interface{}{"registered": registered})
}
