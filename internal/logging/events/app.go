package events

import "github.com/windrift/windrift/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (AppTracer) SettingsReloaded() {
	logging.Trace("app.settings.reloaded", nil)
}

func (AppTracer) ClipboardFailed(err error) {
	logging.Trace("app.clipboard.failed", map[string]interface{}{"error": err.Error()})
}
