package events

import "github.com/windrift/windrift/internal/logging"

type ActivateTracer struct{}

var Activate = ActivateTracer{}

func (ActivateTracer) Begin(handle uintptr, title string) {
	logging.Trace("activate.begin", map[string]interface{}{"handle": handle, "title": title})
}

func (ActivateTracer) Rung(name string, foreground bool) {
	logging.Trace("activate.rung", map[string]interface{}{"rung": name, "foreground": foreground})
}

func (ActivateTracer) Recovered(value interface{}) {
	logging.Trace("activate.recovered", map[string]interface{}{"panic": value})
}

func (ActivateTracer) Done(handle uintptr, foreground bool) {
	logging.Trace("activate.done", map[string]interface{}{"handle": handle, "foreground": foreground})
}
