package events

import "github.com/windrift/windrift/internal/logging"

type SessionTracer struct{}

type SessionReason string

const (
	ReasonCommit    SessionReason = "commit"
	ReasonCancel    SessionReason = "cancel"
	ReasonFocusLoss SessionReason = "focus-loss"
)

var Session = SessionTracer{}

func (SessionTracer) Open(windows int, holdGesture bool) {
	logging.Trace("session.open", map[string]interface{}{"windows": windows, "hold": holdGesture})
}

func (SessionTracer) Close(reason SessionReason) {
	logging.Trace("session.close", map[string]interface{}{"reason": string(reason)})
}

func (SessionTracer) Navigate(cursor int) {
	logging.Trace("session.navigate", map[string]interface{}{"cursor": cursor})
}

func (SessionTracer) Filter(query string, matches int) {
	logging.Trace("session.filter", map[string]interface{}{"query": query, "matches": matches})
}

func (SessionTracer) Group(process string, windows int) {
	logging.Trace("session.group", map[string]interface{}{"process": process, "windows": windows})
}

func (SessionTracer) Ungroup(process string) {
	logging.Trace("session.ungroup", map[string]interface{}{"process": process})
}
