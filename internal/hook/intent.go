// Package hook turns raw system-wide key events into the small closed set
// of semantic intents the orchestrator consumes. The decision logic is a
// pure state machine so the gesture behavior is testable without an OS
// hook.
package hook

// Intent is a semantic event raised by the interceptor or a presenter.
type Intent int

const (
	None Intent = iota
	OpenRequested
	NavigateNext
	NavigatePrevious
	GroupByProcess
	UngroupFromProcess
	CloseWindow
	StopProcess
	EnterSearch
	OpenSettings
	DismissSettings
	CopyTitle
	CommitSelection
	Cancel
)

var intentNames = map[Intent]string{
	None:               "none",
	OpenRequested:      "open-requested",
	NavigateNext:       "navigate-next",
	NavigatePrevious:   "navigate-previous",
	GroupByProcess:     "group-by-process",
	UngroupFromProcess: "ungroup-from-process",
	CloseWindow:        "close-window",
	StopProcess:        "stop-process",
	EnterSearch:        "enter-search",
	OpenSettings:       "open-settings",
	DismissSettings:    "dismiss-settings",
	CopyTitle:          "copy-title",
	CommitSelection:    "commit-selection",
	Cancel:             "cancel",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
