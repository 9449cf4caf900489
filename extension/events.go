// events.go defines the event types for extension notifications.
//
// Separated from extension.go to isolate the event system. Events enable
// extensions to react to rule file changes without modifying core logic.
//
// Design: Events are fire-and-forget notifications, not approval requests.
// Extensions cannot block or veto operations via events - they observe
// after the fact. This keeps the core system simple and predictable.

package extension

// EventType identifies the kind of event.
type EventType string

const (
	EventRulesLoad   EventType = "rules:load"
	EventRulesReload EventType = "rules:reload"
	EventRulesInit   EventType = "rules:init"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
	EventPath() string
}

// RulesLoadEvent is fired after the rule file is first loaded.
type RulesLoadEvent struct {
	Path   string // rule file path
	Rules  int    // rules loaded
	Owners int    // distinct owners
}

func (e RulesLoadEvent) EventType() EventType { return EventRulesLoad }
func (e RulesLoadEvent) EventPath() string    { return e.Path }

// RulesReloadEvent is fired after a watched rule file is reloaded.
type RulesReloadEvent struct {
	Path   string
	Rules  int
	Owners int
}

func (e RulesReloadEvent) EventType() EventType { return EventRulesReload }
func (e RulesReloadEvent) EventPath() string    { return e.Path }

// RulesInitEvent is fired after a starter rule file is scaffolded.
type RulesInitEvent struct {
	Path string
}

func (e RulesInitEvent) EventType() EventType { return EventRulesInit }
func (e RulesInitEvent) EventPath() string    { return e.Path }

// EventHandler is implemented by extensions that want to receive events.
type EventHandler interface {
	HandleEvent(ctx Context, e Event) error
}

// Dispatch notifies all registered extensions implementing EventHandler.
// Handler errors are collected by the caller's discretion: Dispatch returns
// the first error but always notifies every handler.
func Dispatch(ctx Context, e Event) error {
	var first error
	for _, ext := range All() {
		if h, ok := ext.(EventHandler); ok {
			if err := h.HandleEvent(ctx, e); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
