// Package events provides typed tracers so call sites stay terse and event
// names stay consistent across the codebase.
package events

import "rdct/internal/logging"

type AppTracer struct{}

type UITracer struct{}

type SessionTracer struct{}

type ScriptTracer struct{}

var (
	App     = AppTracer{}
	UI      = UITracer{}
	Session = SessionTracer{}
	Script  = ScriptTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(outcome string) {
	logging.Trace("app.exit", map[string]interface{}{"outcome": outcome})
}

func (UITracer) MenuCursor(depth, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"depth": depth, "cursor": cursor})
}

func (UITracer) MenuEnter(name string, depth int) {
	logging.Trace("menu.enter", map[string]interface{}{"group": name, "depth": depth})
}

func (UITracer) MenuBack(depth int) {
	logging.Trace("menu.back", map[string]interface{}{"depth": depth})
}

func (UITracer) Toggle(name string, selected bool) {
	logging.Trace("menu.toggle", map[string]interface{}{"item": name, "selected": selected})
}

func (SessionTracer) ModeChange(from, to string) {
	logging.Trace("session.mode", map[string]interface{}{"from": from, "to": to})
}

func (SessionTracer) SaveResult(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("session.save", payload)
}

func (ScriptTracer) Synthesized(selected int, reboot bool) {
	logging.Trace("script.synthesized", map[string]interface{}{"selected": selected, "reboot": reboot})
}
