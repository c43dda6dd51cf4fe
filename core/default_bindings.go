package core

import "strings"

const (
	ScopePage       = "page"
	ScopeJumpPicker = "screen:jump-picker"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopePage}},
		{Keys: []string{"/"}, Action: "jump", Description: "jump to section", Scopes: []string{ScopePage}},
		{Keys: []string{"a"}, Action: "toggle-animate", Description: "animate", Scopes: []string{ScopePage}},
		{Keys: []string{"r"}, Action: "reshuffle", Description: "new data", Scopes: []string{ScopePage}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeJumpPicker}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopeJumpPicker}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys. Unknown actions are ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
