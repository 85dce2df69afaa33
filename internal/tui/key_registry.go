package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key. Returning false lets lower priority bindings try.
type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Screens     []Screen
	Priority    int
}

func (b KeyBinding) AppliesTo(s Screen) bool {
	if len(b.Screens) == 0 {
		return true
	}
	for _, v := range b.Screens {
		if v == s {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.screen) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(s Screen) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(s) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders the footer hint line, one entry per key.
func (r *HandlerRegistry) HelpFor(s Screen) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(s) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}
