package desensitize

import (
	"slices"
	"sync"
)

// Hook applies an ordered set of rules to log lines. Disabling a rule only
// affects this hook.
type Hook struct {
	mu       sync.RWMutex
	rules    []Rule
	disabled map[string]bool
}

// NewHook creates a Hook holding rules in order
func NewHook(rules ...Rule) *Hook {
	h := &Hook{disabled: make(map[string]bool)}
	for _, rule := range rules {
		h.Add(rule)
	}
	return h
}

// Add appends rule, replacing in place any rule with the same name
func (h *Hook) Add(rule Rule) {
	if rule == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	i := slices.IndexFunc(h.rules, func(r Rule) bool { return r.Name() == rule.Name() })
	if i >= 0 {
		h.rules[i] = rule
		return
	}
	h.rules = append(h.rules, rule)
}

// Disable stops the named rule from running on this hook. It reports whether
// the rule is registered.
func (h *Hook) Disable(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !slices.ContainsFunc(h.rules, func(r Rule) bool { return r.Name() == name }) {
		return false
	}
	h.disabled[name] = true
	return true
}

// Len returns the number of registered rules
func (h *Hook) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rules)
}

// Desensitize applies every enabled rule to s
func (h *Hook) Desensitize(s string) string {
	if s == "" {
		return s
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, rule := range h.rules {
		if !h.disabled[rule.Name()] {
			s = rule.Apply(s)
		}
	}
	return s
}
