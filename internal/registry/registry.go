// Package registry provides a global registry of rule-set factories.
// Rule sets register themselves in init() functions, allowing the CLI and
// menus to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-harvest/internal/game"
)

// Factory creates a fresh, default-configured rule set.
type Factory func() game.RulePlugin

// RuleSetInfo contains metadata about a registered rule set.
type RuleSetInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a rule-set factory to the registry. Typically called from a
// variant's init() function. The title is passed explicitly because the
// RulePlugin contract carries no display name. Panics on duplicate IDs.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: rule set %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered rule sets, sorted by ID.
func List() []RuleSetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RuleSetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, RuleSetInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new rule set by its ID.
func Create(id string) (game.RulePlugin, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown rule set %q", id)
	}

	return f(), nil
}

// Exists checks if a rule set with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name for a rule set, or the ID itself when the
// rule set is unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
