// Package registry provides a global registry of difficulty suggestion
// backends. Backends register themselves in init() functions, allowing the
// CLI to pick one by name without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/shadow-strike/internal/config"
	"github.com/vovakirdan/shadow-strike/internal/difficulty"
)

// ErrUnknownBackend is returned by Create for names nobody registered.
var ErrUnknownBackend = errors.New("registry: unknown backend")

// Factory builds a suggester from the difficulty configuration.
type Factory func(cfg config.DifficultyConfig) (difficulty.Suggester, error)

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

type entry struct {
	description string
	factory     Factory
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	backends[name] = entry{description: description, factory: f}
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for name, e := range backends {
		result = append(result, BackendInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create builds the suggester registered under name.
func Create(name string, cfg config.DifficultyConfig) (difficulty.Suggester, error) {
	mu.RLock()
	e, ok := backends[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}

	s, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", name, err)
	}
	return s, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
