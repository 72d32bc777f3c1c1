// Package registry provides a global registry of drawing themes.
// Themes register themselves in init() functions, so the CLI can list and
// select them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-riverraid/internal/games/riverraid"
)

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	Name        string
	Description string
}

// Factory is a function that builds a theme.
type Factory func() riverraid.Theme

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a theme factory to the registry.
// Typically called from an init() function.
// Panics if a theme with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered themes, sorted by name.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(factories))
	for name := range factories {
		result = append(result, ThemeInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get builds the theme registered under name.
// Returns an error if the name is not registered.
func Get(name string) (riverraid.Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return riverraid.Theme{}, fmt.Errorf("registry: unknown theme %q", name)
	}

	th := f()
	th.Name = name
	return th, nil
}

// Exists checks if a theme with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
