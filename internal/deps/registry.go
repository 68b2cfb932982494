package deps

import (
	"fmt"
	"sort"
	"sync"
)

// PackageManager describes a dependency-install command.
type PackageManager interface {
	// Name returns the registry key, e.g. "npm"
	Name() string
	// Description returns a short human-readable description
	Description() string
	// Command returns the binary and arguments that install dependencies
	Command() (string, []string)
}

// Registry holds the package managers polymd knows how to run
type Registry struct {
	mu       sync.RWMutex
	managers map[string]PackageManager
}

// defaultRegistry holds the built-in package managers
var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, pm := range []PackageManager{npm, yarn, pnpm} {
		if err := r.Register(pm); err != nil {
			panic(err)
		}
	}
	return r
}

// Default returns the registry with the built-in package managers.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		managers: make(map[string]PackageManager),
	}
}

// Register adds a package manager to the registry
func (r *Registry) Register(pm PackageManager) error {
	if pm == nil {
		return fmt.Errorf("cannot register nil package manager")
	}

	name := pm.Name()
	if name == "" {
		return fmt.Errorf("cannot register package manager with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.managers[name]; exists {
		return fmt.Errorf("package manager '%s' is already registered", name)
	}

	r.managers[name] = pm
	return nil
}

// Get retrieves a package manager by name
func (r *Registry) Get(name string) (PackageManager, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pm, ok := r.managers[name]
	return pm, ok
}

// Has checks if a package manager is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns all registered names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// ListWithDescriptions returns all registered names with their descriptions
func (r *Registry) ListWithDescriptions() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]string, len(r.managers))
	for name, pm := range r.managers {
		result[name] = pm.Description()
	}
	return result
}

// Lookup returns the named package manager or an error listing the known ones
func (r *Registry) Lookup(name string) (PackageManager, error) {
	pm, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown package manager %q (available: %v)", name, r.List())
	}
	return pm, nil
}
