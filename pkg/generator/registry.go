package generator

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores profiles by name.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		profiles: make(map[string]Profile),
	}
}

// DefaultRegistry returns a registry holding the resource and info profiles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(ResourceProfile())
	r.MustRegister(InfoProfile())
	return r
}

// Register adds a profile by name. Duplicate names return an error.
func (r *Registry) Register(profile Profile) error {
	if profile.Name == "" {
		return fmt.Errorf("generator: profile name is required")
	}
	if profile.Action == "" {
		return fmt.Errorf("generator: profile %q has no action", profile.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.profiles[profile.Name]; exists {
		return fmt.Errorf("generator: profile %q already registered", profile.Name)
	}

	r.profiles[profile.Name] = profile
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(profile Profile) {
	if err := r.Register(profile); err != nil {
		panic(err)
	}
}

// Get retrieves a profile by name.
func (r *Registry) Get(name string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("generator: unknown module type %q", name)
	}
	return profile, nil
}

// List returns a sorted list of profile names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
