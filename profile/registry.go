package profile

import (
	"strings"
	"sync"
)

// Registry resolves profile names and file extensions to registered
// Profiles. Writers are serialized with a mutex; readers never observe a
// partially-installed profile because registration updates both lookup
// maps while holding the write lock.
type Registry struct {
	mu          sync.RWMutex
	byName      map[string]*Profile
	byExtension map[string]*Profile
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:      make(map[string]*Profile),
		byExtension: make(map[string]*Profile),
	}
}

// Register installs p, keyed by its name as-is and by each of its
// extensions normalized to lowercase. Re-registering a name replaces the
// prior binding, including any extensions the prior profile claimed that
// p does not also claim.
func (reg *Registry) Register(p *Profile) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if prior, ok := reg.byName[p.Name]; ok {
		for _, ext := range prior.Extensions {
			key := strings.ToLower(ext)
			if reg.byExtension[key] == prior {
				delete(reg.byExtension, key)
			}
		}
	}

	reg.byName[p.Name] = p
	for _, ext := range p.Extensions {
		reg.byExtension[strings.ToLower(ext)] = p
	}
}

// Lookup resolves nameOrExtension: first as a profile name exactly as
// given, then as an extension normalized to lowercase.
func (reg *Registry) Lookup(nameOrExtension string) (*Profile, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	if p, ok := reg.byName[nameOrExtension]; ok {
		return p, true
	}
	if p, ok := reg.byExtension[strings.ToLower(nameOrExtension)]; ok {
		return p, true
	}
	return nil, false
}

// ListNames returns every registered profile's name.
func (reg *Registry) ListNames() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	names := make([]string, 0, len(reg.byName))
	for name := range reg.byName {
		names = append(names, name)
	}
	return names
}

// ListExtensions returns every registered extension, normalized to
// lowercase.
func (reg *Registry) ListExtensions() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	exts := make([]string, 0, len(reg.byExtension))
	for ext := range reg.byExtension {
		exts = append(exts, ext)
	}
	return exts
}
