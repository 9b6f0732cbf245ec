package modules

// ModuleID identifies a module known to the compilation.
type ModuleID uint32

const (
	// CurrentModule is the reserved sentinel meaning "the module currently
	// being compiled". Every registry reserves index 0 for it.
	CurrentModule ModuleID = 0
)

// Module describes one registered module.
type Module struct {
	Name string
}

// Registry assigns stable IDs to modules discovered during compilation.
// Index 0 is reserved for CurrentModule, matching the sentinel default in
// identifier side tables.
type Registry struct {
	byID  []Module
	index map[string]ModuleID
}

func NewRegistry() *Registry {
	return &Registry{
		byID:  []Module{{Name: ""}}, // index 0 reserved for CurrentModule
		index: map[string]ModuleID{},
	}
}

// Add registers a module by name and returns its ID.
// Re-adding an existing name returns the previously assigned ID.
func (r *Registry) Add(name string) ModuleID {
	if id, ok := r.index[name]; ok {
		return id
	}
	id := ModuleID(len(r.byID))
	r.byID = append(r.byID, Module{Name: name})
	r.index[name] = id
	return id
}

// Get returns the module for an ID.
// The CurrentModule sentinel resolves to an empty-named module.
func (r *Registry) Get(id ModuleID) (Module, bool) {
	if int(id) >= len(r.byID) {
		return Module{}, false
	}
	return r.byID[id], true
}

// Find returns the ID previously assigned to name.
func (r *Registry) Find(name string) (ModuleID, bool) {
	id, ok := r.index[name]
	return id, ok
}

// Len reports the number of registered modules including the sentinel.
func (r *Registry) Len() int {
	return len(r.byID)
}
