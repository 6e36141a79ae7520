package listscreen

import (
	"sort"

	"github.com/Modeva-Ecommerce/modeva-cms-admin/listfilter"
)

// Descriptor is the type-erased part of a Screen that other controllers
// need: its name and synchronizer.
type Descriptor interface {
	Name() string
	Sync() *listfilter.Synchronizer
}

// Registry indexes the mounted list screens by name.
type Registry struct {
	screens map[string]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{screens: map[string]Descriptor{}}
}

func (r *Registry) Add(d Descriptor) {
	r.screens[d.Name()] = d
}

func (r *Registry) Get(name string) (Descriptor, bool) {
	d, ok := r.screens[name]
	return d, ok
}

// Names returns the registered screen names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.screens))
	for n := range r.screens {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
