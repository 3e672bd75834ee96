package registry

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName = errors.New("registry: empty component name")
	ErrDuplicate = errors.New("registry: component already registered")
)

// Registry records the components wired at startup.
// It is filled on the startup goroutine and only read after that, so it has no locking.
type Registry struct {
	order []string
	items map[string]any
}

func New() *Registry {
	return &Registry{items: make(map[string]any)}
}

func (r *Registry) Register(name string, component any) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := r.items[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.items[name] = component
	r.order = append(r.order, name)
	return nil
}

func (r *Registry) Count() int { return len(r.items) }

func (r *Registry) Contains(name string) bool {
	_, ok := r.items[name]
	return ok
}

func (r *Registry) Get(name string) (any, bool) {
	c, ok := r.items[name]
	return c, ok
}

// Names returns component names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Static is a fixed name -> present mapping. Only names set to true count.
type Static map[string]bool

func (s Static) Count() int {
	n := 0
	for _, ok := range s {
		if ok {
			n++
		}
	}
	return n
}

func (s Static) Contains(name string) bool { return s[name] }
