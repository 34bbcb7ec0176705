// ABOUTME: Registry maps fields to their bindings for hosts that manage several fields
// ABOUTME: Lookup is explicit; nothing is stashed on the field itself

package trigger

import (
	"fmt"
	"reflect"
)

// Registry tracks the binding of each attached field. Fields are used as map
// keys and must therefore be comparable, which pointer types always are.
type Registry struct {
	bindings map[Field]*Binding
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[Field]*Binding)}
}

// Attach binds field and records the binding. Attaching a field that is
// already registered detaches its previous binding first.
func (r *Registry) Attach(field Field, cfg Config, s Suggester) (*Binding, error) {
	if field != nil && !reflect.TypeOf(field).Comparable() {
		return nil, fmt.Errorf("trigger: registry: field type %T is not comparable", field)
	}
	if field != nil {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("trigger: registry: %w", err)
		}
		if prev, ok := r.bindings[field]; ok {
			prev.Detach()
			delete(r.bindings, field)
		}
	}
	b, err := Attach(field, cfg, s)
	if err != nil {
		return nil, err
	}
	r.bindings[field] = b
	return b, nil
}

// Detach detaches and forgets the binding for field. Unknown fields are ignored.
func (r *Registry) Detach(field Field) {
	if field == nil || !reflect.TypeOf(field).Comparable() {
		return
	}
	b, ok := r.bindings[field]
	if !ok {
		return
	}
	b.Detach()
	delete(r.bindings, field)
}

// DetachAll detaches every registered binding.
func (r *Registry) DetachAll() {
	for f, b := range r.bindings {
		b.Detach()
		delete(r.bindings, f)
	}
}

// Lookup returns the binding for field, if any.
func (r *Registry) Lookup(field Field) (*Binding, bool) {
	if field == nil || !reflect.TypeOf(field).Comparable() {
		return nil, false
	}
	b, ok := r.bindings[field]
	return b, ok
}

// Len returns the number of registered bindings.
func (r *Registry) Len() int {
	return len(r.bindings)
}
