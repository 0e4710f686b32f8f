// Package registry keeps the ordered roster of live simulation objects.
//
// A Registry is owned by one simulation and is only touched from that
// simulation's goroutine, so it carries no lock.
package registry

// Registry is an ordered list of registered references.
type Registry[T comparable] struct {
	items []T
}

func New[T comparable]() *Registry[T] {
	return &Registry[T]{}
}

// Register appends item. Registering the same item twice adds two entries.
func (r *Registry[T]) Register(item T) {
	r.items = append(r.items, item)
}

// Unregister removes the first entry equal to item and reports whether one
// was found.
func (r *Registry[T]) Unregister(item T) bool {
	for i, it := range r.items {
		if it != item {
			continue
		}
		copy(r.items[i:], r.items[i+1:])
		var zero T
		r.items[len(r.items)-1] = zero
		r.items = r.items[:len(r.items)-1]
		return true
	}
	return false
}

// List returns a snapshot of the registered items in registration order.
func (r *Registry[T]) List() []T {
	result := make([]T, len(r.items))
	copy(result, r.items)
	return result
}

func (r *Registry[T]) Len() int {
	return len(r.items)
}

// Clear drops every entry. Called when a simulation shuts down.
func (r *Registry[T]) Clear() {
	clear(r.items)
	r.items = r.items[:0]
}
