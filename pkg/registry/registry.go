package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/deckout/pkg/errors"
)

// Registry is a thread-safe, insertion-ordered set of named items
type Registry[T any] interface {
	// Register stores item under name. Re-registering replaces the item
	// and keeps the name where it first appeared.
	Register(name string, item T) error

	// Get returns the item stored under name
	Get(name string) (T, error)

	Has(name string) bool

	// List returns the registered names sorted alphabetically
	List() []string

	// Ordered returns the registered names in registration order
	Ordered() []string

	// Values returns the items in registration order
	Values() []T

	Count() int
}

type entry[T any] struct {
	name string
	item T
}

type registry[T any] struct {
	mu      sync.RWMutex
	entries []entry[T]
	index   map[string]int
}

// New creates an empty Registry
func New[T any]() Registry[T] {
	return &registry[T]{index: make(map[string]int)}
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.index[name]; ok {
		r.entries[i].item = item
		return nil
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry[T]{name: name, item: item})
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
			WithDetail("name", name)
	}
	return r.entries[i].item, nil
}

func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.index[name]
	return ok
}

func (r *registry[T]) List() []string {
	names := r.Ordered()
	sort.Strings(names)
	return names
}

func (r *registry[T]) Ordered() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

func (r *registry[T]) Values() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, len(r.entries))
	for i, e := range r.entries {
		items[i] = e.item
	}
	return items
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// MustRegister registers an item and panics if registration fails.
// Registration happens at startup, so a failure is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
