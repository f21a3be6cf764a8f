package storage

import (
	"fmt"
	"slices"
	"sync"
)

// Namespaces is a registry of named storage backends.
// Components that produce data mount a backend under a name and request
// handlers resolve it by the same name.
type Namespaces struct {
	mu    sync.RWMutex
	items map[string]Storage
}

// NewNamespaces creates an empty registry.
func NewNamespaces() *Namespaces {
	return &Namespaces{items: make(map[string]Storage)}
}

// Mount registers s under name. Mounting a second backend under the same
// name fails with ErrNamespaceExists.
func (n *Namespaces) Mount(name string, s Storage) error {
	if name == "" || s == nil {
		return fmt.Errorf("%w: namespace %q", ErrInvalidConfig, name)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.items[name]; ok {
		return fmt.Errorf("%w: %s", ErrNamespaceExists, name)
	}
	n.items[name] = s
	return nil
}

// Get returns the backend mounted under name.
func (n *Namespaces) Get(name string) (Storage, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	s, ok := n.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNamespaceNotFound, name)
	}
	return s, nil
}

// Names returns the mounted namespace names in sorted order.
func (n *Namespaces) Names() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	names := make([]string, 0, len(n.items))
	for name := range n.items {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
