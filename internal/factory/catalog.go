package factory

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog maps type names to declared types. It plays the part of a class
// loader: registries resolve configured names through it.
type Catalog struct {
	mu    sync.RWMutex
	types map[string]*Type
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{types: map[string]*Type{}}
}

// Declare adds t under its name. Declaring the same *Type twice is a no-op;
// declaring a different type under a taken name fails with ErrDuplicateType.
func (c *Catalog) Declare(t *Type) error {
	if t == nil {
		return fmt.Errorf("%w: nil type", ErrInvalidArgument)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.types[t.Name()]; ok {
		if old == t {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrDuplicateType, t.Name())
	}
	c.types[t.Name()] = t
	return nil
}

// Lookup resolves name to a declared type.
func (c *Catalog) Lookup(name string) (*Type, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotFound, name)
	}
	return t, nil
}

// Names returns every declared name in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultCatalog = NewCatalog()

// DefaultCatalog returns the process-wide catalog populated by Declare.
func DefaultCatalog() *Catalog { return defaultCatalog }

// Declare adds t to the default catalog. It is meant to be called from
// package init functions and panics on a conflicting declaration.
func Declare(t *Type) {
	if err := defaultCatalog.Declare(t); err != nil {
		panic(err)
	}
}
