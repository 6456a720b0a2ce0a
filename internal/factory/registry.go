// Package factory keeps track of the grid and grid-object types available to
// an application and constructs instances of them by name.
//
// Concrete types describe themselves with NewType and declare the result into
// a Catalog, usually the default one from a package init function:
//
//	func init() {
//		factory.Declare(factory.NewType[*Rock]([]factory.Constructor{
//			factory.NewFunc(NewRock),
//		}))
//	}
//
// A Registry then admits configured names into three sorted sets (bounded
// grids, unbounded grids and grid objects) after checking that each name
// resolves, that the type implements the required capability and, for grids,
// that it has the constructor the category needs. Bad names never abort a
// batch; they are logged and reported.
package factory

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"gridpkg/internal/grid"
)

// Baseline grid types used as the initial registry defaults.
var (
	StandardBoundedGridType = NewType[*grid.BoundedGrid]([]Constructor{
		DimensionsFunc(grid.NewBoundedGrid),
	})
	StandardUnboundedGridType = NewType[*grid.UnboundedGrid]([]Constructor{
		NewFunc(func() (*grid.UnboundedGrid, error) {
			return grid.NewUnboundedGrid(), nil
		}),
	})
)

func init() {
	Declare(StandardBoundedGridType)
	Declare(StandardUnboundedGridType)
}

// Rejection records a name a registration call discarded and why.
type Rejection struct {
	Name string
	Err  error
}

// Report summarizes one registration call.
type Report struct {
	Category Category
	Accepted []string
	Rejected []Rejection
}

// OK reports whether every name was accepted.
func (r Report) OK() bool { return len(r.Rejected) == 0 }

// Err joins the rejection causes, or returns nil when all names were accepted.
func (r Report) Err() error {
	errs := make([]error, 0, len(r.Rejected))
	for _, rej := range r.Rejected {
		errs = append(errs, fmt.Errorf("%s: %w", rej.Name, rej.Err))
	}
	return errors.Join(errs...)
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger registration diagnostics are written to.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithCatalog sets the catalog names are resolved through.
func WithCatalog(c *Catalog) Option {
	return func(r *Registry) {
		if c != nil {
			r.catalog = c
		}
	}
}

// Registry holds the registered grid and grid-object types and the current
// default grid types. It is safe for concurrent use.
type Registry struct {
	catalog *Catalog
	log     *slog.Logger

	mu               sync.RWMutex
	objects          []*Type
	bounded          []*Type
	unbounded        []*Type
	defaultBounded   *Type
	defaultUnbounded *Type
}

// New returns an empty Registry resolving names through the default catalog
// unless WithCatalog says otherwise.
func New(opts ...Option) *Registry {
	r := &Registry{
		catalog:          defaultCatalog,
		log:              slog.Default(),
		defaultBounded:   StandardBoundedGridType,
		defaultUnbounded: StandardUnboundedGridType,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the catalog the registry resolves names through.
func (r *Registry) Catalog() *Catalog { return r.catalog }

// Resolve looks name up in the registry's catalog.
func (r *Registry) Resolve(name string) (*Type, error) {
	return r.catalog.Lookup(name)
}

// RegisterTypes resolves and validates each name for category c and adds the
// survivors to the matching set in one step, so readers see the whole batch
// or none of it. Failures are logged and reported but never stop the batch.
// Re-registering a present type is a no-op.
func (r *Registry) RegisterTypes(names []string, c Category) Report {
	rep := Report{Category: c}
	var admitted []*Type
	for _, name := range names {
		t, err := r.admit(name, c)
		if err != nil {
			r.discard(c, name, err)
			rep.Rejected = append(rep.Rejected, Rejection{Name: name, Err: err})
			continue
		}
		admitted = append(admitted, t)
		rep.Accepted = append(rep.Accepted, name)
	}
	r.insert(c, admitted)
	return rep
}

// RegisterTypesByLabel is RegisterTypes with the category given as a label
// such as "bounded grid". Unknown labels fail before any name is examined.
func (r *Registry) RegisterTypesByLabel(names []string, label string) (Report, error) {
	c, err := ParseCategory(label)
	if err != nil {
		return Report{}, err
	}
	return r.RegisterTypes(names, c), nil
}

// RegisterBoundedGridTypes registers names as bounded grid types.
func (r *Registry) RegisterBoundedGridTypes(names ...string) Report {
	return r.RegisterTypes(names, BoundedGrid)
}

// RegisterUnboundedGridTypes registers names as unbounded grid types.
func (r *Registry) RegisterUnboundedGridTypes(names ...string) Report {
	return r.RegisterTypes(names, UnboundedGrid)
}

// RegisterGridObjectTypes registers names as grid-object types. Only
// resolution and the grid.Object capability are checked: object construction
// copes with several constructor shapes, so none is required here.
func (r *Registry) RegisterGridObjectTypes(names ...string) Report {
	return r.RegisterTypes(names, GridObject)
}

func (r *Registry) admit(name string, c Category) (*Type, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	t, err := r.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := validate(t, c); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Registry) discard(c Category, name string, err error) {
	reason := err.Error()
	switch {
	case errors.Is(err, ErrTypeNotFound):
		reason = "no type found with that name"
	case errors.Is(err, ErrNoConstructor):
		reason = "it doesn't have the proper constructor"
	}
	r.log.Warn("discarding type choice",
		"category", c.String(),
		"name", name,
		"reason", reason,
	)
}

func (r *Registry) insert(c Category, types []*Type) {
	if len(types) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range types {
		switch c {
		case BoundedGrid:
			r.bounded = insertSorted(r.bounded, t)
		case UnboundedGrid:
			r.unbounded = insertSorted(r.unbounded, t)
		case GridObject:
			r.objects = insertSorted(r.objects, t)
		}
	}
}

// insertSorted adds t to the name-sorted set unless a type with its name is
// already present.
func insertSorted(set []*Type, t *Type) []*Type {
	i := sort.Search(len(set), func(i int) bool { return set[i].Name() >= t.Name() })
	if i < len(set) && set[i].Name() == t.Name() {
		return set
	}
	set = append(set, nil)
	copy(set[i+1:], set[i:])
	set[i] = t
	return set
}

// GridObjectTypes returns the registered grid-object types sorted by name.
func (r *Registry) GridObjectTypes() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Type(nil), r.objects...)
}

// BoundedGridTypes returns the registered bounded grid types sorted by name.
func (r *Registry) BoundedGridTypes() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Type(nil), r.bounded...)
}

// UnboundedGridTypes returns the registered unbounded grid types sorted by name.
func (r *Registry) UnboundedGridTypes() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Type(nil), r.unbounded...)
}

// Types returns the registered types of category c sorted by name.
func (r *Registry) Types(c Category) []*Type {
	switch c {
	case BoundedGrid:
		return r.BoundedGridTypes()
	case UnboundedGrid:
		return r.UnboundedGridTypes()
	case GridObject:
		return r.GridObjectTypes()
	}
	return nil
}

// DefaultBoundedType returns the type NewDefaultBoundedGrid builds.
func (r *Registry) DefaultBoundedType() *Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultBounded
}

// DefaultUnboundedType returns the type NewDefaultUnboundedGrid builds.
func (r *Registry) DefaultUnboundedType() *Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultUnbounded
}

// SetDefaultBoundedType makes t the default bounded grid type. t must be a
// grid with a (rows, cols int) constructor; otherwise ErrInvalidArgument is
// returned and the previous default stays.
func (r *Registry) SetDefaultBoundedType(t *Type) error {
	if _, err := IsValidGridType(t, Dimensions); err != nil {
		return fmt.Errorf("%w: %s doesn't have the proper (int, int) constructor: %w", ErrInvalidArgument, nameOf(t), err)
	}
	r.mu.Lock()
	r.defaultBounded = t
	r.mu.Unlock()
	return nil
}

// SetDefaultUnboundedType makes t the default unbounded grid type. t must be
// a grid with a no-argument constructor; otherwise ErrInvalidArgument is
// returned and the previous default stays.
func (r *Registry) SetDefaultUnboundedType(t *Type) error {
	if _, err := IsValidGridType(t, NoArgs); err != nil {
		return fmt.Errorf("%w: %s doesn't have the proper no-parameter constructor: %w", ErrInvalidArgument, nameOf(t), err)
	}
	r.mu.Lock()
	r.defaultUnbounded = t
	r.mu.Unlock()
	return nil
}

// NewDefaultBoundedGrid builds the default bounded grid type.
func (r *Registry) NewDefaultBoundedGrid(rows, cols int) (grid.Grid, error) {
	return ConstructBoundedGrid(r.DefaultBoundedType(), rows, cols)
}

// NewDefaultUnboundedGrid builds the default unbounded grid type.
func (r *Registry) NewDefaultUnboundedGrid() (grid.Grid, error) {
	return ConstructUnboundedGrid(r.DefaultUnboundedType())
}

func nameOf(t *Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
