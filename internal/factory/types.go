package factory

import (
	"fmt"
	"image/color"
	"path"
	"reflect"
	"sort"
	"strings"

	"gridpkg/internal/grid"
)

// Param enumerates the parameter kinds a constructor may accept.
type Param uint8

const (
	// ParamInt is an int (grid dimensions).
	ParamInt Param = iota + 1
	// ParamGrid is a grid.Grid.
	ParamGrid
	// ParamLocation is a grid.Location.
	ParamLocation
	// ParamDirection is a grid.Direction.
	ParamDirection
	// ParamColor is a color.Color.
	ParamColor
)

func (p Param) String() string {
	switch p {
	case ParamInt:
		return "int"
	case ParamGrid:
		return "Grid"
	case ParamLocation:
		return "Location"
	case ParamDirection:
		return "Direction"
	case ParamColor:
		return "Color"
	}
	return fmt.Sprintf("Param(%d)", uint8(p))
}

// accepts reports whether v can be passed for a parameter of kind p.
func (p Param) accepts(v any) bool {
	switch p {
	case ParamInt:
		_, ok := v.(int)
		return ok
	case ParamGrid:
		_, ok := v.(grid.Grid)
		return ok
	case ParamLocation:
		_, ok := v.(grid.Location)
		return ok
	case ParamDirection:
		_, ok := v.(grid.Direction)
		return ok
	case ParamColor:
		_, ok := v.(color.Color)
		return ok
	}
	return false
}

// Signature is an ordered constructor parameter list. A nil or empty
// signature denotes the no-argument constructor.
type Signature []Param

// Well-known constructor signatures.
var (
	NoArgs                     Signature
	Dimensions                 = Signature{ParamInt, ParamInt}
	GridLocation               = Signature{ParamGrid, ParamLocation}
	GridLocationDirection      = Signature{ParamGrid, ParamLocation, ParamDirection}
	GridLocationDirectionColor = Signature{ParamGrid, ParamLocation, ParamDirection, ParamColor}
)

// String formats the signature as a parameter list, e.g. "(int, int)".
func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (s Signature) key() string { return s.String() }

// Constructor builds an instance from arguments matching Params.
type Constructor struct {
	Params Signature
	New    func(args []any) (any, error)
}

// NewFunc wraps a zero-argument constructor.
func NewFunc[T any](fn func() (T, error)) Constructor {
	return Constructor{Params: NoArgs, New: func([]any) (any, error) {
		return fn()
	}}
}

// DimensionsFunc wraps a (rows, cols int) constructor.
func DimensionsFunc[T any](fn func(rows, cols int) (T, error)) Constructor {
	return Constructor{Params: Dimensions, New: func(args []any) (any, error) {
		return fn(args[0].(int), args[1].(int))
	}}
}

// GridLocationFunc wraps a (grid, location) constructor.
func GridLocationFunc[T any](fn func(g grid.Grid, loc grid.Location) (T, error)) Constructor {
	return Constructor{Params: GridLocation, New: func(args []any) (any, error) {
		return fn(args[0].(grid.Grid), args[1].(grid.Location))
	}}
}

// GridLocationDirectionFunc wraps a (grid, location, direction) constructor.
func GridLocationDirectionFunc[T any](fn func(g grid.Grid, loc grid.Location, dir grid.Direction) (T, error)) Constructor {
	return Constructor{Params: GridLocationDirection, New: func(args []any) (any, error) {
		return fn(args[0].(grid.Grid), args[1].(grid.Location), args[2].(grid.Direction))
	}}
}

// GridLocationDirectionColorFunc wraps a (grid, location, direction, color) constructor.
func GridLocationDirectionColorFunc[T any](fn func(g grid.Grid, loc grid.Location, dir grid.Direction, c color.Color) (T, error)) Constructor {
	return Constructor{Params: GridLocationDirectionColor, New: func(args []any) (any, error) {
		return fn(args[0].(grid.Grid), args[1].(grid.Location), args[2].(grid.Direction), args[3].(color.Color))
	}}
}

// Type describes a constructible type: its name, its Go type and the
// constructors it exposes. Types are immutable once built.
type Type struct {
	name  string
	rtype reflect.Type
	ctors map[string]Constructor
}

// TypeOption customizes a Type built by NewType.
type TypeOption func(*Type)

// Named overrides the derived type name.
func Named(name string) TypeOption {
	return func(t *Type) {
		if name != "" {
			t.name = name
		}
	}
}

// NewType describes T with the given constructors. The name defaults to
// "pkg.Type" derived from T; for pointer types the element name is used.
func NewType[T any](ctors []Constructor, opts ...TypeOption) *Type {
	rt := reflect.TypeFor[T]()
	t := &Type{
		name:  typeName(rt),
		rtype: rt,
		ctors: make(map[string]Constructor, len(ctors)),
	}
	for _, c := range ctors {
		if c.New == nil {
			continue
		}
		t.ctors[c.Params.key()] = c
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// typeName derives a stable "pkg.Type" name, unwrapping pointers and
// stripping generic instantiation parameters.
func typeName(rt reflect.Type) string {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	name := rt.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if p := rt.PkgPath(); p != "" {
		return path.Base(p) + "." + name
	}
	return name
}

// Name returns the unique type name.
func (t *Type) Name() string { return t.name }

// String returns the type name.
func (t *Type) String() string { return t.name }

// GoType returns the described Go type.
func (t *Type) GoType() reflect.Type { return t.rtype }

// AssignableTo reports whether values of t satisfy base, which is usually an
// interface type such as grid.Grid.
func (t *Type) AssignableTo(base reflect.Type) bool {
	if base == nil {
		return false
	}
	if base.Kind() == reflect.Interface {
		return t.rtype.Implements(base)
	}
	return t.rtype.AssignableTo(base)
}

// Constructor returns the constructor accepting sig, if any.
func (t *Type) Constructor(sig Signature) (Constructor, bool) {
	c, ok := t.ctors[sig.key()]
	return c, ok
}

// HasConstructor reports whether t exposes a constructor accepting sig.
func (t *Type) HasConstructor(sig Signature) bool {
	_, ok := t.Constructor(sig)
	return ok
}

// Signatures returns the declared constructor signatures sorted by arity.
func (t *Type) Signatures() []Signature {
	out := make([]Signature, 0, len(t.ctors))
	for _, c := range t.ctors {
		out = append(out, c.Params)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i].key() < out[j].key()
	})
	return out
}
