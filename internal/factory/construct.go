package factory

import (
	"fmt"
	"image/color"

	"gridpkg/internal/grid"
)

// Construct builds an instance of t with the constructor accepting sig,
// passing args. A nil sig selects the no-argument constructor and requires
// args to be empty. Every failure, including a panicking constructor, is
// reported as ErrConstructionFailed wrapping the cause.
func Construct(t *Type, sig Signature, args []any) (obj any, err error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrConstructionFailed)
	}
	fail := func(cause error) error {
		return fmt.Errorf("%w: cannot construct %s: %w", ErrConstructionFailed, t.Name(), cause)
	}
	if len(sig) != len(args) {
		return nil, fail(fmt.Errorf("constructor %s takes %d arguments, got %d", sig, len(sig), len(args)))
	}
	ctor, ok := t.Constructor(sig)
	if !ok {
		return nil, fail(fmt.Errorf("%w: %s", ErrNoConstructor, sig))
	}
	for i, p := range sig {
		if !p.accepts(args[i]) {
			return nil, fail(fmt.Errorf("argument %d: want %s, got %T", i, p, args[i]))
		}
	}
	defer func() {
		if rec := recover(); rec != nil {
			obj = nil
			err = fail(fmt.Errorf("constructor panicked: %v", rec))
		}
	}()
	obj, err = ctor.New(args)
	if err != nil {
		return nil, fail(err)
	}
	return obj, nil
}

// ConstructGridObject builds a grid object of type t at loc in g. Types that
// declare a (grid, location) constructor are built with it and place
// themselves; all others are built with their no-argument constructor and
// then added to g. A failed placement is terminal; it is not retried.
func ConstructGridObject(t *Type, g grid.Grid, loc grid.Location) (grid.Object, error) {
	if t != nil && t.HasConstructor(GridLocation) {
		return constructObject(t, GridLocation, []any{g, loc})
	}
	return constructThenPlace(t, g, loc)
}

func constructThenPlace(t *Type, g grid.Grid, loc grid.Location) (grid.Object, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrConstructionFailed)
	}
	obj, err := constructObject(t, NoArgs, nil)
	if err != nil {
		return nil, err
	}
	if err := g.Add(obj, loc); err != nil {
		return nil, fmt.Errorf("%w: cannot place %s at %s: %w", ErrConstructionFailed, t.Name(), loc, err)
	}
	return obj, nil
}

// ConstructDirectedGridObject builds a grid object of type t with its
// (grid, location, direction) constructor.
func ConstructDirectedGridObject(t *Type, g grid.Grid, loc grid.Location, dir grid.Direction) (grid.Object, error) {
	return constructObject(t, GridLocationDirection, []any{g, loc, dir})
}

// ConstructColoredGridObject builds a grid object of type t with its
// (grid, location, direction, color) constructor.
func ConstructColoredGridObject(t *Type, g grid.Grid, loc grid.Location, dir grid.Direction, c color.Color) (grid.Object, error) {
	return constructObject(t, GridLocationDirectionColor, []any{g, loc, dir, c})
}

// ConstructUnboundedGrid builds a grid of type t with its no-argument constructor.
func ConstructUnboundedGrid(t *Type) (grid.Grid, error) {
	return constructGrid(t, NoArgs, nil)
}

// ConstructBoundedGrid builds a rows x cols grid of type t.
func ConstructBoundedGrid(t *Type, rows, cols int) (grid.Grid, error) {
	return constructGrid(t, Dimensions, []any{rows, cols})
}

func constructObject(t *Type, sig Signature, args []any) (grid.Object, error) {
	v, err := Construct(t, sig, args)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(grid.Object)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstructionFailed, t.Name(), errNotA(v, ObjectCapability.String()))
	}
	return obj, nil
}

func constructGrid(t *Type, sig Signature, args []any) (grid.Grid, error) {
	v, err := Construct(t, sig, args)
	if err != nil {
		return nil, err
	}
	g, ok := v.(grid.Grid)
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstructionFailed, t.Name(), errNotA(v, GridCapability.String()))
	}
	return g, nil
}

func errNotA(v any, want string) error {
	return fmt.Errorf("%w: %T is not a %s", ErrTypeMismatch, v, want)
}
