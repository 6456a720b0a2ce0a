package factory

import (
	"fmt"
	"strings"
)

// Category selects which registry set and validation contract apply.
type Category uint8

const (
	// BoundedGrid types need a (rows, cols int) constructor.
	BoundedGrid Category = iota
	// UnboundedGrid types need a no-argument constructor.
	UnboundedGrid
	// GridObject types are only checked for the grid.Object capability.
	GridObject
)

func (c Category) String() string {
	switch c {
	case BoundedGrid:
		return "bounded grid"
	case UnboundedGrid:
		return "unbounded grid"
	case GridObject:
		return "grid object"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool { return c <= GridObject }

// ParseCategory maps a descriptive label such as "bounded grid" to its
// Category. Labels are matched case-insensitively; underscores and hyphens
// count as spaces.
func ParseCategory(label string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(label))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	switch norm {
	case "bounded grid", "bounded":
		return BoundedGrid, nil
	case "unbounded grid", "unbounded":
		return UnboundedGrid, nil
	case "grid object", "object":
		return GridObject, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
}
