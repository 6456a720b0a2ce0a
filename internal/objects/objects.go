// Package objects provides the stock grid-object types. Each type declares
// itself into the default factory catalog so configuration can name it.
package objects

import (
	"gridpkg/internal/factory"
	"gridpkg/pkg/core"
)

// Actor is implemented by objects that do something each simulation step.
type Actor interface {
	Act(rng *core.RNG)
}

func init() {
	factory.Declare(factory.NewType[*Rock]([]factory.Constructor{
		factory.NewFunc(NewRock),
	}))
	factory.Declare(factory.NewType[*Flower]([]factory.Constructor{
		factory.GridLocationFunc(NewFlower),
	}))
	factory.Declare(factory.NewType[*Walker]([]factory.Constructor{
		factory.GridLocationFunc(NewWalker),
		factory.GridLocationDirectionFunc(NewDirectedWalker),
		factory.GridLocationDirectionColorFunc(NewColoredWalker),
	}))
}
