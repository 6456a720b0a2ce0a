// Command gridctl inspects the type registry and renders worlds as text.
package main

import (
	"os"

	_ "gridpkg/internal/objects"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
