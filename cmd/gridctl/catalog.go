package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every declared type name, registered or not",
		Long: `List the type names configuration may refer to.

Names marked with * are registered in at least one category by the
current configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := opts.load()
			if err != nil {
				return err
			}
			registered := map[string]bool{}
			for _, list := range [][]string{
				typeNames(reg.BoundedGridTypes()),
				typeNames(reg.UnboundedGridTypes()),
				typeNames(reg.GridObjectTypes()),
			} {
				for _, name := range list {
					registered[name] = true
				}
			}
			out := cmd.OutOrStdout()
			for _, name := range reg.Catalog().Names() {
				mark := " "
				if registered[name] {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\n", mark, name)
			}
			return nil
		},
	}
}
