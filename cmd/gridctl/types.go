package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gridpkg/internal/factory"
)

func newTypesCmd(opts *options) *cobra.Command {
	var (
		category string
		extra    []string
		as       string
	)
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List registered grid and grid-object types",
		Long: `List the registered types of each category with their constructors.

Examples:
  # Everything the default world registers
  gridctl types

  # Only object types
  gridctl types --category object

  # Try registering more names under a category label
  gridctl types --add objects.Flower --as "grid object"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := opts.load()
			if err != nil {
				return err
			}
			if len(extra) > 0 {
				rep, err := reg.RegisterTypesByLabel(extra, as)
				if err != nil {
					return err
				}
				for _, rej := range rep.Rejected {
					fmt.Fprintf(cmd.ErrOrStderr(), "discarded %s: %v\n", rej.Name, rej.Err)
				}
			}

			cats := []factory.Category{factory.BoundedGrid, factory.UnboundedGrid, factory.GridObject}
			if category != "" {
				c, err := factory.ParseCategory(category)
				if err != nil {
					return err
				}
				cats = []factory.Category{c}
			}
			out := cmd.OutOrStdout()
			for _, c := range cats {
				fmt.Fprintf(out, "%s:\n", c)
				for _, t := range reg.Types(c) {
					fmt.Fprintf(out, "  %s%s %s\n", t.Name(), defaultMark(reg, c, t), signatures(t))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category (bounded, unbounded, object)")
	cmd.Flags().StringArrayVar(&extra, "add", nil, "additional type name to register (repeatable)")
	cmd.Flags().StringVar(&as, "as", "grid object", "category label for --add")
	return cmd
}

func defaultMark(reg *factory.Registry, c factory.Category, t *factory.Type) string {
	switch {
	case c == factory.BoundedGrid && reg.DefaultBoundedType() == t,
		c == factory.UnboundedGrid && reg.DefaultUnboundedType() == t:
		return " (default)"
	}
	return ""
}

func typeNames(types []*factory.Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.Name()
	}
	return out
}

func signatures(t *factory.Type) string {
	sigs := t.Signatures()
	parts := make([]string, len(sigs))
	for i, s := range sigs {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
