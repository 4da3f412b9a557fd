package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the category hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flat {
				categories, err := a.categories.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, c := range categories {
					fmt.Fprintf(out, "%d  %s\n", c.ID, c.Name)
				}
				return nil
			}

			tree, err := a.categories.Hierarchy(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(out, renderCategoryTree(tree, 0))
			return nil
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "flat listing instead of a tree")

	return cmd
}
