package main

import (
	"fmt"

	"github.com/Veraticus/freight/internal/cli"
	"github.com/Veraticus/freight/internal/common"
	"github.com/Veraticus/freight/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List cargo categories",
		Long:    `Display every cargo category with the transport modes it may not use.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			return cli.WriteCategories(cmd.OutOrStdout(), catalog)
		},
	}
}

func modesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List transport modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}
			return cli.WriteModes(cmd.OutOrStdout(), catalog.Modes())
		},
	}
}

func restrictionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restrictions <category>",
		Short: "Show which transport modes a cargo category forbids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog()
			if err != nil {
				return err
			}

			id := model.CategoryID(args[0])
			labels, err := catalog.Restrictions(id)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Unknown cargo category %q (see 'freight categories')", args[0]), err)
			}

			cat, _ := catalog.Category(id)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cat.Label, cli.RestrictionNotice(labels))
			return nil
		},
	}
}
