package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paytrack/internal/cli"
	"paytrack/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the bank, company, and business group label lists",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesRemoveCmd())

	return cmd
}

// parseCategoryID maps the CLI argument onto a category dimension.
func parseCategoryID(arg string) (model.CategoryID, error) {
	id := model.CategoryID(arg)
	if !id.Valid() {
		return "", fmt.Errorf("unknown category %q, want one of: bank, company, businessGroup", arg)
	}
	return id, nil
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all category labels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			payments := a.payments.Payments()
			for _, c := range a.categories.Categories() {
				fmt.Println(cli.FormatTitle(fmt.Sprintf("%s (%s)", c.Name, c.ID)))
				if len(c.Labels) == 0 {
					fmt.Println(cli.SubtleStyle.Render("  (empty)"))
					continue
				}
				for _, label := range c.Labels {
					if a.categories.IsInUse(c.ID, label, payments) {
						fmt.Printf("  %s %s\n", label, cli.SubtleStyle.Render("(in use)"))
					} else {
						fmt.Printf("  %s\n", label)
					}
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <label>",
		Short: "Add a label to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			if err := a.categories.AddLabel(id, args[1], actor); err != nil {
				return err
			}
			if err := a.saveCategories(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %q to %s", args[1], id.DisplayName())))
			return nil
		},
	}
}

func categoriesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category> <label>",
		Short: "Remove an unused label from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			actor, err := a.actingUser()
			if err != nil {
				return err
			}

			if err := a.categories.RemoveLabel(id, args[1], a.payments.Payments(), actor); err != nil {
				return err
			}
			if err := a.saveCategories(ctx); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %q from %s", args[1], id.DisplayName())))
			return nil
		},
	}
}
