package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/alchemy/internal/recipebook"
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// ErrNoRecipe is returned by recipe lookups that match nothing.
var ErrNoRecipe = errors.New("no matching recipe")

func newRecipesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Inspect and export the recipe book",
	}
	cmd.AddCommand(newRecipesListCmd(a))
	cmd.AddCommand(newRecipesProductCmd(a))
	cmd.AddCommand(newRecipesComponentsCmd(a))
	cmd.AddCommand(newRecipesExportCmd(a))
	return cmd
}

func newRecipesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recipes in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.recipeBook()
			if err != nil {
				return err
			}
			recipes := book.Recipes()
			if a.flags.jsonMode {
				return printJSON(cmd, recipes)
			}
			for _, r := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s + %s = %s\n", r.First, r.Second, r.Product)
			}
			return nil
		},
	}
}

func newRecipesProductCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product <a> <b>",
		Short: "Print the product of two components",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.recipeBook()
			if err != nil {
				return err
			}
			product, ok := book.Product(args[0], args[1])
			if !ok {
				return fmt.Errorf("%w for %s + %s", ErrNoRecipe, args[0], args[1])
			}
			if a.flags.jsonMode {
				return printJSON(cmd, map[string]string{"product": product})
			}
			fmt.Fprintln(cmd.OutOrStdout(), product)
			return nil
		},
	}
}

func newRecipesComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components <product>",
		Short: "Print the components of the first recipe for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.recipeBook()
			if err != nil {
				return err
			}
			first, second, ok := book.Components(args[0])
			if !ok {
				return fmt.Errorf("%w producing %s", ErrNoRecipe, args[0])
			}
			if a.flags.jsonMode {
				return printJSON(cmd, []string{first, second})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", first, second)
			return nil
		},
	}
}

func newRecipesExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the recipe book to a .jsonl, .yaml or .db file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.recipeBook()
			if err != nil {
				return err
			}
			if err := recipebook.Save(args[0], book.Recipes()); err != nil {
				if errors.Is(err, types.ErrRecipeFormatUnknown) {
					return err
				}
				return systemErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d recipes to %s\n", book.Len(), args[0])
			return nil
		},
	}
}
