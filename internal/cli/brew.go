package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/alchemy/pkg/alchemy"
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// vesselOutput is the JSON shape printed by brew and purify.
type vesselOutput struct {
	Kind     string           `json:"kind"`
	Elements []*types.Element `json:"elements"`
	Summary  string           `json:"summary"`
}

func newBrewCmd(a *app) *cobra.Command {
	return newVesselCmd(a, types.VesselCauldron, &cobra.Command{
		Use:   "brew <element>...",
		Short: "Add elements to a cauldron and print what comes out",
		Long: `Brew adds each element in order to an empty cauldron. Each element fuses
with the most recently added partner it has a recipe with.

A trailing @N marks a catalyst with N uses.

Example:
  alchemist brew Water Wind
  alchemist brew "Philosophers' stone@2" Water Water Water`,
	})
}

func newPurifyCmd(a *app) *cobra.Command {
	return newVesselCmd(a, types.VesselPurifier, &cobra.Command{
		Use:   "purify <element>...",
		Short: "Split elements in a purifier and print what comes out",
		Long: `Purify adds each element in order to an empty purifier. A known product
is replaced by the two components of its first recipe.

Example:
  alchemist purify Ice Steam`,
	})
}

// newVesselCmd wires the shared run logic for brew and purify.
func newVesselCmd(a *app, kind string, cmd *cobra.Command) *cobra.Command {
	var summary bool
	cmd.Args = cobra.MinimumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		elems, err := parseElements(args)
		if err != nil {
			return err
		}
		book, err := a.recipeBook()
		if err != nil {
			return err
		}
		v, err := alchemy.NewVessel(kind, book)
		if err != nil {
			return err
		}

		for _, e := range elems {
			if err := v.Add(e); err != nil {
				return fmt.Errorf("add %s: %w", e, err)
			}
			a.log.Debug("added element",
				zap.String("vessel", kind),
				zap.String("element", e.String()),
				zap.Int("contents", v.Len()))
		}

		report := v.Summarize()
		contents := v.Extract()
		switch {
		case a.flags.jsonMode:
			return printJSON(cmd, vesselOutput{Kind: kind, Elements: contents, Summary: report})
		case summary:
			fmt.Fprintln(cmd.OutOrStdout(), report)
		default:
			printElements(cmd, contents)
		}
		return nil
	}
	cmd.Flags().BoolVar(&summary, "summary", false, "print a grouped summary instead of the elements")
	return cmd
}
