package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/alchemy/pkg/alchemy"
)

const modulePath = "github.com/mesh-intelligence/alchemy"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the alchemist version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "alchemist v%s\nmodule: %s\n", alchemy.Version, modulePath)
			return nil
		},
	}
}
