package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// printElements writes one element per line in display form.
func printElements(cmd *cobra.Command, elems []*types.Element) {
	for _, e := range elems {
		fmt.Fprintln(cmd.OutOrStdout(), e)
	}
}

// parseElements parses command-line element arguments.
func parseElements(args []string) ([]*types.Element, error) {
	elems := make([]*types.Element, 0, len(args))
	for _, arg := range args {
		e, err := types.ParseElement(arg)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return elems, nil
}
