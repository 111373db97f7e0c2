package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/alchemy/internal/session"
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// ErrStepFailed is returned when a script step fails; the report has already
// been printed.
var ErrStepFailed = errors.New("script step failed")

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run a script of vessel operations",
		Long: `Run executes a .jsonl or .yaml script. Every step names a vessel and an
operation (add, pop, extract, summarize); the vessel kind (storage,
cauldron, purifier) is given the first time a vessel is used. A step with
op "recipe" adds first + second = product to the shared recipe book.

Example script.jsonl:
  {"vessel":"c","kind":"cauldron","op":"add","element":"Water"}
  {"vessel":"c","op":"add","element":"Wind"}
  {"vessel":"c","op":"extract"}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := session.ReadScript(args[0])
			if err != nil {
				return err
			}
			book, err := a.recipeBook()
			if err != nil {
				return err
			}
			s, err := session.New(book, a.log)
			if err != nil {
				return systemErr(err)
			}

			report := s.Run(steps)
			if a.flags.jsonMode {
				if err := printJSON(cmd, report); err != nil {
					return err
				}
			} else {
				printReport(cmd, report)
			}
			if report.Error != "" {
				return fmt.Errorf("%w: %s", ErrStepFailed, report.Error)
			}
			return nil
		},
	}
}

// printReport renders a session report as text.
func printReport(cmd *cobra.Command, report session.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "session %s\n", report.SessionID)
	for _, res := range report.Steps {
		step := res.Step
		fmt.Fprintf(out, "%d. %s %s", res.Index+1, step.Op, step.Vessel)
		if step.Element != "" {
			fmt.Fprintf(out, " %s", step.Element)
		}
		if step.Op == session.OpRecipe {
			fmt.Fprintf(out, "%s + %s = %s", step.First, step.Second, step.Product)
		}
		fmt.Fprintln(out)

		switch {
		case res.Error != "":
			fmt.Fprintf(out, "   error: %s\n", res.Error)
		case !res.Found:
			fmt.Fprintln(out, "   not found")
		case res.Summary != "":
			fmt.Fprintf(out, "   %s\n", indent(res.Summary))
		case len(res.Elements) > 0:
			fmt.Fprintf(out, "   %v\n", types.ElementNames(res.Elements))
		}
	}

	names := make([]string, 0, len(report.Vessels))
	for name := range report.Vessels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "[%s]\n%s\n", name, report.Vessels[name])
	}
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n   ")
}
