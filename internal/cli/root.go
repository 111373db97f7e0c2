// Package cli implements the alchemist command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/alchemy/internal/paths"
	"github.com/mesh-intelligence/alchemy/internal/recipebook"
	"github.com/mesh-intelligence/alchemy/pkg/alchemy"
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir  string
	recipeFile string
	jsonMode   bool
	verbose    bool
}

// app is the state shared by the subcommands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	log       *zap.Logger
	book      types.RecipeBook
}

// sysError marks an error as an environment failure (exit code 2) rather
// than a usage mistake.
type sysError struct {
	err error
}

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemErr(err error) error {
	if err == nil {
		return nil
	}
	return &sysError{err: err}
}

// NewRootCmd creates the top-level "alchemist" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:     "alchemist",
		Short:   "Combine and split alchemical elements",
		Long:    "Alchemist fuses elements in a cauldron and splits them in a purifier\naccording to a shared recipe book.",
		Version: alchemy.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/alchemy)")
	root.PersistentFlags().StringVar(&a.flags.recipeFile, "recipes", "", "recipe book (.jsonl, .yaml, .db); default: config or built-in book")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newBrewCmd(a))
	root.AddCommand(newPurifyCmd(a))
	root.AddCommand(newRecipesCmd(a))
	root.AddCommand(newRunCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "Error:", err)

	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// prepare resolves the config directory, loads config.yaml and builds the
// logger. The recipe book is loaded lazily by recipeBook.
func (a *app) prepare() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return systemErr(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", configDir, err)
	}
	a.cfg = cfg

	log, err := newLogger(cfg.LogLevel, a.flags.verbose)
	if err != nil {
		return systemErr(fmt.Errorf("build logger: %w", err))
	}
	a.log = log
	return nil
}

// recipeBook returns the recipe book for this invocation, loading it on
// first use from --recipes, config.yaml or ALCHEMY_RECIPES, or seeding the
// built-in book when none is set.
func (a *app) recipeBook() (types.RecipeBook, error) {
	if a.book != nil {
		return a.book, nil
	}

	path, err := paths.ResolveRecipeFile(a.flags.recipeFile, a.cfg.RecipeFile, a.configDir)
	if err != nil {
		return nil, systemErr(fmt.Errorf("resolve recipe book: %w", err))
	}

	book := alchemy.NewRecipeTable()
	switch {
	case path != "":
		if _, err := recipebook.Load(book, path, a.log); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, systemErr(err)
			}
			return nil, err
		}
	case a.cfg.BuiltinRecipes:
		if err := recipebook.SeedBuiltin(book); err != nil {
			return nil, err
		}
		a.log.Debug("seeded built-in recipe book", zap.Int("recipes", book.Len()))
	}

	a.book = book
	return book, nil
}
