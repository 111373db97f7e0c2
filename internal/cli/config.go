package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/alchemy/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyRecipes  = "recipes"
	cfgKeyLogLevel = "log_level"
	cfgKeyBuiltin  = "builtin_recipes"

	envPrefix = "ALCHEMY"

	defaultLogLevel = types.LogLevelWarn
)

// configFile holds the structure written to config.yaml by config init.
type configFile struct {
	Recipes        string `yaml:"recipes,omitempty"`
	LogLevel       string `yaml:"log_level"`
	BuiltinRecipes bool   `yaml:"builtin_recipes"`
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// directory or file is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyBuiltin, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	// ALCHEMY_RECIPES is resolved by paths.ResolveRecipeFile, after the
	// config value, so only these keys are bound here.
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyLogLevel, cfgKeyBuiltin} {
		if err := v.BindEnv(key); err != nil {
			return types.Config{}, systemErr(fmt.Errorf("bind env %s: %w", key, err))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize config.yaml",
	}
	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigShowCmd(a))
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(a.configDir, 0o755); err != nil {
				return systemErr(fmt.Errorf("create config directory: %w", err))
			}

			path := filepath.Join(a.configDir, configFileExt)
			created, err := writeConfigIfMissing(path)
			if err != nil {
				return systemErr(fmt.Errorf("write config: %w", err))
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", path)
			}
			return nil
		},
	}
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.jsonMode {
				return printJSON(cmd, a.cfg)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config_dir: %s\n", a.configDir)
			fmt.Fprintf(out, "recipes: %s\n", a.cfg.RecipeFile)
			fmt.Fprintf(out, "log_level: %s\n", a.cfg.LogLevel)
			fmt.Fprintf(out, "builtin_recipes: %t\n", a.cfg.BuiltinRecipes)
			return nil
		},
	}
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. Reports whether the file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	cfg := configFile{
		LogLevel:       defaultLogLevel,
		BuiltinRecipes: true,
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# alchemist configuration\n")
	return true, os.WriteFile(path, append(header, data...), 0o644)
}
