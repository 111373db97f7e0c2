package types

import (
	"errors"
	"path/filepath"
	"strings"
)

// Config holds recipe book and logging settings for the alchemist CLI.
type Config struct {
	RecipeFile     string `json:"recipes" yaml:"recipes" mapstructure:"recipes"`
	LogLevel       string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	BuiltinRecipes bool   `json:"builtin_recipes" yaml:"builtin_recipes" mapstructure:"builtin_recipes"`
}

// Log levels accepted by Validate.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Recipe book formats, selected by file extension.
const (
	RecipeFormatJSONL  = "jsonl"
	RecipeFormatYAML   = "yaml"
	RecipeFormatSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrLogLevelUnknown     = errors.New("unknown log level")
	ErrRecipeFormatUnknown = errors.New("unknown recipe book format")
)

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

var recipeFormatsByExt = map[string]string{
	".jsonl":  RecipeFormatJSONL,
	".yaml":   RecipeFormatYAML,
	".yml":    RecipeFormatYAML,
	".db":     RecipeFormatSQLite,
	".sqlite": RecipeFormatSQLite,
}

// RecipeFormat returns the recipe book format implied by path's extension.
func RecipeFormat(path string) (string, error) {
	format, ok := recipeFormatsByExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", ErrRecipeFormatUnknown
	}
	return format, nil
}

// Validate checks that the Config is well-formed. An empty LogLevel and an
// empty RecipeFile are valid.
func (c Config) Validate() error {
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if c.RecipeFile != "" {
		if _, err := RecipeFormat(c.RecipeFile); err != nil {
			return err
		}
	}
	return nil
}
