package recipebook

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// yamlBook is the document layout of a YAML recipe book.
type yamlBook struct {
	Recipes []types.Recipe `yaml:"recipes"`
}

func readYAML(path string) ([]types.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc yamlBook
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc.Recipes, nil
}

func writeYAML(path string, recipes []types.Recipe) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(yamlBook{Recipes: recipes}); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	})
}
