package recipebook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// readJSONL reads one recipe per line. Blank lines are ignored; malformed
// lines are logged and skipped.
func readJSONL(path string, log *zap.Logger) ([]types.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var recipes []types.Recipe
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r types.Recipe
		if err := json.Unmarshal(line, &r); err != nil {
			log.Warn("skipping malformed recipe line",
				zap.String("path", path),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}
		recipes = append(recipes, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return recipes, nil
}

// writeJSONL atomically writes one recipe per line.
func writeJSONL(path string, recipes []types.Recipe) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		for _, r := range recipes {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}
		return nil
	})
}

// writeFileAtomic writes path using the temp-file, fsync, rename pattern so
// readers never observe a partial book.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".recipes-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
