package session

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrScriptFormatUnknown is returned for a script that is neither JSONL nor YAML.
var ErrScriptFormatUnknown = errors.New("unknown script format")

// ReadScript reads steps from a .jsonl file (one step per line) or a
// .yaml/.yml file (a list of steps). Unlike recipe books, a malformed
// script line is an error: skipping a step would change the outcome.
func ReadScript(path string) ([]Step, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return readJSONLScript(path)
	case ".yaml", ".yml":
		return readYAMLScript(path)
	default:
		return nil, fmt.Errorf("script %s: %w", path, ErrScriptFormatUnknown)
	}
}

func readJSONLScript(path string) ([]Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var steps []Step
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var step Step
		if err := json.Unmarshal(line, &step); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return steps, nil
}

func readYAMLScript(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return steps, nil
}
