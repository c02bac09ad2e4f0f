package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Input is the optional YAML file read by "show --from".
//
//	name: Eli
//	age: 24
//
// Keys left out of the file stay nil so defaults and flags can fill them.
type Input struct {
	Name *string `yaml:"name"`
	Age  *int    `yaml:"age"`
}

// LoadInput reads and parses an input YAML file.
// Returns an error if the file doesn't exist, is malformed,
// or contains unknown fields. Values are not range-checked.
// An empty file yields an empty Input.
func LoadInput(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	// Strict field validation catches typos like "nmae:"
	var input Input
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return &Input{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &input, nil
}
