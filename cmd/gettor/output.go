package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// printYAML writes v as a YAML document
func printYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}
