package config

import (
	"fmt"
	"strings"

	"github.com/mcncl/docconv/internal/errors"
)

// Config holds the paths for one conversion run. It is built once from
// the parsed flags and passed by value.
type Config struct {
	Input  string
	Output string
}

// New validates the paths and returns the run configuration.
func New(input, output string) (Config, error) {
	if strings.TrimSpace(input) == "" {
		return Config{}, errors.NewUsageError("input path is empty", errors.ErrInvalidFilePath)
	}
	if strings.TrimSpace(output) == "" {
		return Config{}, errors.NewUsageError("output path is empty", errors.ErrInvalidFilePath)
	}
	return Config{Input: input, Output: output}, nil
}

// String describes the run for logs.
func (c Config) String() string {
	return fmt.Sprintf("%s -> %s", c.Input, c.Output)
}
