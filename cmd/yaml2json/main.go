// Command yaml2json converts a YAML document to JSON.
//
// # Usage
//
//	yaml2json --input file.yaml --output file.json
//
// The output is pretty-printed with sorted keys and a 4-space indent.
// Only plain data is loaded: application-specific YAML tags are rejected.
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mcncl/docconv/internal/cli"
	"github.com/mcncl/docconv/internal/converter"
)

type flags struct {
	Common cli.Flags `embed:""`
	Indent int       `help:"Indentation step of the JSON output (1-16)." default:"4"`
}

// Validate is called by kong after parsing.
func (f *flags) Validate() error {
	if f.Indent < 1 || f.Indent > 16 {
		return fmt.Errorf("--indent must be between 1 and 16, got %d", f.Indent)
	}
	return nil
}

func main() {
	program(&flags{}).Execute()
}

func program(f *flags) cli.Program {
	return cli.Program{
		Name:        "yaml2json",
		Description: "yaml to json converter",
		Grammar:     f,
		Flags:       &f.Common,
		Converter: func(lg *zap.Logger) converter.Converter {
			return converter.YAMLToJSON{Indent: f.Indent, Logger: lg}
		},
	}
}
