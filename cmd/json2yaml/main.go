// Command json2yaml converts a JSON document to YAML.
//
// # Usage
//
//	json2yaml --input file.json --output file.yaml
//	json2yaml -i file.json -o file.yaml --sort-keys
//
// The output is block-style YAML with Unicode written literally. Object
// keys keep their JSON order unless --sort-keys is given.
package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mcncl/docconv/internal/cli"
	"github.com/mcncl/docconv/internal/converter"
)

type flags struct {
	Common   cli.Flags `embed:""`
	SortKeys bool      `help:"Sort mapping keys." short:"s"`
	Indent   int       `help:"Indentation step of the YAML output (2-9)." default:"2"`
}

// Validate is called by kong after parsing.
func (f *flags) Validate() error {
	if f.Indent < 2 || f.Indent > 9 {
		return fmt.Errorf("--indent must be between 2 and 9, got %d", f.Indent)
	}
	return nil
}

func main() {
	program(&flags{}).Execute()
}

func program(f *flags) cli.Program {
	return cli.Program{
		Name:        "json2yaml",
		Description: "json to yaml converter",
		Grammar:     f,
		Flags:       &f.Common,
		Converter: func(lg *zap.Logger) converter.Converter {
			return converter.JSONToYAML{Indent: f.Indent, SortKeys: f.SortKeys, Logger: lg}
		},
	}
}
