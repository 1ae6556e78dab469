// Package cli runs a converter as a command-line program.
package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/mcncl/docconv/internal/config"
	"github.com/mcncl/docconv/internal/converter"
	"github.com/mcncl/docconv/internal/errors"
	"github.com/mcncl/docconv/internal/logging"
)

// Version information
const (
	Version = "0.1.0"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Flags are the options every converter program accepts.
type Flags struct {
	Input   string           `help:"Path to the input file." short:"i" required:"" placeholder:"PATH"`
	Output  string           `help:"Path to the output file. Created or truncated." short:"o" required:"" placeholder:"PATH"`
	Debug   bool             `help:"Enable debug logging." short:"d"`
	Version kong.VersionFlag `help:"Show version information." short:"v"`
}

// Program describes one converter executable.
type Program struct {
	Name        string
	Description string

	// Grammar is the kong grammar. It embeds the Flags that Flags points to.
	Grammar any
	Flags   *Flags

	// Converter builds the conversion once the flags are parsed.
	Converter func(lg *zap.Logger) converter.Converter
}

// exitCode carries kong's exit requests (--help, --version) out of Parse.
type exitCode int

// Execute runs the program with the process arguments and exits.
func (p Program) Execute() {
	os.Exit(p.Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run parses args, performs the conversion and returns the exit code.
func (p Program) Run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	parser := kong.Must(p.Grammar,
		kong.Name(p.Name),
		kong.Description(p.Description),
		kong.Vars{"version": fmt.Sprintf("%s version %s", p.Name, Version)},
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "%s: error: %v\n", p.Name, err)
		var parseErr *kong.ParseError
		if stderrors.As(err, &parseErr) && parseErr.Context != nil {
			parseErr.Context.Stdout = stderr
			_ = parseErr.Context.PrintUsage(true)
		}
		return ExitUsage
	}

	lg := logging.New(stderr, p.Flags.Debug)
	defer func() { _ = lg.Sync() }()

	if err := p.run(lg); err != nil {
		fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(err))
		if errors.IsUsage(err) {
			return ExitUsage
		}
		return ExitFailure
	}
	return ExitOK
}

// run reads the whole input, converts it in memory and only then touches
// the output path, so a failed run never creates or truncates the output.
func (p Program) run(lg *zap.Logger) error {
	cfg, err := config.New(p.Flags.Input, p.Flags.Output)
	if err != nil {
		return err
	}
	lg.Debug("starting conversion", zap.String("program", p.Name), zap.Stringer("run", cfg))

	input, err := readInput(cfg.Input)
	if err != nil {
		return err
	}
	lg.Debug("read input", zap.String("path", cfg.Input), zap.Int("bytes", len(input)))

	var out bytes.Buffer
	if err := p.Converter(lg).Convert(input, &out); err != nil {
		return err
	}

	if err := writeOutput(cfg.Output, out.Bytes()); err != nil {
		return err
	}
	lg.Debug("wrote output", zap.String("path", cfg.Output), zap.Int("bytes", out.Len()))
	return nil
}

// readInput reads the whole input file
func readInput(path string) (data []byte, err error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(fmt.Sprintf("file '%s' not found", path), errors.ErrFileNotFound)
		}
		return nil, errors.NewInputError(fmt.Sprintf("failed to open file '%s'", path), err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(file))

	data, err = io.ReadAll(file)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}
	return data, nil
}

// writeOutput creates or truncates the output file and writes data to it
func writeOutput(path string, data []byte) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to create file '%s'", path), err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = multierr.Append(err, errors.NewOutputError(fmt.Sprintf("failed to close file '%s'", path), cerr))
		}
	}()

	if _, err := file.Write(data); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", path), err)
	}
	return nil
}
