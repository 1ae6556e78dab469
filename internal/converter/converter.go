// Package converter turns the bytes of one document format into another.
package converter

import (
	"bytes"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/mcncl/docconv/internal/errors"
	"github.com/mcncl/docconv/internal/formatter"
	"github.com/mcncl/docconv/internal/models"
	"github.com/mcncl/docconv/internal/parser"
)

// Converter reads a whole input document and writes it in another format.
type Converter interface {
	Convert(input []byte, w io.Writer) error
}

// JSONToYAML converts a JSON document to block-style YAML.
type JSONToYAML struct {
	Indent   int
	SortKeys bool
	Logger   *zap.Logger
}

// Convert implements Converter.
func (c JSONToYAML) Convert(input []byte, w io.Writer) error {
	return convert(logger(c.Logger), input, w, parser.ParseJSON, formatter.NewYAMLFormatter(c.Indent, c.SortKeys))
}

// YAMLToJSON converts a YAML document to pretty-printed JSON with sorted keys.
type YAMLToJSON struct {
	Indent int
	Logger *zap.Logger
}

// Convert implements Converter.
func (c YAMLToJSON) Convert(input []byte, w io.Writer) error {
	return convert(logger(c.Logger), input, w, parser.ParseYAML, formatter.NewJSONFormatter(c.Indent))
}

type documentFormatter interface {
	Format(w io.Writer, doc models.Document) error
}

func convert(lg *zap.Logger, input []byte, w io.Writer, parse func(io.Reader) (models.Document, error), f documentFormatter) error {
	start := time.Now()
	doc, err := parse(bytes.NewReader(input))
	if err != nil {
		return err
	}
	lg.Debug("parsed input", zap.Int("bytes", len(input)), zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	if err := f.Format(w, doc); err != nil {
		return errors.NewEncodeError("failed to serialize document", err)
	}
	lg.Debug("serialized output", zap.Duration("elapsed", time.Since(start)))
	return nil
}

func logger(lg *zap.Logger) *zap.Logger {
	if lg == nil {
		return zap.NewNop()
	}
	return lg
}
