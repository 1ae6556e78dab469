package parser

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	apperrors "github.com/mcncl/docconv/internal/errors"
	"github.com/mcncl/docconv/internal/models"
)

// ParseJSON reads a single JSON document from reader.
// Object key order is preserved; the last of duplicate keys wins.
func ParseJSON(reader io.Reader) (models.Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.Document{}, apperrors.NewInputError("failed to read JSON input", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return models.Document{}, apperrors.NewParsingError("input is empty or contains only whitespace", apperrors.ErrEmptyInput)
	}

	// Validate rejects trailing data, so the decode below only ever sees one value.
	if err := jx.DecodeBytes(data).Validate(); err != nil {
		if isMultipleValues(data) {
			return models.Document{}, apperrors.NewParsingError("multiple JSON values found at the root", apperrors.ErrMultipleJSON)
		}
		return models.Document{}, apperrors.NewParsingError(
			"JSON syntax error: "+err.Error(),
			apperrors.ErrInvalidJSON,
		)
	}

	root, err := decodeJSONValue(jx.DecodeBytes(data))
	if err != nil {
		return models.Document{}, apperrors.NewParsingError("failed to decode JSON", err)
	}
	return models.Document{Root: root}, nil
}

// ParseJSONString parses JSON from a string
func ParseJSONString(jsonString string) (models.Document, error) {
	return ParseJSON(strings.NewReader(jsonString))
}

// isMultipleValues reports whether data starts with a complete JSON value
// followed by more non-whitespace input.
func isMultipleValues(data []byte) bool {
	d := jx.DecodeBytes(data)
	if err := d.Skip(); err != nil {
		return false
	}
	return d.Next() != jx.Invalid
}

func decodeJSONValue(d *jx.Decoder) (models.Value, error) {
	switch tt := d.Next(); tt {
	case jx.String:
		return d.Str()
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return nil, errors.Wrap(err, "number")
		}
		return jsonNumber(string(n))
	case jx.Bool:
		return d.Bool()
	case jx.Null:
		return nil, d.Null()
	case jx.Array:
		arr := make([]models.Value, 0)
		err := d.Arr(func(d *jx.Decoder) error {
			v, err := decodeJSONValue(d)
			if err != nil {
				return err
			}
			arr = append(arr, v)
			return nil
		})
		if err != nil {
			return nil, errors.Wrap(err, "array")
		}
		return arr, nil
	case jx.Object:
		obj := models.NewObject()
		err := d.Obj(func(d *jx.Decoder, key string) error {
			v, err := decodeJSONValue(d)
			if err != nil {
				return errors.Wrapf(err, "key %q", key)
			}
			obj.Set(key, v)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, errors.Errorf("unexpected JSON token %v", tt)
	}
}

// jsonNumber keeps integer literals verbatim and canonicalises floats.
// Literals beyond the float64 range become infinities.
func jsonNumber(lit string) (models.Number, error) {
	n := models.Number(lit)
	if n.IsInteger() {
		return n, nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return "", errors.Wrapf(err, "parse %q", lit)
	}
	return models.FloatNumber(f), nil
}
