package formatter

import (
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	apperrors "github.com/mcncl/docconv/internal/errors"
	"github.com/mcncl/docconv/internal/models"
)

// DefaultJSONIndent is the indentation step used when none is configured.
const DefaultJSONIndent = 4

// JSONFormatter writes a document as pretty-printed JSON with sorted keys.
//
// Layout: one member or item per line, "key": value separators, empty
// containers as {} and [], and no trailing newline.
type JSONFormatter struct {
	indent string
}

// NewJSONFormatter creates a JSONFormatter indenting by the given number of spaces.
func NewJSONFormatter(indent int) *JSONFormatter {
	if indent <= 0 {
		indent = DefaultJSONIndent
	}
	return &JSONFormatter{indent: strings.Repeat(" ", indent)}
}

// Format writes doc to w.
func (f *JSONFormatter) Format(w io.Writer, doc models.Document) error {
	var jw jx.Writer
	if err := f.write(&jw, doc.Root, 0); err != nil {
		return err
	}
	if _, err := w.Write(jw.Buf); err != nil {
		return errors.Wrap(err, "write JSON")
	}
	return nil
}

func (f *JSONFormatter) write(w *jx.Writer, v models.Value, depth int) error {
	switch v := v.(type) {
	case nil:
		w.Null()
	case bool:
		w.Bool(v)
	case string:
		w.Str(v)
	case models.Number:
		if strings.HasSuffix(string(v), "inf") || strings.HasSuffix(string(v), "nan") {
			return errors.Wrap(apperrors.ErrNonFiniteNumber, string(v))
		}
		w.RawStr(string(v))
	case []models.Value:
		if len(v) == 0 {
			w.RawStr("[]")
			return nil
		}
		w.RawStr("[")
		for i, item := range v {
			if i > 0 {
				w.RawStr(",")
			}
			f.newline(w, depth+1)
			if err := f.write(w, item, depth+1); err != nil {
				return errors.Wrapf(err, "index %d", i)
			}
		}
		f.newline(w, depth)
		w.RawStr("]")
	case *models.Object:
		if v.Len() == 0 {
			w.RawStr("{}")
			return nil
		}
		w.RawStr("{")
		for i, key := range v.SortedKeys() {
			if i > 0 {
				w.RawStr(",")
			}
			f.newline(w, depth+1)
			w.Str(key)
			w.RawStr(": ")
			value, _ := v.Get(key)
			if err := f.write(w, value, depth+1); err != nil {
				return errors.Wrapf(err, "key %q", key)
			}
		}
		f.newline(w, depth)
		w.RawStr("}")
	default:
		return errors.Errorf("unsupported value of type %T", v)
	}
	return nil
}

func (f *JSONFormatter) newline(w *jx.Writer, depth int) {
	w.RawStr("\n")
	for i := 0; i < depth; i++ {
		w.RawStr(f.indent)
	}
}
