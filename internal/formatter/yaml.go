package formatter

import (
	"io"
	"strconv"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/docconv/internal/models"
)

// DefaultYAMLIndent is the indentation step used when none is configured.
const DefaultYAMLIndent = 2

// YAMLFormatter writes a document as block-style YAML.
//
// Only plain data tags are emitted, Unicode is written literally, and
// strings that would read back as another type are quoted.
type YAMLFormatter struct {
	indent   int
	sortKeys bool
}

// NewYAMLFormatter creates a YAMLFormatter. Mapping keys keep their
// document order unless sortKeys is set.
func NewYAMLFormatter(indent int, sortKeys bool) *YAMLFormatter {
	if indent <= 0 {
		indent = DefaultYAMLIndent
	}
	return &YAMLFormatter{indent: indent, sortKeys: sortKeys}
}

// Format writes doc to w.
func (f *YAMLFormatter) Format(w io.Writer, doc models.Document) error {
	node, err := f.node(doc.Root)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(f.indent)
	if err := enc.Encode(node); err != nil {
		return errors.Wrap(err, "encode YAML")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "flush YAML")
	}
	return nil
}

func (f *YAMLFormatter) node(v models.Value) (*yaml.Node, error) {
	switch v := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	case string:
		return stringNode(v), nil
	case models.Number:
		// Untagged so the encoder resolves the tag from the text itself.
		return &yaml.Node{Kind: yaml.ScalarNode, Value: string(v)}, nil
	case []models.Value:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, 0, len(v))}
		for i, item := range v {
			n, err := f.node(item)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case *models.Object:
		keys := v.Keys()
		if f.sortKeys {
			keys = v.SortedKeys()
		}
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: make([]*yaml.Node, 0, 2*len(keys))}
		for _, key := range keys {
			value, _ := v.Get(key)
			n, err := f.node(value)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", key)
			}
			m.Content = append(m.Content, stringNode(key), n)
		}
		return m, nil
	default:
		return nil, errors.Errorf("unsupported value of type %T", v)
	}
}

func stringNode(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if mustQuote(s) {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

// mustQuote reports whether a plain s would be read as something other
// than a string: the merge key, or a YAML 1.1 boolean.
func mustQuote(s string) bool {
	switch s {
	case "<<",
		"y", "Y", "yes", "Yes", "YES", "n", "N", "no", "No", "NO",
		"on", "On", "ON", "off", "Off", "OFF":
		return true
	}
	return false
}
