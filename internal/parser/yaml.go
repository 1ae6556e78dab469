package parser

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	apperrors "github.com/mcncl/docconv/internal/errors"
	"github.com/mcncl/docconv/internal/models"
)

const (
	nullTag      = "!!null"
	boolTag      = "!!bool"
	strTag       = "!!str"
	intTag       = "!!int"
	floatTag     = "!!float"
	timestampTag = "!!timestamp"
	binaryTag    = "!!binary"
	seqTag       = "!!seq"
	mapTag       = "!!map"
	mergeTag     = "!!merge"
)

// maxYAMLNodes bounds alias expansion.
const maxYAMLNodes = 10_000_000

// ParseYAML reads a single YAML document from reader.
//
// Only plain data is produced: mappings, sequences and core scalars.
// Application-specific tags are rejected rather than constructed.
// An empty stream is the null document.
func ParseYAML(reader io.Reader) (models.Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.Document{}, apperrors.NewInputError("failed to read YAML input", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Document{}, nil
		}
		return models.Document{}, apperrors.NewParsingError(err.Error(), apperrors.ErrInvalidYAML)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return models.Document{}, apperrors.NewParsingError(err.Error(), apperrors.ErrInvalidYAML)
		}
		return models.Document{}, apperrors.NewParsingError(
			"expected a single document but found another at line "+strconv.Itoa(extra.Line),
			apperrors.ErrMultipleDocuments,
		)
	}

	l := &yamlLoader{ancestors: make(map[*yaml.Node]bool)}
	root, err := l.value(&doc)
	if err != nil {
		return models.Document{}, apperrors.NewParsingError("failed to load YAML document", err)
	}
	return models.Document{Root: root}, nil
}

// ParseYAMLString parses YAML from a string
func ParseYAMLString(yamlString string) (models.Document, error) {
	return ParseYAML(strings.NewReader(yamlString))
}

type yamlLoader struct {
	// ancestors holds the collections currently being loaded; an alias to
	// one of them would never terminate.
	ancestors map[*yaml.Node]bool
	nodes     int
}

func (l *yamlLoader) value(n *yaml.Node) (models.Value, error) {
	l.nodes++
	if l.nodes > maxYAMLNodes {
		return nil, errors.Errorf("line %d: document expands to more than %d nodes", n.Line, maxYAMLNodes)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return l.value(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, errors.Errorf("line %d: unknown anchor %q", n.Line, n.Value)
		}
		if l.ancestors[n.Alias] {
			return nil, errors.Wrapf(apperrors.ErrRecursiveAlias, "line %d: *%s", n.Line, n.Value)
		}
		return l.value(n.Alias)
	case yaml.MappingNode:
		return l.mapping(n)
	case yaml.SequenceNode:
		return l.sequence(n)
	case yaml.ScalarNode:
		return scalar(n)
	default:
		return nil, errors.Errorf("line %d: unknown node kind %d", n.Line, n.Kind)
	}
}

func (l *yamlLoader) sequence(n *yaml.Node) (models.Value, error) {
	if n.ShortTag() != seqTag {
		return nil, unsupportedTag(n)
	}
	l.ancestors[n] = true
	defer delete(l.ancestors, n)

	arr := make([]models.Value, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := l.value(item)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	return arr, nil
}

func (l *yamlLoader) mapping(n *yaml.Node) (models.Value, error) {
	if n.ShortTag() != mapTag {
		return nil, unsupportedTag(n)
	}
	l.ancestors[n] = true
	defer delete(l.ancestors, n)

	obj := models.NewObject()
	var merged []*models.Object
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == mergeTag {
			sources, err := l.mergeSources(valueNode)
			if err != nil {
				return nil, err
			}
			merged = append(merged, sources...)
			continue
		}

		key, err := l.key(keyNode)
		if err != nil {
			return nil, err
		}
		v, err := l.value(valueNode)
		if err != nil {
			return nil, errors.Wrapf(err, "key %q", key)
		}
		obj.Set(key, v)
	}

	// Explicit keys win over merged ones, earlier merge sources over later.
	for _, src := range merged {
		for _, key := range src.Keys() {
			if obj.Has(key) {
				continue
			}
			v, _ := src.Get(key)
			obj.Set(key, v)
		}
	}
	return obj, nil
}

func (l *yamlLoader) mergeSources(n *yaml.Node) ([]*models.Object, error) {
	target := n
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		target = n.Alias
	}

	var items []*yaml.Node
	switch target.Kind {
	case yaml.MappingNode:
		items = []*yaml.Node{n}
	case yaml.SequenceNode:
		items = target.Content
	default:
		return nil, errors.Wrapf(apperrors.ErrInvalidYAML, "line %d: merge value must be a mapping or a sequence of mappings", n.Line)
	}

	sources := make([]*models.Object, 0, len(items))
	for _, item := range items {
		v, err := l.value(item)
		if err != nil {
			return nil, err
		}
		obj, ok := v.(*models.Object)
		if !ok {
			return nil, errors.Wrapf(apperrors.ErrInvalidYAML, "line %d: merge value must be a mapping or a sequence of mappings", item.Line)
		}
		sources = append(sources, obj)
	}
	return sources, nil
}

// key turns a mapping key into its JSON object key text.
func (l *yamlLoader) key(n *yaml.Node) (string, error) {
	v, err := l.value(n)
	if err != nil {
		return "", err
	}
	switch k := v.(type) {
	case string:
		return k, nil
	case models.Number:
		return string(k), nil
	case bool:
		return strconv.FormatBool(k), nil
	case nil:
		return "null", nil
	default:
		return "", errors.Wrapf(apperrors.ErrUnsupportedKey, "line %d", n.Line)
	}
}

func scalar(n *yaml.Node) (models.Value, error) {
	switch n.ShortTag() {
	case strTag, timestampTag, binaryTag, mergeTag:
		return n.Value, nil
	case nullTag:
		return nil, nil
	case boolTag:
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return b, nil
	case intTag:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		switch i := v.(type) {
		case int:
			return models.IntNumber(int64(i)), nil
		case int64:
			return models.IntNumber(i), nil
		case uint64:
			return models.UintNumber(i), nil
		case float64:
			return finiteFloat(n, i)
		default:
			return nil, errors.Errorf("line %d: cannot load %q as an integer", n.Line, n.Value)
		}
	case floatTag:
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return finiteFloat(n, f)
	default:
		return nil, unsupportedTag(n)
	}
}

func finiteFloat(n *yaml.Node, f float64) (models.Value, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, errors.Wrapf(apperrors.ErrNonFiniteNumber, "line %d: %s", n.Line, n.Value)
	}
	return models.FloatNumber(f), nil
}

func unsupportedTag(n *yaml.Node) error {
	return errors.Wrapf(apperrors.ErrUnsupportedTag, "line %d: %s", n.Line, n.Tag)
}
