package formatter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/docconv/internal/models"
)

func formatYAML(t *testing.T, f *YAMLFormatter, root models.Value) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, models.Document{Root: root}))
	return buf.String()
}

func TestYAMLFormatter_KeepsKeyOrder(t *testing.T) {
	obj := models.NewObject()
	obj.Set("b", models.Number("1"))
	obj.Set("a", models.Number("2"))

	out := formatYAML(t, NewYAMLFormatter(DefaultYAMLIndent, false), obj)
	assert.Equal(t, "b: 1\na: 2\n", out)
}

func TestYAMLFormatter_SortKeys(t *testing.T) {
	obj := models.NewObject()
	obj.Set("b", models.Number("1"))
	obj.Set("a", models.Number("2"))

	out := formatYAML(t, NewYAMLFormatter(DefaultYAMLIndent, true), obj)
	assert.Equal(t, "a: 2\nb: 1\n", out)
}

func TestYAMLFormatter_BlockStyle(t *testing.T) {
	inner := models.NewObject()
	inner.Set("items", []models.Value{models.Number("1"), models.Number("2")})
	obj := models.NewObject()
	obj.Set("outer", inner)

	out := formatYAML(t, NewYAMLFormatter(DefaultYAMLIndent, false), obj)
	assert.NotContains(t, out, "{")
	assert.NotContains(t, out, "[")
	assert.YAMLEq(t, "outer:\n  items:\n  - 1\n  - 2\n", out)
}

func TestYAMLFormatter_Indent(t *testing.T) {
	inner := models.NewObject()
	inner.Set("b", models.Number("1"))
	obj := models.NewObject()
	obj.Set("a", inner)

	assert.Equal(t, "a:\n  b: 1\n", formatYAML(t, NewYAMLFormatter(2, false), obj))
	assert.Equal(t, "a:\n    b: 1\n", formatYAML(t, NewYAMLFormatter(4, false), obj))
}

func TestYAMLFormatter_ScalarsReadBackWithTheirType(t *testing.T) {
	obj := models.NewObject()
	obj.Set("numeric_string", "123")
	obj.Set("bool_string", "true")
	obj.Set("null_string", "null")
	obj.Set("empty", "")
	obj.Set("int", models.Number("42"))
	obj.Set("float", models.Number("1.0"))
	obj.Set("bool", false)
	obj.Set("null", nil)
	obj.Set("multiline", "first\nsecond\n")

	out := formatYAML(t, NewYAMLFormatter(DefaultYAMLIndent, false), obj)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "123", got["numeric_string"])
	assert.Equal(t, "true", got["bool_string"])
	assert.Equal(t, "null", got["null_string"])
	assert.Equal(t, "", got["empty"])
	assert.Equal(t, 42, got["int"])
	assert.Equal(t, 1.0, got["float"])
	assert.Equal(t, false, got["bool"])
	assert.Nil(t, got["null"])
	assert.Equal(t, "first\nsecond\n", got["multiline"])
	assert.NotContains(t, out, "!!")
}

func TestYAMLFormatter_QuotesMergeKeyAndOldBooleans(t *testing.T) {
	obj := models.NewObject()
	obj.Set("<<", models.Number("1"))
	obj.Set("y", "Y")
	obj.Set("answer", "no")
	obj.Set("plain", "maybe")

	out := formatYAML(t, NewYAMLFormatter(DefaultYAMLIndent, false), obj)
	assert.Equal(t, "\"<<\": 1\n\"y\": \"Y\"\nanswer: \"no\"\nplain: maybe\n", out)
}

func TestYAMLFormatter_LiteralUnicode(t *testing.T) {
	obj := models.NewObject()
	obj.Set("name", "Zoë")
	obj.Set("check", "✓ 日本語")

	out := formatYAML(t, NewYAMLFormatter(DefaultYAMLIndent, false), obj)
	assert.Contains(t, out, "Zoë")
	assert.Contains(t, out, "日本語")
	assert.NotContains(t, out, `\u`)
}

func TestYAMLFormatter_RootScalarAndEmptyContainers(t *testing.T) {
	f := NewYAMLFormatter(DefaultYAMLIndent, false)

	assert.Equal(t, "hello\n", formatYAML(t, f, "hello"))
	assert.YAMLEq(t, "{}", formatYAML(t, f, models.NewObject()))
	assert.YAMLEq(t, "[]", formatYAML(t, f, []models.Value{}))
}

func TestYAMLFormatter_UnsupportedValue(t *testing.T) {
	var buf bytes.Buffer
	err := NewYAMLFormatter(DefaultYAMLIndent, false).Format(&buf, models.Document{Root: struct{}{}})
	assert.Error(t, err)
}
