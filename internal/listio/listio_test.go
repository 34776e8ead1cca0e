package listio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadLines(t *testing.T) {
	assert := assert.New(t)

	lines, err := ReadLines(strings.NewReader("Pavel\n\n  Eldar \r\nAnna"))

	assert.NoError(err)
	assert.Equal([]string{"Pavel", "Eldar", "Anna"}, lines)
}

func TestReadLines_Empty(t *testing.T) {
	lines, err := ReadLines(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParseInts(t *testing.T) {
	assert := assert.New(t)

	numbers, err := ParseInts([]string{"3", "-1", "2"})
	assert.NoError(err)
	assert.Equal([]int64{3, -1, 2}, numbers)

	_, err = ParseInts([]string{"3", "x"})
	assert.Error(err)
	assert.Contains(err.Error(), "element 2")
}

func TestWrite(t *testing.T) {
	assert := assert.New(t)
	items := []int{1, 2, 3}

	var text bytes.Buffer
	assert.NoError(Write(&text, "text", items))
	assert.Equal("1\n2\n3\n", text.String())

	var js bytes.Buffer
	assert.NoError(Write(&js, "JSON", items))
	assert.JSONEq("[1,2,3]", js.String())

	var yml bytes.Buffer
	assert.NoError(Write(&yml, "yaml", items))
	assert.YAMLEq("- 1\n- 2\n- 3\n", yml.String())
}

func TestWrite_EmptyList(t *testing.T) {
	var js bytes.Buffer
	assert.NoError(t, Write[string](&js, FormatJSON, nil))
	assert.JSONEq(t, "[]", js.String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := Write(&out, "xml", []string{"a"})
	assert.ErrorIs(t, err, UnknownFormatError)
	assert.Empty(t, out.String())
}

func TestContentTypeAndExtension(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("application/json", ContentType("json"))
	assert.Equal("text/plain", ContentType("text"))
	assert.Equal("yaml", Extension("YAML"))
	assert.Equal("txt", Extension("text"))
}
