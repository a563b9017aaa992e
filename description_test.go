package elcreate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/elcreate"
	"github.com/npillmayer/elcreate/dom/htmldoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinybox = `
tag: div
attribs:
  id: tinybox
  class: gmbox gmbox-window
children:
  - tag: div
    attribs:
      class: gmclose
  - tag: div
    attribs:
      id: fullscreen
      scroll: false
    children:
      - tag: textarea
        attribs:
          rows: 18
          cols: '66'
          disabled: true
          placeholder: ~
`

func TestDecodeDescriptionYAML(t *testing.T) {
	d, err := elcreate.DecodeDescription(strings.NewReader(tinybox))
	require.NoError(t, err)
	assert.Equal(t, "div", d.Tag)
	require.Len(t, d.Children, 2)
	textarea := d.Children[1].Children[0]
	assert.Equal(t, "textarea", textarea.Tag)
	//
	v, set := textarea.Attribs["rows"].Resolve()
	assert.True(t, set)
	assert.Equal(t, "18", v, "numbers are taken by their textual form")
	assert.False(t, textarea.Attribs["rows"].IsBool())
	assert.True(t, textarea.Attribs["disabled"].IsBool())
	v, set = textarea.Attribs["placeholder"].Resolve()
	assert.True(t, set, "null is the zero value, an empty string")
	assert.Equal(t, "", v)
	_, set = d.Children[1].Attribs["scroll"].Resolve()
	assert.False(t, set)
}

func TestDecodedDescriptionBuilds(t *testing.T) {
	d, err := elcreate.DecodeDescription(strings.NewReader(tinybox))
	require.NoError(t, err)
	doc := htmldoc.New()
	el, err := elcreate.BuildAndInsert(doc, d, elcreate.Body)
	require.NoError(t, err)
	out, err := el.(htmldoc.Element).OuterHTML()
	require.NoError(t, err)
	assert.Equal(t, `<div class="gmbox gmbox-window" id="tinybox">`+
		`<div class="gmclose"></div>`+
		`<div id="fullscreen">`+
		`<textarea cols="66" disabled="" placeholder="" rows="18"></textarea>`+
		`</div></div>`, out)
}

func TestDecodeDescriptionJSON(t *testing.T) {
	d, err := elcreate.DecodeDescription(strings.NewReader(
		`{"tag": "p", "html": "<b>x</b>", "text": "y", "attribs": {"hidden": true, "title": "t"}}`))
	require.NoError(t, err)
	assert.Equal(t, "p", d.Tag)
	assert.Equal(t, "<b>x</b>", d.HTML)
	assert.Equal(t, "y", d.Text)
	assert.Equal(t, elcreate.Bool(true), d.Attribs["hidden"])
	assert.Equal(t, elcreate.String("t"), d.Attribs["title"])
}

func TestDecodeDescriptionErrors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":           "",
		"unknown key":     "tag: div\nattributes: {id: x}\n",
		"missing tag":     "text: hello\n",
		"nested no tag":   "tag: ul\nchildren:\n  - tag: li\n  - text: oops\n",
		"non-scalar attr": "tag: div\nattribs:\n  class: [a, b]\n",
	} {
		_, err := elcreate.DecodeDescription(strings.NewReader(input))
		assert.ErrorIs(t, err, elcreate.ErrInvalidDescription, name)
	}
	_, err := elcreate.DecodeDescription(strings.NewReader("tag: ul\nchildren:\n  - tag: li\n  - text: oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "children[1].tag")
}

func TestValidate(t *testing.T) {
	d := elcreate.Description{
		Tag:      "div",
		Children: []elcreate.Description{{Tag: "p"}, {Tag: "p", Children: []elcreate.Description{{}}}},
	}
	err := d.Validate()
	assert.ErrorIs(t, err, elcreate.ErrInvalidDescription)
	d.Children[1].Children[0].Tag = "span"
	assert.NoError(t, d.Validate())
}

func TestReadDescriptionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "box.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinybox), 0o600))
	d, err := elcreate.ReadDescriptionFile(path)
	require.NoError(t, err)
	assert.Equal(t, "div", d.Tag)
	_, err = elcreate.ReadDescriptionFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAttrValueString(t *testing.T) {
	assert.Equal(t, "true", elcreate.Bool(true).String())
	assert.Equal(t, `"x"`, elcreate.String("x").String())
	var zero elcreate.AttrValue
	v, set := zero.Resolve()
	assert.True(t, set, "zero value is an empty string")
	assert.Equal(t, "", v)
}
