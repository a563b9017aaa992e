package htmldoc

import (
	"strings"
	"testing"

	"github.com/npillmayer/elcreate/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestBlankDocumentRegions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elcreate.dom")
	defer teardown()
	//
	doc := New()
	require.NotNil(t, doc.DocumentElement())
	assert.Equal(t, "html", doc.DocumentElement().TagName())
	require.NotNil(t, doc.Head())
	assert.Equal(t, "head", doc.Head().TagName())
	require.NotNil(t, doc.Body())
	assert.Equal(t, "body", doc.Body().TagName())
	heads := doc.GetElementsByTagName("HEAD")
	require.Len(t, heads, 1)
	assert.Equal(t, doc.Head(), heads[0], "lookup by name should find the same head node")
	assert.Len(t, doc.GetElementsByTagName("*"), 3)
}

func TestCreateElementNormalizesName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elcreate.dom")
	defer teardown()
	//
	doc := New()
	el, err := doc.CreateElement("DiV")
	require.NoError(t, err)
	assert.Equal(t, "div", el.TagName())
	assert.Equal(t, atom.Div, el.(Element).HTMLNode().DataAtom)
	assert.Nil(t, el.ParentNode(), "new elements are detached")
	custom, err := doc.CreateElement("my-widget")
	require.NoError(t, err)
	assert.Equal(t, "my-widget", custom.TagName())
}

func TestCreateElementRejectsInvalidNames(t *testing.T) {
	doc := New()
	for _, name := range []string{"", "1div", "a b", "<p>", "-x"} {
		_, err := doc.CreateElement(name)
		assert.ErrorIs(t, err, w3cdom.ErrInvalidCharacter, "name %q", name)
	}
}

func TestAttributes(t *testing.T) {
	doc := New()
	el, _ := doc.CreateElement("input")
	require.NoError(t, el.SetAttribute("ID", "x"))
	require.NoError(t, el.SetAttribute("disabled", ""))
	require.NoError(t, el.SetAttribute("id", "y"))
	v, ok := el.GetAttribute("id")
	assert.True(t, ok)
	assert.Equal(t, "y", v)
	assert.Equal(t, []w3cdom.Attr{{Key: "id", Value: "y"}, {Key: "disabled", Value: ""}}, el.Attributes())
	_, ok = el.GetAttribute("value")
	assert.False(t, ok)
	assert.ErrorIs(t, el.SetAttribute("a=b", "c"), w3cdom.ErrInvalidCharacter)
}

func TestInnerHTMLAndTextContent(t *testing.T) {
	doc := New()
	el, _ := doc.CreateElement("p")
	require.NoError(t, el.SetInnerHTML("<b>x</b> and <i>z</i>"))
	require.Len(t, el.Children(), 2)
	assert.Equal(t, "x and z", el.TextContent())
	inner, err := el.(Element).InnerHTML()
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b> and <i>z</i>", inner)
	//
	el.SetTextContent("<y>")
	assert.Empty(t, el.Children())
	assert.Equal(t, "<y>", el.TextContent())
	outer, err := el.(Element).OuterHTML()
	require.NoError(t, err)
	assert.Equal(t, "<p>&lt;y&gt;</p>", outer)
	//
	el.SetTextContent("")
	assert.Nil(t, el.(Element).HTMLNode().FirstChild)
}

func TestAppendChildMovesAndChecksHierarchy(t *testing.T) {
	doc := New()
	outer, _ := doc.CreateElement("div")
	inner, _ := doc.CreateElement("span")
	other, _ := doc.CreateElement("section")
	require.NoError(t, outer.AppendChild(inner))
	assert.Equal(t, outer, inner.ParentNode())
	require.NoError(t, other.AppendChild(inner))
	assert.Equal(t, other, inner.ParentNode())
	assert.Empty(t, outer.Children())
	//
	assert.ErrorIs(t, inner.AppendChild(other), w3cdom.ErrHierarchyRequest)
	assert.ErrorIs(t, inner.AppendChild(inner), w3cdom.ErrHierarchyRequest)
	assert.ErrorIs(t, inner.AppendChild(foreignElement{}), w3cdom.ErrWrongDocument)
}

func TestWrapIncompleteDocuments(t *testing.T) {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html})
	doc := Wrap(root)
	assert.Nil(t, doc.Head())
	assert.Nil(t, doc.Body())
	require.NotNil(t, doc.DocumentElement())
	//
	empty := Wrap(nil)
	assert.Nil(t, empty.Head())
	assert.Nil(t, empty.Body())
	assert.Nil(t, empty.DocumentElement())
	assert.Empty(t, empty.GetElementsByTagName("*"))
}

func TestQuerySelector(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html><body><div id="a"><span class="c">1</span><span class="c">2</span></div></body></html>`))
	require.NoError(t, err)
	el, err := doc.QuerySelector("#a > .c")
	require.NoError(t, err)
	require.NotNil(t, el)
	assert.Equal(t, "1", el.TextContent())
	all, err := doc.QuerySelectorAll("span.c")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	none, err := doc.QuerySelector("article")
	require.NoError(t, err)
	assert.Nil(t, none)
	_, err = doc.QuerySelector("[[")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	doc := New()
	el, _ := doc.CreateElement("meta")
	require.NoError(t, el.SetAttribute("charset", "utf-8"))
	require.NoError(t, doc.Head().AppendChild(el))
	var b strings.Builder
	require.NoError(t, doc.Render(&b))
	assert.Equal(t, `<!DOCTYPE html><html><head><meta charset="utf-8"/></head><body></body></html>`, b.String())
}

// foreignElement is an element of some other document implementation.
type foreignElement struct {
	w3cdom.Element
}

func TestRenderVoidElementWithContent(t *testing.T) {
	doc := New()
	img, _ := doc.CreateElement("img")
	img.SetTextContent("x")
	br, _ := doc.CreateElement("br")
	require.NoError(t, br.SetInnerHTML("<b>y</b>"))
	div, _ := doc.CreateElement("div")
	require.NoError(t, div.AppendChild(img))
	require.NoError(t, doc.Body().AppendChild(div))
	require.NoError(t, doc.Body().AppendChild(br))
	//
	var b strings.Builder
	require.NoError(t, doc.Render(&b))
	assert.Equal(t, `<!DOCTYPE html><html><head></head><body><div><img/></div><br/></body></html>`, b.String())
	out, err := div.(Element).OuterHTML()
	require.NoError(t, err)
	assert.Equal(t, `<div><img/></div>`, out)
	out, err = div.(Element).InnerHTML()
	require.NoError(t, err)
	assert.Equal(t, `<img/>`, out)
	assert.Equal(t, "x", img.TextContent(), "content of void elements stays in the tree")
	assert.Equal(t, "y", br.TextContent())
}

func TestNilDocument(t *testing.T) {
	var doc *Document
	assert.Nil(t, doc.Root())
	assert.Nil(t, doc.DocumentElement())
	assert.Nil(t, doc.Head())
	assert.Nil(t, doc.Body())
	assert.Empty(t, doc.GetElementsByTagName("*"))
	el, err := doc.QuerySelector("div")
	assert.NoError(t, err)
	assert.Nil(t, el)
	var b strings.Builder
	assert.NoError(t, doc.Render(&b))
	assert.Empty(t, b.String())
}
