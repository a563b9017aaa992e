package htmldoc

import (
	"io"

	"golang.org/x/net/html"
)

// Elements which never have content when serialized. This is the list
// html.Render checks against.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"keygen": true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// render writes n as HTML. Text or markup assigned to a void element stays
// in the tree but is skipped, as browsers do.
func render(w io.Writer, n *html.Node) error {
	type detached struct {
		node, first, last *html.Node
	}
	var pruned []detached
	var prune func(*html.Node)
	prune = func(n *html.Node) {
		if n.Type == html.ElementNode && voidElements[n.Data] && n.FirstChild != nil {
			pruned = append(pruned, detached{n, n.FirstChild, n.LastChild})
			n.FirstChild, n.LastChild = nil, nil
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			prune(c)
		}
	}
	prune(n)
	defer func() {
		for _, d := range pruned {
			d.node.FirstChild, d.node.LastChild = d.first, d.last
		}
	}()
	return html.Render(w, n)
}
