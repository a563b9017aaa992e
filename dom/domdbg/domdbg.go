/*
Package domdbg implements helpers to debug element trees.

Print renders a tree as indented text, ToGraphViz as a GraphViz (DOT)
diagram. Both work on any implementation of w3cdom.Element.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/elcreate/dom/w3cdom"
	tp "github.com/xlab/treeprint"
)

// Print returns an indented textual representation of the tree rooted at el.
// Elements without element children show their text content as a leaf.
func Print(el w3cdom.Element) string {
	if el == nil {
		return "<nil>\n"
	}
	p := tp.New()
	p.SetValue(label(el))
	printChildren(p, el)
	return p.String()
}

func printChildren(branch tp.Tree, el w3cdom.Element) {
	children := el.Children()
	if len(children) == 0 {
		if txt := el.TextContent(); txt != "" {
			branch.AddNode(shortText(txt, 24))
		}
		return
	}
	for _, ch := range children {
		printChildren(branch.AddBranch(label(ch)), ch)
	}
}

func label(el w3cdom.Element) string {
	var b strings.Builder
	b.WriteString("<" + el.TagName())
	for _, a := range el.Attributes() {
		fmt.Fprintf(&b, " %s=%q", a.Key, a.Value)
	}
	b.WriteString(">")
	return b.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	AttrsTmpl *template.Template
	AttrEdge  *template.Template
}

type node struct {
	Name  string
	Tag   string
	Text  string
	Attrs []w3cdom.Attr
}

type edge struct {
	From, To string
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format. Every element is drawn with a table of its
// attributes; elements without element children are drawn with their
// text content.
func ToGraphViz(el w3cdom.Element, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.AttrsTmpl = template.Must(template.New("attrs").Parse(attrsTmpl))
	gparams.AttrEdge = template.Must(template.New("attredge").Parse(attrEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if el != nil {
		counter := 0
		if _, err = nodes(el, w, &counter, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given an element and a testing.T, it will
// create a Graphiviz image of the tree under el and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(el w3cdom.Element, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(el, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

func nodes(el w3cdom.Element, w io.Writer, counter *int, gparams *graphParamsType) (string, error) {
	*counter++
	n := node{
		Name:  fmt.Sprintf("node%05d", *counter),
		Tag:   el.TagName(),
		Attrs: el.Attributes(),
	}
	children := el.Children()
	if len(children) == 0 {
		n.Text = shortText(el.TextContent(), 10)
	}
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		return "", err
	}
	if len(n.Attrs) > 0 {
		if err := gparams.AttrsTmpl.Execute(w, n); err != nil {
			return "", err
		}
		if err := gparams.AttrEdge.Execute(w, n); err != nil {
			return "", err
		}
	}
	for _, ch := range children {
		name, err := nodes(ch, w, counter, gparams)
		if err != nil {
			return "", err
		}
		if err = gparams.EdgeTmpl.Execute(w, edge{From: n.Name, To: name}); err != nil {
			return "", err
		}
	}
	return n.Name, nil
}

func shortText(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		s = string(r[:max]) + "…"
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .Text }}
{{ .Name }}	[ label=<{{ .Tag }}<br/><font face="Courier" point-size="11">{{ .Text | html }}</font>> shape=box style=filled fillcolor=grey95 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Tag }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const attrsTmpl = `{{ .Name }}_attrs [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">attributes</font></td></tr>
      {{ range .Attrs }}
      <tr><td align="right">{{ .Key | html }}:</td><td>{{ .Value | html }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const attrEdgeTmpl = `{{ .Name }} -> {{ .Name }}_attrs [dir=none weight=1 style="dashed"] ;
`
