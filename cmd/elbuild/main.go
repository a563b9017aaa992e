/*
Command elbuild builds an element tree from a description file and inserts it
into an HTML document.

Usage:

	elbuild [flags] description.yaml

The description is read from the file given as the single argument, or from
stdin if the argument is "-". Descriptions are YAML (or JSON), with keys tag,
text, html, attribs and children.

Flags:

	-region head|body|other   where to insert the element (default head)
	-base file.html           document to insert into (default: blank document)
	-minify                   minify the rendered document
	-tree                     print the inserted element as an indented tree
	-trace level              trace level (Error, Info or Debug)

The resulting document is written to stdout.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/elcreate"
	"github.com/npillmayer/elcreate/dom/domdbg"
	"github.com/npillmayer/elcreate/dom/htmldoc"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

var traceKeys = []string{"elcreate.builder", "elcreate.dom", "elcreate.tree"}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "elbuild: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	region elcreate.Region
	base   string
	minify bool
	tree   bool
	trace  string
	input  string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	var region string
	fs := flag.NewFlagSet("elbuild", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&region, "region", "head", "where to insert: head, body or other")
	fs.StringVar(&opts.base, "base", "", "HTML document to insert into")
	fs.BoolVar(&opts.minify, "minify", false, "minify the rendered document")
	fs.BoolVar(&opts.tree, "tree", false, "print the inserted element as a tree")
	fs.StringVar(&opts.trace, "trace", "Error", "trace level: Error, Info or Debug")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: elbuild [flags] description.yaml|-")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, errors.New("expected exactly one description file")
	}
	opts.input = fs.Arg(0)
	var err error
	if opts.region, err = elcreate.ParseRegion(region); err != nil {
		return opts, err
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if err = setupTracing(opts.trace, stderr); err != nil {
		return err
	}
	d, err := elcreate.ReadDescriptionFile(opts.input)
	if err != nil {
		return err
	}
	doc, err := loadDocument(opts.base)
	if err != nil {
		return err
	}
	el, err := elcreate.BuildAndInsert(doc, d, opts.region)
	if err != nil {
		return err
	}
	if opts.tree {
		_, err = io.WriteString(stdout, domdbg.Print(el))
		return err
	}
	var buf bytes.Buffer
	if err = doc.Render(&buf); err != nil {
		return err
	}
	out := buf.String()
	if opts.minify {
		m := minify.New()
		m.AddFunc("text/html", html.Minify)
		if out, err = m.String("text/html", out); err != nil {
			return fmt.Errorf("minify: %w", err)
		}
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func loadDocument(path string) (*htmldoc.Document, error) {
	if path == "" {
		return htmldoc.New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return htmldoc.Parse(f)
}

// --- Tracing ---------------------------------------------------------------

func setupTracing(level string, w io.Writer) error {
	conf := flagConfig{}
	conf.InitDefaults()
	for _, key := range traceKeys {
		conf["tracelevel."+key] = level
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	// replaced tracers inherit their previous level
	for _, key := range traceKeys {
		t := tracing.Select(key)
		t.SetTraceLevel(tracing.TraceLevelFromString(level))
		t.SetOutput(w)
	}
	return nil
}

// flagConfig is a schuko.Configuration fed from command-line flags.
type flagConfig map[string]string

func (c flagConfig) InitDefaults() {
	c["tracing.adapter"] = "go"
	c["tracelevel.root"] = "Error"
}

func (c flagConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c flagConfig) GetString(key string) string { return c[key] }

func (c flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

func (c flagConfig) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

func (c flagConfig) IsInteractive() bool { return false }
