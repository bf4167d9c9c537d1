// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package html

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/antchfx/htmlquery"
	"github.com/dotchain/sweet/dom"
	"golang.org/x/net/html"
)

// Document is a parsed html document whose elements can be driven
// through dom.Element
type Document struct {
	root *html.Node
}

// Parse reads an html document
func Parse(r io.Reader) (*Document, error) {
	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root}, nil
}

// Query returns the elements matching the XPath expression, in
// document order
func (d *Document) Query(xpath string) ([]dom.Element, error) {
	nodes, err := htmlquery.QueryAll(d.root, xpath)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", xpath, err)
	}

	matched := map[*html.Node]bool{}
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			matched[n] = true
		}
	}

	result := []dom.Element{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if matched[n] {
			result = append(result, wrap(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return result, nil
}

// String renders the whole document
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		panic(err)
	}
	return buf.String()
}

// GetCurrentResources returns a description of everything held by
// live elements: listeners and running transitions. Tests use it to
// check that closing or destroying released everything.
func GetCurrentResources() []string {
	result := []string{}
	for n, ls := range listeners {
		for _, l := range ls {
			result = append(result, fmt.Sprintf("%s listener %s.%s", n.Data, l.event, l.namespace))
		}
	}
	for _, key := range timeline.Running() {
		result = append(result, fmt.Sprintf("%s transition %s", key.Target.(element).Node.Data, key.Property))
	}
	sort.Strings(result)
	return result
}
