// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package markup

import (
	"fmt"
	"io"
	"strings"

	xhtml "golang.org/x/net/html"
)

// FindConfig parses an HTML document and returns the first py-config
// element, or nil when the document declares none. The element's type
// and src attributes and its concatenated text content are captured;
// text is already entity-decoded by the HTML parser.
func FindConfig(r io.Reader) (*ConfigElement, error) {
	doc, err := xhtml.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	node := findNode(doc, ConfigTag)
	if node == nil {
		return nil, nil
	}

	el := &ConfigElement{
		Type: attr(node, "type"),
		Src:  attr(node, "src"),
		Text: textContent(node),
	}

	return el, nil
}

func findNode(n *xhtml.Node, tag string) *xhtml.Node {
	if n.Type == xhtml.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *xhtml.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textContent(n *xhtml.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
