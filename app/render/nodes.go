package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// EscapeText returns s as markup-safe text. It builds a text node and
// serializes it, so every HTML metacharacter comes out entity-encoded.
func EscapeText(s string) string {
	var buf strings.Builder
	_ = html.Render(&buf, textNode(s))
	return buf.String()
}

// Markup serializes nodes in order.
func Markup(nodes ...*html.Node) string {
	var buf strings.Builder
	for _, n := range nodes {
		if n == nil {
			continue
		}
		_ = html.Render(&buf, n)
	}
	return buf.String()
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func element(tag atom.Atom, class string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	for _, child := range children {
		if child != nil {
			n.AppendChild(child)
		}
	}
	return n
}

func withAttr(n *html.Node, key, val string) *html.Node {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}
