// Package xmlutil offers element and attribute helpers over xmlquery
// document nodes.
package xmlutil

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// Attr is an attribute name and value pair
type Attr struct {
	Name  string
	Value string
}

// Name returns the qualified name of an element node, e.g. "stage" or
// "ns:stage". Returns the empty string for a nil node.
func Name(n *xmlquery.Node) string {
	if n == nil {
		return ""
	}
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Data
	}
	return n.Data
}

// Attrs returns the attributes of n in document order
func Attrs(n *xmlquery.Node) (a []Attr) {
	for _, attr := range n.Attr {
		name := attr.Name.Local
		if attr.Name.Space != "" {
			name = attr.Name.Space + ":" + name
		}
		a = append(a, Attr{Name: name, Value: attr.Value})
	}
	return a
}

// Elements returns the child elements of n in document order. If names
// are given, only children with one of those names are returned.
func Elements(n *xmlquery.Node, names ...string) (elems []*xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if len(names) == 0 || contains(names, Name(c)) {
			elems = append(elems, c)
		}
	}
	return elems
}

// FirstElement returns the first child element of n named name, or nil
func FirstElement(n *xmlquery.Node, name string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && Name(c) == name {
			return c
		}
	}
	return nil
}

// Text returns the text content of n with surrounding space removed
func Text(n *xmlquery.Node) string { return strings.TrimSpace(n.InnerText()) }

// Path returns the location of element n from the document root, e.g.
// "/texel/scan[2]/stage". A position is given for elements that have
// siblings of the same name.
func Path(n *xmlquery.Node) string {
	var parts []string
	for ; n != nil && n.Type == xmlquery.ElementNode; n = n.Parent {
		part := Name(n)
		if pos, count := position(n); count > 1 {
			part += "[" + strconv.Itoa(pos) + "]"
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "/"
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(parts[i])
	}
	return b.String()
}

// ElemStr returns the start tag text for an element name, e.g. "<scan>"
func ElemStr(name string) string {
	if name == "" {
		return ""
	}
	return "<" + name + ">"
}

// position returns the 1-based position of n amongst its same-named
// siblings, and the number of such siblings
func position(n *xmlquery.Node) (pos, count int) {
	if n.Parent == nil {
		return 1, 1
	}
	name := Name(n)
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode || Name(c) != name {
			continue
		}
		count++
		if c == n {
			pos = count
		}
	}
	return pos, count
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
