package elem

import (
	"html"
	"sort"
	"strings"
)

// Attrs maps attribute names to values.
type Attrs map[string]string

// Node is one element: a tag, its attributes, optional text, and children.
type Node struct {
	Tag      string
	Attrs    Attrs
	Text     string
	Children []*Node
}

// New builds a Node. Each content item is either a string (appended to the
// text) or a *Node (appended to the children); anything else is ignored.
func New(tag string, attrs Attrs, content ...any) *Node {
	n := &Node{Tag: tag, Attrs: attrs}
	for _, item := range content {
		switch v := item.(type) {
		case string:
			n.Text += v
		case *Node:
			if v != nil {
				n.Children = append(n.Children, v)
			}
		}
	}
	return n
}

// Render emits the node as escaped HTML. Attributes are written in sorted
// order so output is deterministic.
func (n *Node) Render() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Tag)

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(n.Attrs[k]))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	b.WriteString(html.EscapeString(n.Text))
	for _, child := range n.Children {
		b.WriteString(child.Render())
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
	return b.String()
}
