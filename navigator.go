package xmlb

import (
	"strings"

	"github.com/antchfx/xpath"
	"github.com/beevik/etree"
)

// navigator adapts etree tokens to the xpath engine's cursor
// interface. The scope element acts as the root node, so query
// evaluation never escapes the scope it was given.
type navigator struct {
	root etree.Token
	curr etree.Token
	attr int
}

var _ xpath.NodeNavigator = (*navigator)(nil)

func newNavigator(scope *Element) *navigator {
	return &navigator{root: scope.elem, curr: scope.elem, attr: -1}
}

// element returns the element the navigator currently points at, or
// nil when positioned on a non-element node or an attribute.
func (n *navigator) element() *etree.Element {
	if n.attr >= 0 {
		return nil
	}
	el, ok := n.curr.(*etree.Element)
	if !ok {
		return nil
	}
	return el
}

func (n *navigator) NodeType() xpath.NodeType {
	if n.attr >= 0 {
		return xpath.AttributeNode
	}
	if n.curr == n.root {
		return xpath.RootNode
	}
	switch n.curr.(type) {
	case *etree.Element:
		return xpath.ElementNode
	case *etree.CharData:
		return xpath.TextNode
	default:
		return xpath.CommentNode
	}
}

func (n *navigator) LocalName() string {
	if n.attr >= 0 {
		return n.curr.(*etree.Element).Attr[n.attr].Key
	}
	if el, ok := n.curr.(*etree.Element); ok {
		return el.Tag
	}
	return ""
}

func (n *navigator) Prefix() string {
	if n.attr >= 0 {
		return n.curr.(*etree.Element).Attr[n.attr].Space
	}
	if el, ok := n.curr.(*etree.Element); ok {
		return el.Space
	}
	return ""
}

func (n *navigator) Value() string {
	if n.attr >= 0 {
		return n.curr.(*etree.Element).Attr[n.attr].Value
	}
	switch t := n.curr.(type) {
	case *etree.Element:
		return textContent(t)
	case *etree.CharData:
		return t.Data
	case *etree.Comment:
		return t.Data
	default:
		return ""
	}
}

func (n *navigator) Copy() xpath.NodeNavigator {
	nn := *n
	return &nn
}

func (n *navigator) MoveToRoot() {
	n.curr = n.root
	n.attr = -1
}

func (n *navigator) MoveToParent() bool {
	if n.attr >= 0 {
		n.attr = -1
		return true
	}
	if n.curr == n.root {
		return false
	}
	p := n.curr.Parent()
	if p == nil {
		return false
	}
	n.curr = p
	return true
}

func (n *navigator) MoveToNextAttribute() bool {
	el, ok := n.curr.(*etree.Element)
	if !ok {
		return false
	}
	if n.attr+1 >= len(el.Attr) {
		return false
	}
	n.attr++
	return true
}

func (n *navigator) MoveToChild() bool {
	if n.attr >= 0 {
		return false
	}
	el, ok := n.curr.(*etree.Element)
	if !ok || len(el.Child) == 0 {
		return false
	}
	n.curr = el.Child[0]
	return true
}

func (n *navigator) MoveToFirst() bool {
	if n.attr >= 0 || n.curr == n.root {
		return false
	}
	p := n.curr.Parent()
	if p == nil {
		return false
	}
	n.curr = p.Child[0]
	return true
}

func (n *navigator) MoveToNext() bool {
	return n.sibling(+1)
}

func (n *navigator) MoveToPrevious() bool {
	return n.sibling(-1)
}

func (n *navigator) sibling(delta int) bool {
	if n.attr >= 0 || n.curr == n.root {
		return false
	}
	p := n.curr.Parent()
	if p == nil {
		return false
	}
	i := n.curr.Index() + delta
	if i < 0 || i >= len(p.Child) {
		return false
	}
	n.curr = p.Child[i]
	return true
}

func (n *navigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*navigator)
	if !ok || o.root != n.root {
		return false
	}
	*n = *o
	return true
}

// textContent is the XPath string-value of an element: all descendant
// character data concatenated in document order.
func textContent(el *etree.Element) string {
	var sb strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, t := range e.Child {
			switch t := t.(type) {
			case *etree.CharData:
				sb.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(el)
	return sb.String()
}
