// Package dom parses and represents a single immutable snapshot of a widget
// tree, as reported by a UiController.
package dom

import (
	"strconv"
	"strings"

	"github.com/devicelab-dev/uicore/pkg/model"
)

// Node is one widget in a Snapshot's tree.
type Node struct {
	Attributes map[string]string
	Bounds     model.Rect
	HasBounds  bool
	Children   []*Node
	parent     *Node
	childIndex int
}

// GetAttr returns the named attribute, or def if it is absent.
func (n *Node) GetAttr(name, def string) string {
	if v, ok := n.Attributes[name]; ok {
		return v
	}
	return def
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attributes[name]
	return ok
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Path renders the node's position as a comma-joined chain of child indices
// from the root, e.g. "ROOT,0,2", mirroring the original engine's
// WidgetHierarchyBuilder convention. Used for diagnostics only.
func (n *Node) Path() string {
	var segments []string
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		segments = append([]string{strconv.Itoa(cur.childIndex)}, segments...)
	}
	if len(segments) == 0 {
		return "ROOT"
	}
	return "ROOT," + strings.Join(segments, ",")
}

// walkPreOrder invokes visit for n and then, recursively, for every
// descendant in pre-order (parent before children, children in document
// order).
func walkPreOrder(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		walkPreOrder(c, visit)
	}
}
