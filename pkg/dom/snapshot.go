package dom

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/devicelab-dev/uicore/pkg/model"
)

// Snapshot is a single immutable capture of a widget tree.
type Snapshot struct {
	Root       *Node
	AcquiredAt time.Time
}

// wireNode mirrors the {"attributes":{...},"children":[...]} snapshot format.
type wireNode struct {
	Attributes map[string]string `json:"attributes"`
	Children   []wireNode        `json:"children"`
}

// ParseOptions controls optional, non-default parsing behavior.
type ParseOptions struct {
	// AmendBounds intersects each child's bounds with its parent's,
	// dropping any child whose bounds collapse to empty. Mirrors the
	// original engine's ConstructFromDom visibility pruning. Off by
	// default.
	AmendBounds bool
}

// ParseOption configures Parse.
type ParseOption func(*ParseOptions)

// WithBoundsAmendment enables parent/child bounds intersection during parse.
func WithBoundsAmendment(enabled bool) ParseOption {
	return func(o *ParseOptions) { o.AmendBounds = enabled }
}

// Parse builds a Snapshot from the DOM snapshot wire format.
func Parse(data []byte, opts ...ParseOption) (*Snapshot, error) {
	var options ParseOptions
	for _, opt := range opts {
		opt(&options)
	}

	var wire wireNode
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("dom: parse snapshot: %w", err)
	}

	root := buildNode(wire, nil, 0, options)
	if root == nil {
		return nil, fmt.Errorf("dom: parse snapshot: root node was pruned by bounds amendment")
	}
	return &Snapshot{Root: root, AcquiredAt: time.Now()}, nil
}

func buildNode(w wireNode, parent *Node, index int, options ParseOptions) *Node {
	n := &Node{
		Attributes: w.Attributes,
		parent:     parent,
		childIndex: index,
	}
	if n.Attributes == nil {
		n.Attributes = map[string]string{}
	}
	if b, ok := n.Attributes["bounds"]; ok {
		if r, err := model.ParseRect(b); err == nil {
			n.Bounds = r
			n.HasBounds = true
		}
	}

	if options.AmendBounds && parent != nil && parent.HasBounds && n.HasBounds {
		amended := intersect(n.Bounds, parent.Bounds)
		if amended.Empty() {
			return nil
		}
		n.Bounds = amended
	}

	for i, cw := range w.Children {
		child := buildNode(cw, n, i, options)
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

func intersect(a, b model.Rect) model.Rect {
	return model.Rect{
		Left:   max(a.Left, b.Left),
		Top:    max(a.Top, b.Top),
		Right:  min(a.Right, b.Right),
		Bottom: min(a.Bottom, b.Bottom),
	}
}

// AllNodes returns every node in the snapshot in pre-order DFS order.
func (s *Snapshot) AllNodes() []*Node {
	var out []*Node
	walkPreOrder(s.Root, func(n *Node) {
		out = append(out, n)
	})
	return out
}

// Equal reports whether s and other are structurally identical: same
// attributes and same children, recursively, ignoring AcquiredAt and map
// iteration order. This resolves the open question of what "frozen" means
// for the purposes of ScrollSearch's termination check.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if s == nil || other == nil {
		return s == other
	}
	return nodesEqual(s.Root, other.Root)
}

func nodesEqual(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !attrsEqual(a.Attributes, b.Attributes) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !nodesEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
