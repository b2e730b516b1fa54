package dom

import "github.com/devicelab-dev/uicore/pkg/model"

// Merge combines multiple window snapshots into a single tree, front-to-back
// (snapshots[0] is the topmost window). A node from a lower window is
// dropped from the merged tree, along with its subtree, when its bounds are
// fully contained within the bounds of any single widget of an earlier
// window (the earlier window's own root node does not occlude).
//
// This is a bounding-box approximation of the original engine's exact region
// subtraction (WidgetTree::MergeTrees / MergerVisitor): each widget of an
// earlier window is treated as an independent occluding rectangle, and a
// node covered only by the union of several of them is kept, which is a
// deliberate scope reduction recorded in DESIGN.md.
func Merge(snapshots []*Snapshot) *Snapshot {
	if len(snapshots) == 0 {
		return nil
	}
	if len(snapshots) == 1 {
		return snapshots[0]
	}

	root := &Node{Attributes: map[string]string{"role": "mergedRoot"}}
	var occluders []model.Rect
	for i, snap := range snapshots {
		if snap == nil || snap.Root == nil {
			continue
		}
		clipped := cloneWithOcclusion(snap.Root, occluders)
		if clipped != nil {
			clipped.parent = root
			clipped.childIndex = i
			root.Children = append(root.Children, clipped)
		}
		// Only actual widgets occlude what lies behind them; the window's
		// own root is a screen-sized container, not an occluding widget.
		for _, c := range snap.Root.Children {
			collectBounds(c, &occluders)
		}
	}
	return &Snapshot{Root: root}
}

func collectBounds(n *Node, out *[]model.Rect) {
	if n == nil {
		return
	}
	if n.HasBounds {
		*out = append(*out, n.Bounds)
	}
	for _, c := range n.Children {
		collectBounds(c, out)
	}
}

func cloneWithOcclusion(n *Node, occluders []model.Rect) *Node {
	if n == nil {
		return nil
	}
	if n.HasBounds {
		for _, occ := range occluders {
			if occ.Contains(n.Bounds) {
				return nil
			}
		}
	}
	clone := &Node{
		Attributes: n.Attributes,
		Bounds:     n.Bounds,
		HasBounds:  n.HasBounds,
	}
	for i, c := range n.Children {
		cc := cloneWithOcclusion(c, occluders)
		if cc != nil {
			cc.parent = clone
			cc.childIndex = i
			clone.Children = append(clone.Children, cc)
		}
	}
	return clone
}
