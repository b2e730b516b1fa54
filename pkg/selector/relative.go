package selector

import "github.com/devicelab-dev/uicore/pkg/dom"

// The position filters below adapt the teacher's relative-selector filters
// (pkg/driver/uiautomator2/pagesource.go: FilterBelow/Above/LeftOf/RightOf/
// ChildOf/ContainsChild/InsideOf) from Android page-source elements to
// dom.Node, preserving the same distance-ordering behavior and the same
// deliberate choice not to import "sort" for it.

func filterBelow(nodes []*dom.Node, anchor *dom.Node) []*dom.Node {
	anchorBottom := anchor.Bounds.Bottom
	var result []*dom.Node
	for _, n := range nodes {
		if n.HasBounds && n.Bounds.Top >= anchorBottom {
			result = append(result, n)
		}
	}
	sortByDistance(result, func(n *dom.Node) int { return n.Bounds.Top - anchorBottom })
	return result
}

func filterAbove(nodes []*dom.Node, anchor *dom.Node) []*dom.Node {
	anchorTop := anchor.Bounds.Top
	var result []*dom.Node
	for _, n := range nodes {
		if n.HasBounds && n.Bounds.Bottom <= anchorTop {
			result = append(result, n)
		}
	}
	sortByDistance(result, func(n *dom.Node) int { return anchorTop - n.Bounds.Bottom })
	return result
}

func filterLeftOf(nodes []*dom.Node, anchor *dom.Node) []*dom.Node {
	anchorLeft := anchor.Bounds.Left
	var result []*dom.Node
	for _, n := range nodes {
		if n.HasBounds && n.Bounds.Right <= anchorLeft {
			result = append(result, n)
		}
	}
	sortByDistance(result, func(n *dom.Node) int { return anchorLeft - n.Bounds.Right })
	return result
}

func filterRightOf(nodes []*dom.Node, anchor *dom.Node) []*dom.Node {
	anchorRight := anchor.Bounds.Right
	var result []*dom.Node
	for _, n := range nodes {
		if n.HasBounds && n.Bounds.Left >= anchorRight {
			result = append(result, n)
		}
	}
	sortByDistance(result, func(n *dom.Node) int { return n.Bounds.Left - anchorRight })
	return result
}

func filterChildOf(nodes []*dom.Node, anchor *dom.Node) []*dom.Node {
	var result []*dom.Node
	for _, n := range nodes {
		if n.HasBounds && anchor.HasBounds && anchor.Bounds.Contains(n.Bounds) {
			result = append(result, n)
		}
	}
	return result
}

func filterContainsChild(nodes []*dom.Node, anchor *dom.Node) []*dom.Node {
	var result []*dom.Node
	for _, n := range nodes {
		if n.HasBounds && anchor.HasBounds && n.Bounds.Contains(anchor.Bounds) {
			result = append(result, n)
		}
	}
	return result
}

func filterInsideOf(nodes []*dom.Node, anchor *dom.Node) []*dom.Node {
	var result []*dom.Node
	for _, n := range nodes {
		if !n.HasBounds || !anchor.HasBounds {
			continue
		}
		c := n.Bounds.Center()
		if c.X >= anchor.Bounds.Left && c.X <= anchor.Bounds.Right &&
			c.Y >= anchor.Bounds.Top && c.Y <= anchor.Bounds.Bottom {
			result = append(result, n)
		}
	}
	return result
}

// sortByDistance orders nodes by ascending dist, using an insertion sort to
// stay consistent with the teacher's explicit avoidance of the sort package
// for this kind of small, stable reordering.
func sortByDistance(nodes []*dom.Node, dist func(*dom.Node) int) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && dist(nodes[j]) < dist(nodes[j-1]); j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}
}
