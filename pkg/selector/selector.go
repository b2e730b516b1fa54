package selector

import (
	"strings"

	"github.com/devicelab-dev/uicore/pkg/dom"
)

// Selector is a conjunction of attribute matchers, optionally refined by
// relative-position constraints, each against its own anchor Selector. All
// base matchers must hold, and so must every relative constraint that is set.
type Selector struct {
	matchers []Matcher

	childOf       *Selector
	below         *Selector
	above         *Selector
	leftOf        *Selector
	rightOf       *Selector
	containsChild *Selector
	insideOf      *Selector
}

// New creates an empty Selector.
func New() *Selector {
	return &Selector{}
}

// AddMatcher appends an attribute matcher and returns the selector for
// chaining.
func (s *Selector) AddMatcher(m Matcher) *Selector {
	s.matchers = append(s.matchers, m)
	return s
}

// WithChildOf requires the matched widget be fully contained within anchor's
// bounds.
func (s *Selector) WithChildOf(anchor *Selector) *Selector { s.childOf = anchor; return s }

// WithBelow requires the matched widget's top to be at or below anchor's
// bottom, ordered nearest-first.
func (s *Selector) WithBelow(anchor *Selector) *Selector { s.below = anchor; return s }

// WithAbove requires the matched widget's bottom to be at or above anchor's
// top, ordered nearest-first.
func (s *Selector) WithAbove(anchor *Selector) *Selector { s.above = anchor; return s }

// WithLeftOf requires the matched widget's right to be at or left of
// anchor's left, ordered nearest-first.
func (s *Selector) WithLeftOf(anchor *Selector) *Selector { s.leftOf = anchor; return s }

// WithRightOf requires the matched widget's left to be at or right of
// anchor's right, ordered nearest-first.
func (s *Selector) WithRightOf(anchor *Selector) *Selector { s.rightOf = anchor; return s }

// WithContainsChild requires the matched widget to fully contain anchor's
// bounds.
func (s *Selector) WithContainsChild(anchor *Selector) *Selector { s.containsChild = anchor; return s }

// WithInsideOf requires the matched widget's center point to lie inside
// anchor's bounds.
func (s *Selector) WithInsideOf(anchor *Selector) *Selector { s.insideOf = anchor; return s }

// Satisfies reports whether n's attributes satisfy every base matcher. It
// does not evaluate relative constraints, which require the whole snapshot
// to resolve their anchor.
func (s *Selector) Satisfies(n *dom.Node) bool {
	for _, m := range s.matchers {
		if !m.Match(n.Attributes) {
			return false
		}
	}
	return true
}

// FindAll returns every node in snap matching the selector, in the pre-order
// DFS order produced by dom.Snapshot.AllNodes, filtered by any relative
// constraints. ChildOf, ContainsChild and InsideOf keep that order; Below,
// Above, LeftOf and RightOf reorder the result nearest-first, with ties
// left in pre-order.
func (s *Selector) FindAll(snap *dom.Snapshot) []*dom.Node {
	var base []*dom.Node
	for _, n := range snap.AllNodes() {
		if s.Satisfies(n) {
			base = append(base, n)
		}
	}
	return s.applyRelative(snap, base)
}

func (s *Selector) applyRelative(snap *dom.Snapshot, base []*dom.Node) []*dom.Node {
	result := base
	if s.childOf != nil {
		if anchor := firstMatch(snap, s.childOf); anchor != nil {
			result = filterChildOf(result, anchor)
		} else {
			return nil
		}
	}
	if s.containsChild != nil {
		if anchor := firstMatch(snap, s.containsChild); anchor != nil {
			result = filterContainsChild(result, anchor)
		} else {
			return nil
		}
	}
	if s.insideOf != nil {
		if anchor := firstMatch(snap, s.insideOf); anchor != nil {
			result = filterInsideOf(result, anchor)
		} else {
			return nil
		}
	}
	if s.below != nil {
		if anchor := firstMatch(snap, s.below); anchor != nil {
			result = filterBelow(result, anchor)
		} else {
			return nil
		}
	}
	if s.above != nil {
		if anchor := firstMatch(snap, s.above); anchor != nil {
			result = filterAbove(result, anchor)
		} else {
			return nil
		}
	}
	if s.leftOf != nil {
		if anchor := firstMatch(snap, s.leftOf); anchor != nil {
			result = filterLeftOf(result, anchor)
		} else {
			return nil
		}
	}
	if s.rightOf != nil {
		if anchor := firstMatch(snap, s.rightOf); anchor != nil {
			result = filterRightOf(result, anchor)
		} else {
			return nil
		}
	}
	return result
}

func firstMatch(snap *dom.Snapshot, sel *Selector) *dom.Node {
	matches := sel.FindAll(snap)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// Describe renders a human-readable form of the selector's base matchers,
// used for diagnostics and widget selection descriptions.
func (s *Selector) Describe() string {
	if len(s.matchers) == 0 {
		return "<any widget>"
	}
	parts := make([]string, 0, len(s.matchers))
	for _, m := range s.matchers {
		parts = append(parts, m.Key+" "+m.Op.String()+" \""+m.Value+"\"")
	}
	return strings.Join(parts, " AND ")
}
