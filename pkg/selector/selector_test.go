package selector

import (
	"testing"

	"github.com/devicelab-dev/uicore/pkg/dom"
)

const treeJSON = `{
  "attributes": {"type": "root", "bounds": "[0,0][1000,2000]"},
  "children": [
    {"attributes": {"type": "Button", "text": "Login", "bounds": "[100,100][300,160]"}, "children": []},
    {"attributes": {"type": "Label", "text": "username_field_error", "bounds": "[100,200][300,240]"}, "children": []},
    {"attributes": {"type": "Button", "text": "Cancel", "bounds": "[400,100][600,160]"}, "children": []}
  ]
}`

func mustParse(t *testing.T) *dom.Snapshot {
	t.Helper()
	snap, err := dom.Parse([]byte(treeJSON))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return snap
}

func TestFindAllEQMatch(t *testing.T) {
	snap := mustParse(t)
	sel := New().AddMatcher(Matcher{Key: "text", Value: "Login", Op: EQ})
	matches := sel.FindAll(snap)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].GetAttr("type", "") != "Button" {
		t.Errorf("matched wrong node: %+v", matches[0].Attributes)
	}
}

func TestFindAllContainsMatch(t *testing.T) {
	snap := mustParse(t)
	sel := New().AddMatcher(Matcher{Key: "text", Value: "error", Op: Contains})
	matches := sel.FindAll(snap)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}

func TestFindAllConjunction(t *testing.T) {
	snap := mustParse(t)
	sel := New().
		AddMatcher(Matcher{Key: "type", Value: "Button", Op: EQ}).
		AddMatcher(Matcher{Key: "text", Value: "Cancel", Op: EQ})
	matches := sel.FindAll(snap)
	if len(matches) != 1 || matches[0].GetAttr("text", "") != "Cancel" {
		t.Fatalf("expected exactly Cancel button, got %d matches", len(matches))
	}
}

func TestFindAllPreservesPreOrder(t *testing.T) {
	snap := mustParse(t)
	sel := New().AddMatcher(Matcher{Key: "type", Value: "Button", Op: EQ})
	matches := sel.FindAll(snap)
	if len(matches) != 2 {
		t.Fatalf("expected 2 buttons, got %d", len(matches))
	}
	if matches[0].GetAttr("text", "") != "Login" || matches[1].GetAttr("text", "") != "Cancel" {
		t.Errorf("expected pre-order [Login, Cancel], got [%s, %s]",
			matches[0].GetAttr("text", ""), matches[1].GetAttr("text", ""))
	}
}

func TestFindAllRelativeRightOf(t *testing.T) {
	snap := mustParse(t)
	anchor := New().AddMatcher(Matcher{Key: "text", Value: "Login", Op: EQ})
	sel := New().AddMatcher(Matcher{Key: "type", Value: "Button", Op: EQ}).WithRightOf(anchor)
	matches := sel.FindAll(snap)
	if len(matches) != 1 || matches[0].GetAttr("text", "") != "Cancel" {
		t.Fatalf("expected Cancel to be right of Login, got %d matches", len(matches))
	}
}

func TestFindAllNoMatchReturnsEmpty(t *testing.T) {
	snap := mustParse(t)
	sel := New().AddMatcher(Matcher{Key: "type", Value: "Nonexistent", Op: EQ})
	matches := sel.FindAll(snap)
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestDescribe(t *testing.T) {
	sel := New().AddMatcher(Matcher{Key: "text", Value: "Login", Op: EQ})
	want := `text EQ "Login"`
	if got := sel.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}
