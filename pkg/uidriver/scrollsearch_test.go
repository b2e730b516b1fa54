package uidriver

import (
	"fmt"
	"testing"

	"github.com/devicelab-dev/uicore/pkg/action"
	"github.com/devicelab-dev/uicore/pkg/dom"
	"github.com/devicelab-dev/uicore/pkg/mockcontroller"
	"github.com/devicelab-dev/uicore/pkg/selector"
)

func listSelector() *selector.Selector {
	return selector.New().AddMatcher(selector.Matcher{Key: "resource-id", Value: "list", Op: selector.EQ})
}

func targetSelector() *selector.Selector {
	return selector.New().AddMatcher(selector.Matcher{Key: "text", Value: "Target", Op: selector.EQ})
}

func TestScrollSearchTargetOnFirstFrameCostsZeroScrolls(t *testing.T) {
	s := snap(t, `{"attributes":{},"children":[
		{"attributes":{"resource-id":"list","bounds":"[0,200][600,1000]"},"children":[
			{"attributes":{"text":"Target","bounds":"[10,210][100,260]"},"children":[]}
		]}
	]}`)
	mc := mockcontroller.New(mockcontroller.Config{}, s)
	d := New("device-1", newRegistryWith(mc), action.DefaultOpArgs())

	subjects, err := d.FindWidgets(listSelector())
	if err != nil || len(subjects) != 1 {
		t.Fatalf("setup failed: err=%v n=%d", err, len(subjects))
	}

	found, serr := d.ScrollSearch(subjects[0], targetSelector(), 0)
	if serr != nil {
		t.Fatalf("ScrollSearch failed: %v", serr)
	}
	if found == nil {
		t.Fatal("expected target to be found")
	}
	if len(mc.InjectedTouches) != 0 {
		t.Errorf("expected zero scrolls when target already visible, got %d", len(mc.InjectedTouches))
	}
	// One fetch to resolve the subject in FindWidgets, one more for
	// ScrollSearch's own subject refresh; the target is already visible on
	// that second fetch, so no scroll is ever issued.
	if mc.FetchCount() != 2 {
		t.Errorf("expected exactly two snapshot fetches (FindWidgets + ScrollSearch refresh), got %d", mc.FetchCount())
	}
}

func TestScrollSearchTargetNeverAppearsConsumesAllFrames(t *testing.T) {
	noTarget := `{"attributes":{},"children":[
		{"attributes":{"resource-id":"list","bounds":"[0,200][600,1000]"},"children":[]}
	]}`
	frozen := snap(t, noTarget)
	mc := mockcontroller.New(mockcontroller.Config{}, frozen)
	d := New("device-1", newRegistryWith(mc), action.DefaultOpArgs())

	subjects, err := d.FindWidgets(listSelector())
	if err != nil || len(subjects) != 1 {
		t.Fatalf("setup failed: err=%v n=%d", err, len(subjects))
	}

	found, serr := d.ScrollSearch(subjects[0], targetSelector(), 0)
	if serr != nil {
		t.Fatalf("ScrollSearch failed: %v", serr)
	}
	if found != nil {
		t.Fatal("expected no target to be found")
	}
	// Frozen from the very first comparison: phase 1 fetches the initial
	// snapshot, scrolls once, re-fetches the identical frame and stops;
	// phase 2 does the same. Exactly one scroll per phase.
	if len(mc.InjectedTouches) != 2 {
		t.Errorf("expected exactly one scroll per phase (2 total), got %d", len(mc.InjectedTouches))
	}
}

func TestScrollSearchAmplitudeAndCentering(t *testing.T) {
	noTarget := `{"attributes":{},"children":[
		{"attributes":{"resource-id":"list","bounds":"[0,200][600,1000]"},"children":[]}
	]}`
	s := snap(t, noTarget)
	mc := mockcontroller.New(mockcontroller.Config{}, s)
	d := New("device-1", newRegistryWith(mc), action.DefaultOpArgs())

	subjects, err := d.FindWidgets(listSelector())
	if err != nil || len(subjects) != 1 {
		t.Fatalf("setup failed: err=%v n=%d", err, len(subjects))
	}

	if _, serr := d.ScrollSearch(subjects[0], targetSelector(), 0); serr != nil {
		t.Fatalf("ScrollSearch failed: %v", serr)
	}

	if len(mc.InjectedTouches) == 0 {
		t.Fatal("expected at least one injected scroll sequence")
	}
	for _, seq := range mc.InjectedTouches {
		minY, maxY := seq[0].Point.Y, seq[0].Point.Y
		for _, ev := range seq {
			if abs(ev.Point.X-300) > 5 {
				t.Errorf("event x=%d not within 5px of subject center x=300", ev.Point.X)
			}
			if ev.Point.Y < minY {
				minY = ev.Point.Y
			}
			if ev.Point.Y > maxY {
				maxY = ev.Point.Y
			}
		}
		if amp := maxY - minY; abs(amp-800) > 5 {
			t.Errorf("scroll amplitude %d not within 5px of subject height 800", amp)
		}
	}
}

func TestScrollSearchFiveDistinctFramesNeverAppearsConsumesAll(t *testing.T) {
	frame := func(id string) *dom.Snapshot {
		return snap(t, fmt.Sprintf(`{"attributes":{},"children":[
			{"attributes":{"resource-id":"list","bounds":"[0,200][600,1000]"},"children":[
				{"attributes":{"text":"filler","frame":%q},"children":[]}
			]}
		]}`, id))
	}
	frames := []*dom.Snapshot{frame("f0"), frame("f1"), frame("f2"), frame("f3"), frame("f4")}
	mc := mockcontroller.New(mockcontroller.Config{}, frames...)
	d := New("device-1", newRegistryWith(mc), action.DefaultOpArgs())

	subjects, err := d.FindWidgets(listSelector())
	if err != nil || len(subjects) != 1 {
		t.Fatalf("setup failed: err=%v n=%d", err, len(subjects))
	}

	found, serr := d.ScrollSearch(subjects[0], targetSelector(), 0)
	if serr != nil {
		t.Fatalf("ScrollSearch failed: %v", serr)
	}
	if found != nil {
		t.Fatal("expected no target to be found")
	}
	// All 5 scripted frames get visited (fetches 1-5, one per distinct
	// frame), then one confirmatory re-fetch per phase establishes the
	// snapshot has frozen: 5 + 1 (phase 1 top) + 1 (phase 2 bottom) = 7.
	if got, want := mc.FetchCount(), len(frames)+2; got != want {
		t.Errorf("FetchCount() = %d, want %d (all %d frames consumed plus one frozen-check fetch per phase)", got, want, len(frames))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
