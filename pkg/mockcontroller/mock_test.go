package mockcontroller

import (
	"testing"

	"github.com/devicelab-dev/uicore/pkg/dom"
)

func snap(t *testing.T, json string) *dom.Snapshot {
	t.Helper()
	s, err := dom.Parse([]byte(json))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return s
}

func TestMockControllerAdvancesThroughScriptedSnapshots(t *testing.T) {
	first := snap(t, `{"attributes":{"frame":"1"},"children":[]}`)
	second := snap(t, `{"attributes":{"frame":"2"},"children":[]}`)
	c := New(Config{}, first, second)

	got1, err := c.GetCurrentUiDom()
	if err != nil || got1 != first {
		t.Fatalf("expected first snapshot, err=%v", err)
	}
	got2, err := c.GetCurrentUiDom()
	if err != nil || got2 != second {
		t.Fatalf("expected second snapshot, err=%v", err)
	}
	got3, err := c.GetCurrentUiDom()
	if err != nil || got3 != second {
		t.Fatalf("expected sequence to repeat the last snapshot once exhausted, err=%v", err)
	}
}

func TestMockControllerScriptedFetchFailure(t *testing.T) {
	s := snap(t, `{"attributes":{},"children":[]}`)
	c := New(Config{FailFetchAfter: 1}, s)

	if _, err := c.GetCurrentUiDom(); err != nil {
		t.Fatalf("first fetch should succeed: %v", err)
	}
	if _, err := c.GetCurrentUiDom(); err == nil {
		t.Fatal("second fetch should fail per FailFetchAfter")
	}
}

func TestMockControllerRecordsInjectedEvents(t *testing.T) {
	c := New(Config{})
	c.InjectTouchEventSequence(nil)
	c.InjectKeyEventSequence(nil)
	if len(c.InjectedTouches) != 1 || len(c.InjectedKeys) != 1 {
		t.Error("expected injected sequences to be recorded")
	}
}

func TestMockControllerCharKeyLookup(t *testing.T) {
	c := New(Config{KeyCodes: map[rune][2]int32{'a': {30, 0}}})
	code, ctrl, ok := c.GetCharKeyCode('a')
	if !ok || code != 30 || ctrl != 0 {
		t.Errorf("unexpected lookup result: code=%d ctrl=%d ok=%v", code, ctrl, ok)
	}
	if _, _, ok := c.GetCharKeyCode('z'); ok {
		t.Error("expected lookup miss for unconfigured character")
	}
}
