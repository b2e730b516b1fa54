package externapi

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/devicelab-dev/uicore/pkg/model"
)

func TestCallFirstHandlerWins(t *testing.T) {
	d := NewDispatcher()
	d.AddHandler("a", func(id string, caller *model.Value, in []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		return nil, false, nil
	})
	d.AddHandler("b", func(id string, caller *model.Value, in []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		return []model.Value{model.NewIntValue(7)}, true, nil
	})

	out, err := d.Call("anything", &model.Value{}, nil)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if len(out) != 1 || out[0].I != 7 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestCallNoHandlerIsInternalError(t *testing.T) {
	d := NewDispatcher()
	_, err := d.Call("missing.fn", &model.Value{}, nil)
	if err == nil || err.Code != model.InternalError {
		t.Fatalf("expected INTERNAL_ERROR, got %v", err)
	}
	if !strings.Contains(err.Message, "missing.fn") {
		t.Errorf("expected message to name the function id, got %q", err.Message)
	}
}

func TestCallRecoversHandlerPanic(t *testing.T) {
	d := NewDispatcher()
	d.AddHandler("boom", func(id string, caller *model.Value, in []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		panic("kaboom")
	})
	_, err := d.Call("boom", &model.Value{}, nil)
	if err == nil || err.Code != model.InternalError {
		t.Fatalf("expected INTERNAL_ERROR from recovered panic, got %v", err)
	}
}

func TestCallNoHandlerLogsDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher()
	d.SetLogger(log.New(&buf, "", 0))

	if _, err := d.Call("missing.fn", &model.Value{}, nil); err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(buf.String(), "missing.fn") {
		t.Errorf("expected the injected logger to record the missing function id, got %q", buf.String())
	}
}

func TestCallPanicLogsDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher()
	d.SetLogger(log.New(&buf, "", 0))
	d.AddHandler("boom", func(id string, caller *model.Value, in []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		panic("kaboom")
	})

	if _, err := d.Call("boom", &model.Value{}, nil); err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(buf.String(), "kaboom") {
		t.Errorf("expected the injected logger to record the panic value, got %q", buf.String())
	}
}

func TestRemoveHandler(t *testing.T) {
	d := NewDispatcher()
	d.AddHandler("x", func(id string, caller *model.Value, in []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		return nil, true, nil
	})
	d.RemoveHandler("x")
	_, err := d.Call("x", &model.Value{}, nil)
	if err == nil || err.Code != model.InternalError {
		t.Fatal("expected removed handler to no longer be called")
	}
}
