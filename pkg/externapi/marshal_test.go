package externapi

import (
	"testing"

	"github.com/devicelab-dev/uicore/pkg/model"
)

func TestGetTypedParams(t *testing.T) {
	params := []model.Value{
		model.NewBoolValue(true),
		model.NewIntValue(5),
		model.NewFloatValue(1.5),
		model.NewStringValue("hi"),
	}

	if v, err := GetBool(params, 0); err != nil || !v {
		t.Errorf("GetBool: got %v, err=%v", v, err)
	}
	if v, err := GetInt(params, 1); err != nil || v != 5 {
		t.Errorf("GetInt: got %v, err=%v", v, err)
	}
	if v, err := GetFloat(params, 2); err != nil || v != 1.5 {
		t.Errorf("GetFloat: got %v, err=%v", v, err)
	}
	if v, err := GetString(params, 3); err != nil || v != "hi" {
		t.Errorf("GetString: got %v, err=%v", v, err)
	}
}

func TestGetTypedParamMismatchIsInternalError(t *testing.T) {
	params := []model.Value{model.NewStringValue("hi")}
	if _, err := GetInt(params, 0); err == nil || err.Code != model.InternalError {
		t.Fatalf("expected INTERNAL_ERROR on type mismatch, got %v", err)
	}
}

func TestGetTypedParamOutOfRangeIsInternalError(t *testing.T) {
	if _, err := GetInt(nil, 0); err == nil || err.Code != model.InternalError {
		t.Fatalf("expected INTERNAL_ERROR on out-of-range index, got %v", err)
	}
}

func TestPushHelpers(t *testing.T) {
	var out []model.Value
	out = PushBool(out, true)
	out = PushInt(out, 3)
	out = PushString(out, "x")
	if len(out) != 3 || out[0].Tag != model.Bool || out[1].Tag != model.Int || out[2].Tag != model.String {
		t.Fatalf("unexpected pushed values: %+v", out)
	}
}
