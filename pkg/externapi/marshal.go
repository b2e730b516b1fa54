package externapi

import (
	"encoding/json"
	"fmt"

	"github.com/devicelab-dev/uicore/pkg/model"
)

// GetBool reads params[i] as a BOOL, failing INTERNAL_ERROR on a type
// mismatch or out-of-range index. Grounded in GetItemValueFromJson<bool>.
func GetBool(params []model.Value, i int) (bool, *model.ApiCallErr) {
	v, err := at(params, i)
	if err != nil {
		return false, err
	}
	if v.Tag != model.Bool {
		return false, mismatch(i, model.Bool, v.Tag)
	}
	return v.B, nil
}

// GetInt reads params[i] as an INT.
func GetInt(params []model.Value, i int) (int64, *model.ApiCallErr) {
	v, err := at(params, i)
	if err != nil {
		return 0, err
	}
	if v.Tag != model.Int {
		return 0, mismatch(i, model.Int, v.Tag)
	}
	return v.I, nil
}

// GetFloat reads params[i] as a FLOAT.
func GetFloat(params []model.Value, i int) (float64, *model.ApiCallErr) {
	v, err := at(params, i)
	if err != nil {
		return 0, err
	}
	if v.Tag != model.Float {
		return 0, mismatch(i, model.Float, v.Tag)
	}
	return v.F, nil
}

// GetString reads params[i] as a STRING.
func GetString(params []model.Value, i int) (string, *model.ApiCallErr) {
	v, err := at(params, i)
	if err != nil {
		return "", err
	}
	if v.Tag != model.String {
		return "", mismatch(i, model.String, v.Tag)
	}
	return v.S, nil
}

// GetBlob reads params[i] as a BY/WIDGET/RECT object-blob value, verifying
// the tag matches want.
func GetBlob(params []model.Value, i int, want model.Tag) (json.RawMessage, *model.ApiCallErr) {
	v, err := at(params, i)
	if err != nil {
		return nil, err
	}
	if v.Tag != want {
		return nil, mismatch(i, want, v.Tag)
	}
	return v.Obj, nil
}

func at(params []model.Value, i int) (model.Value, *model.ApiCallErr) {
	if i < 0 || i >= len(params) {
		return model.Value{}, model.NewApiCallErr(model.InternalError,
			fmt.Sprintf("parameter index %d out of range (have %d)", i, len(params)))
	}
	return params[i], nil
}

func mismatch(i int, want, got model.Tag) *model.ApiCallErr {
	return model.NewApiCallErr(model.InternalError,
		fmt.Sprintf("parameter %d: expected %s, got %s", i, want, got))
}

// PushBool appends a BOOL value, mirroring PushBackValueItemIntoJson<bool>.
func PushBool(out []model.Value, v bool) []model.Value {
	return append(out, model.NewBoolValue(v))
}

// PushInt appends an INT value.
func PushInt(out []model.Value, v int64) []model.Value {
	return append(out, model.NewIntValue(v))
}

// PushFloat appends a FLOAT value.
func PushFloat(out []model.Value, v float64) []model.Value {
	return append(out, model.NewFloatValue(v))
}

// PushString appends a STRING value.
func PushString(out []model.Value, v string) []model.Value {
	return append(out, model.NewStringValue(v))
}

// Serializable is implemented by domain types (WidgetImage, Rect, Selector)
// that know how to marshal themselves into an object-blob value, mirroring
// ExternApiBase::WriteIntoParcel/GetTypeId.
type Serializable interface {
	MarshalBlob() (json.RawMessage, error)
	ValueTag() model.Tag
}

// PushSerializable appends an object-blob value produced by v's own
// MarshalBlob, failing INTERNAL_ERROR if serialization fails.
func PushSerializable(out []model.Value, v Serializable) ([]model.Value, *model.ApiCallErr) {
	blob, err := v.MarshalBlob()
	if err != nil {
		return out, model.NewApiCallErr(model.InternalError, fmt.Sprintf("serialize value: %v", err))
	}
	return append(out, model.NewBlobValue(v.ValueTag(), blob)), nil
}
