package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestValueScalarRoundTrip(t *testing.T) {
	values := []Value{
		NewBoolValue(true),
		NewIntValue(42),
		NewFloatValue(3.5),
		NewStringValue("hello"),
	}
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%+v) failed: %v", v, err)
		}
		var got Value
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if !reflect.DeepEqual(got, v) {
			t.Errorf("round trip mismatch: got %+v, want %+v", got, v)
		}
	}
}

func TestValueBlobRoundTrip(t *testing.T) {
	blob := NewBlobValue(RectV, json.RawMessage(`{"left":0,"top":0,"right":10,"bottom":10}`))
	data, err := json.Marshal(blob)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var got Value
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.Tag != RectV {
		t.Fatalf("Tag = %v, want RectV", got.Tag)
	}
	if string(got.Obj) != string(blob.Obj) {
		t.Errorf("Obj = %s, want %s", got.Obj, blob.Obj)
	}
}

func TestValueUnmarshalRejectsUnknownTag(t *testing.T) {
	var v Value
	err := json.Unmarshal([]byte(`{"type":99,"value":1}`), &v)
	if err == nil {
		t.Error("expected error for unknown type tag")
	}
}

func TestValueWireShape(t *testing.T) {
	data, err := json.Marshal(NewIntValue(7))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal into map failed: %v", err)
	}
	if raw["type"].(float64) != float64(Int) {
		t.Errorf("type = %v, want %d", raw["type"], Int)
	}
	if raw["value"].(float64) != 7 {
		t.Errorf("value = %v, want 7", raw["value"])
	}
}
