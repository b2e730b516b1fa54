package model

import (
	"encoding/json"
	"fmt"
)

// Tag identifies the runtime type carried by a Value. The numeric values are
// part of the wire contract and match the original engine's TypeId enum.
type Tag int

const (
	Bool   Tag = 1
	Int    Tag = 2
	Float  Tag = 3
	String Tag = 4
	By     Tag = 5
	Widget Tag = 6
	RectV  Tag = 7
)

func (t Tag) String() string {
	switch t {
	case Bool:
		return "BOOL"
	case Int:
		return "INT"
	case Float:
		return "FLOAT"
	case String:
		return "STRING"
	case By:
		return "BY"
	case Widget:
		return "WIDGET"
	case RectV:
		return "RECT"
	default:
		return "UNKNOWN"
	}
}

// Value is the tagged union crossing the ExternApi boundary. Scalars are
// carried directly; BY/WIDGET/RECT carry an opaque JSON object in Obj that
// the owning package (selector, widget, model) knows how to interpret.
type Value struct {
	Tag Tag
	B   bool
	I   int64
	F   float64
	S   string
	Obj json.RawMessage
}

// NewBoolValue builds a BOOL value.
func NewBoolValue(v bool) Value { return Value{Tag: Bool, B: v} }

// NewIntValue builds an INT value.
func NewIntValue(v int64) Value { return Value{Tag: Int, I: v} }

// NewFloatValue builds a FLOAT value.
func NewFloatValue(v float64) Value { return Value{Tag: Float, F: v} }

// NewStringValue builds a STRING value.
func NewStringValue(v string) Value { return Value{Tag: String, S: v} }

// NewBlobValue builds a BY/WIDGET/RECT value carrying a raw JSON payload.
func NewBlobValue(tag Tag, obj json.RawMessage) Value {
	return Value{Tag: tag, Obj: obj}
}

type wireValue struct {
	Type  int             `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON renders the {"type":N,"value":V} wire format.
func (v Value) MarshalJSON() ([]byte, error) {
	var raw json.RawMessage
	var err error
	switch v.Tag {
	case Bool:
		raw, err = json.Marshal(v.B)
	case Int:
		raw, err = json.Marshal(v.I)
	case Float:
		raw, err = json.Marshal(v.F)
	case String:
		raw, err = json.Marshal(v.S)
	case By, Widget, RectV:
		if len(v.Obj) == 0 {
			raw = json.RawMessage("null")
		} else {
			raw = v.Obj
		}
	default:
		return nil, fmt.Errorf("model: cannot marshal value with unknown tag %d", v.Tag)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireValue{Type: int(v.Tag), Value: raw})
}

// UnmarshalJSON parses the {"type":N,"value":V} wire format.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	tag := Tag(w.Type)
	switch tag {
	case Bool:
		if err := json.Unmarshal(w.Value, &v.B); err != nil {
			return fmt.Errorf("model: bad BOOL value: %w", err)
		}
	case Int:
		if err := json.Unmarshal(w.Value, &v.I); err != nil {
			return fmt.Errorf("model: bad INT value: %w", err)
		}
	case Float:
		if err := json.Unmarshal(w.Value, &v.F); err != nil {
			return fmt.Errorf("model: bad FLOAT value: %w", err)
		}
	case String:
		if err := json.Unmarshal(w.Value, &v.S); err != nil {
			return fmt.Errorf("model: bad STRING value: %w", err)
		}
	case By, Widget, RectV:
		v.Obj = append(json.RawMessage(nil), w.Value...)
	default:
		return fmt.Errorf("model: unsupported value type tag %d", w.Type)
	}
	v.Tag = tag
	return nil
}
