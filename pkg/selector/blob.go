package selector

import (
	"encoding/json"
	"fmt"

	"github.com/devicelab-dev/uicore/pkg/model"
)

// blobDTO is the JSON shape a Selector marshals to/from when crossing the
// ExternApi boundary as a BY value.
type blobDTO struct {
	Matchers []matcherDTO `json:"matchers"`
}

type matcherDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Op    string `json:"op"`
}

// MarshalBlob serializes the selector's base matchers as the BY value
// payload, so a Selector satisfies externapi.Serializable. Relative
// constraints are not carried across the boundary: a BY value identifies a
// query, and the original engine's front-end always sends a flat matcher
// list per call.
func (s *Selector) MarshalBlob() (json.RawMessage, error) {
	dto := blobDTO{Matchers: make([]matcherDTO, 0, len(s.matchers))}
	for _, m := range s.matchers {
		dto.Matchers = append(dto.Matchers, matcherDTO{Key: m.Key, Value: m.Value, Op: m.Op.String()})
	}
	return json.Marshal(dto)
}

// ValueTag reports the Value tag a serialized Selector carries.
func (s *Selector) ValueTag() model.Tag {
	return model.By
}

// UnmarshalSelector reconstructs a Selector's base matchers from a
// serialized BY value. Relative constraints must be attached separately via
// the With* builders, since they are not part of the wire format.
func UnmarshalSelector(data json.RawMessage) (*Selector, error) {
	var dto blobDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("selector: unmarshal selector: %w", err)
	}
	s := New()
	for _, m := range dto.Matchers {
		op, err := parseOp(m.Op)
		if err != nil {
			return nil, err
		}
		s.AddMatcher(Matcher{Key: m.Key, Value: m.Value, Op: op})
	}
	return s, nil
}

func parseOp(s string) (Op, error) {
	switch s {
	case "EQ":
		return EQ, nil
	case "CONTAINS":
		return Contains, nil
	case "STARTS_WITH":
		return StartsWith, nil
	case "ENDS_WITH":
		return EndsWith, nil
	default:
		return 0, fmt.Errorf("selector: unknown matcher op %q", s)
	}
}
