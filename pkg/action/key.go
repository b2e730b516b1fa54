package action

// Keycodes frequently referenced by named keys, matching the original
// engine's constants exactly.
const (
	KeycodeNone  = 0
	KeycodeBack  = 2
	KeycodeCtrl  = 2072
	KeycodeV     = 2038
	KeycodePower = 18
	KeycodeHome  = 1
)

// KeyEvent is a single stage in a synthesized key gesture.
type KeyEvent struct {
	Stage  Stage
	Code   int32
	HoldMs uint32
}

// CharKey synthesizes a single-key press for an arbitrary resolved keycode,
// optionally chorded with a ctrl-like modifier code.
func CharKey(code, ctrlCode int32, args OpArgs) []KeyEvent {
	if ctrlCode == KeycodeNone {
		return []KeyEvent{
			{Stage: Down, Code: code, HoldMs: args.KeyHoldMs},
			{Stage: Up, Code: code},
		}
	}
	return []KeyEvent{
		{Stage: Down, Code: ctrlCode},
		{Stage: Down, Code: code, HoldMs: args.KeyHoldMs},
		{Stage: Up, Code: code},
		{Stage: Up, Code: ctrlCode},
	}
}

// NamedKey resolves a named key alias (back, power, home, paste) to its
// event sequence, mirroring the original engine's NamedPlainKey aliases.
func NamedKey(name string, args OpArgs) ([]KeyEvent, bool) {
	switch name {
	case "back":
		return CharKey(KeycodeBack, KeycodeNone, args), true
	case "power":
		return CharKey(KeycodePower, KeycodeNone, args), true
	case "home":
		return CharKey(KeycodeHome, KeycodeNone, args), true
	case "paste":
		return CharKey(KeycodeV, KeycodeCtrl, args), true
	default:
		return nil, false
	}
}
