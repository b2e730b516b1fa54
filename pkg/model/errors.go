package model

// ErrCode enumerates the outcomes an ExternApi invocation can report to its
// caller. Values match the original engine's ErrCode enum exactly, since they
// are part of the wire contract.
type ErrCode uint8

const (
	NoError ErrCode = 0
	// InternalError marks a failure not expected to happen: a bug, a
	// malformed transaction payload, a panic recovered inside a handler.
	InternalError ErrCode = 1
	// WidgetLost marks a widget that is expected to still exist in the UI
	// but could not be re-resolved.
	WidgetLost ErrCode = 2
	// UsageError marks a caller mistake: bad selector, unsupported
	// operation, missing bounds.
	UsageError ErrCode = 4
)

// String returns the readable name of the error code, used both for the
// "[NAME]:" message prefix and the wire-level exception.code field.
func (c ErrCode) String() string {
	switch c {
	case NoError:
		return "NO_ERROR"
	case InternalError:
		return "INTERNAL_ERROR"
	case WidgetLost:
		return "WIDGET_LOST"
	case UsageError:
		return "USAGE_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// ApiCallErr is the error detail wrapper carried across the ExternApi
// boundary. It implements error so it composes with ordinary Go error
// handling internally.
type ApiCallErr struct {
	Code    ErrCode
	Message string
}

// NewApiCallErr builds an ApiCallErr, stamping the "[NAME]:msg" wire format
// exactly once at construction time.
func NewApiCallErr(code ErrCode, msg string) *ApiCallErr {
	return &ApiCallErr{
		Code:    code,
		Message: "[" + code.String() + "]:" + msg,
	}
}

// Error implements the error interface.
func (e *ApiCallErr) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// WithMessage returns a copy of the error re-stamped with a new message,
// keeping the same code. Mirrors the teacher's copy-on-write error builders.
func (e *ApiCallErr) WithMessage(msg string) *ApiCallErr {
	return NewApiCallErr(e.Code, msg)
}

// IsNoError reports whether err represents success (nil or NoError code).
func IsNoError(err *ApiCallErr) bool {
	return err == nil || err.Code == NoError
}
