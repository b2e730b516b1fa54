// Package action synthesizes the touch and key event sequences that a
// UiController is asked to inject, given an OpArgs tuning set.
package action

// OpArgs mirrors the original engine's UiOpArgs tunables
// (_examples/original_source/uitest/core/ui_action.h), carried over with the
// same numeric defaults.
type OpArgs struct {
	ClickHoldMs           uint32
	LongClickHoldMs       uint32
	DoubleClickIntervalMs uint32
	KeyHoldMs             uint32

	SwipeVelocityPps        uint32
	MinSwipeVelocityPps     uint32
	MaxSwipeVelocityPps     uint32
	DefaultSwipeVelocityPps uint32
	SwipeStepsCount         uint16

	ScrollWidgetDeadZone int32
	UiSteadyThresholdMs  uint32
	WaitUiSteadyMaxMs    uint32
	WaitWidgetMaxMs      uint32
}

// DefaultOpArgs reproduces the original engine's system defaults exactly.
func DefaultOpArgs() OpArgs {
	return OpArgs{
		ClickHoldMs:             100,
		LongClickHoldMs:         1500,
		DoubleClickIntervalMs:   200,
		KeyHoldMs:               100,
		SwipeVelocityPps:        600,
		MinSwipeVelocityPps:     200,
		MaxSwipeVelocityPps:     15000,
		DefaultSwipeVelocityPps: 600,
		SwipeStepsCount:         50,
		ScrollWidgetDeadZone:    20,
		UiSteadyThresholdMs:     1000,
		WaitUiSteadyMaxMs:       3000,
		WaitWidgetMaxMs:         5000,
	}
}
