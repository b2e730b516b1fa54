package action

import "github.com/devicelab-dev/uicore/pkg/model"

// Stage mirrors the original engine's ActionStage enum.
type Stage int

const (
	Down Stage = 0
	Move Stage = 1
	Up   Stage = 2
)

// TouchEvent is a single point in a synthesized touch gesture.
type TouchEvent struct {
	Stage            Stage
	Point            model.Point
	DownTimeOffsetMs uint32
	HoldMs           uint32
}

// ScrollDirection enumerates the directions a scroll gesture can be
// synthesized for.
type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
	ScrollLeft
	ScrollRight
)

// Click synthesizes a single tap at p.
func Click(p model.Point, args OpArgs) []TouchEvent {
	return []TouchEvent{
		{Stage: Down, Point: p, HoldMs: args.ClickHoldMs},
		{Stage: Up, Point: p},
	}
}

// LongClick synthesizes a press-and-hold at p.
func LongClick(p model.Point, args OpArgs) []TouchEvent {
	return []TouchEvent{
		{Stage: Down, Point: p, HoldMs: args.LongClickHoldMs},
		{Stage: Up, Point: p},
	}
}

// DoubleClick synthesizes two taps at p separated by the configured
// double-click interval.
func DoubleClick(p model.Point, args OpArgs) []TouchEvent {
	return []TouchEvent{
		{Stage: Down, Point: p, HoldMs: args.ClickHoldMs},
		{Stage: Up, Point: p},
		{Stage: Down, Point: p, DownTimeOffsetMs: args.DoubleClickIntervalMs, HoldMs: args.ClickHoldMs},
		{Stage: Up, Point: p},
	}
}

// Swipe synthesizes a straight-line drag from from to to, stepped according
// to args.SwipeStepsCount.
func Swipe(from, to model.Point, args OpArgs) []TouchEvent {
	return interpolate(from, to, args)
}

// Drag is a supplemental alias of Swipe kept distinct at the API level
// because the original engine treats CLICK/LONG_CLICK/DOUBLE_CLICK/SWIPE/DRAG
// as five separate TouchOp values, even though DRAG's event shape is
// identical to SWIPE's.
func Drag(from, to model.Point, args OpArgs) []TouchEvent {
	return interpolate(from, to, args)
}

func interpolate(from, to model.Point, args OpArgs) []TouchEvent {
	steps := int(args.SwipeStepsCount)
	if steps < 1 {
		steps = 1
	}
	events := make([]TouchEvent, 0, steps+1)
	events = append(events, TouchEvent{Stage: Down, Point: from})
	for i := 1; i < steps; i++ {
		frac := float64(i) / float64(steps)
		p := model.Point{
			X: from.X + int(float64(to.X-from.X)*frac),
			Y: from.Y + int(float64(to.Y-from.Y)*frac),
		}
		events = append(events, TouchEvent{Stage: Move, Point: p})
	}
	events = append(events, TouchEvent{Stage: Up, Point: to})
	return events
}

// Scroll synthesizes a single scroll gesture over subject, in the direction
// requested. Amplitude matches the subject's own bounds, satisfying the
// ScrollSearch algorithm's amplitude invariant.
func Scroll(subject model.Rect, dir ScrollDirection, args OpArgs) []TouchEvent {
	center := subject.Center()
	var from, to model.Point
	switch dir {
	case ScrollUp:
		// Reveals content above: finger travels top -> bottom.
		from = model.Point{X: center.X, Y: subject.Top}
		to = model.Point{X: center.X, Y: subject.Bottom}
	case ScrollDown:
		// Reveals content below: finger travels bottom -> top.
		from = model.Point{X: center.X, Y: subject.Bottom}
		to = model.Point{X: center.X, Y: subject.Top}
	case ScrollLeft:
		from = model.Point{X: subject.Left, Y: center.Y}
		to = model.Point{X: subject.Right, Y: center.Y}
	case ScrollRight:
		from = model.Point{X: subject.Right, Y: center.Y}
		to = model.Point{X: subject.Left, Y: center.Y}
	}
	return interpolate(from, to, args)
}

// Pinch synthesizes a two-finger pinch/zoom gesture centered on rect's
// center, scaling by scale. Exposed at the action package level for callers
// that want to drive UiController.InjectTouchEventSequence directly; it is
// not wired into PerformWidgetOperate because its two-pointer shape does not
// fit that operation's single-widget single-op contract.
func Pinch(rect model.Rect, scale float64, args OpArgs) []TouchEvent {
	center := rect.Center()
	halfW := rect.Width() / 2
	halfH := rect.Height() / 2
	p1Start := model.Point{X: center.X - halfW/4, Y: center.Y - halfH/4}
	p2Start := model.Point{X: center.X + halfW/4, Y: center.Y + halfH/4}
	p1End := model.Point{X: center.X - int(float64(halfW/4)*scale), Y: center.Y - int(float64(halfH/4)*scale)}
	p2End := model.Point{X: center.X + int(float64(halfW/4)*scale), Y: center.Y + int(float64(halfH/4)*scale)}

	events := interpolate(p1Start, p1End, args)
	events = append(events, interpolate(p2Start, p2End, args)...)
	return events
}
