// Package uidriver implements the find/operate/update/scroll-search
// algorithms that drive a single target device through its active
// controller.Controller.
package uidriver

import (
	"fmt"
	"log"
	"time"

	"github.com/devicelab-dev/uicore/pkg/action"
	"github.com/devicelab-dev/uicore/pkg/controller"
	"github.com/devicelab-dev/uicore/pkg/dom"
	"github.com/devicelab-dev/uicore/pkg/model"
	"github.com/devicelab-dev/uicore/pkg/selector"
	"github.com/devicelab-dev/uicore/pkg/uilog"
	"github.com/devicelab-dev/uicore/pkg/widget"
)

// OperateType enumerates the touch operations PerformWidgetOperate supports.
type OperateType int

const (
	Click OperateType = iota
	LongClick
	DoubleClick
	Swipe
)

// UiDriver is constructed against one target device and the shared
// controller.Registry it is resolved through. It carries no DOM state of its
// own between calls: every operation re-fetches from the active controller.
type UiDriver struct {
	device             string
	registry           *controller.Registry
	args               action.OpArgs
	log                *log.Logger
	scrollSettleWaitMs uint32
}

// New builds a UiDriver for device, resolving its active controller through
// registry on every operation. The default logger writes to uilog's shared
// sink (see pkg/uilog.GetWriter), the same sink SetLogger's caller can build
// their own *log.Logger over.
func New(device string, registry *controller.Registry, args action.OpArgs) *UiDriver {
	return &UiDriver{
		device:   device,
		registry: registry,
		args:     args,
		log:      log.New(uilog.GetWriter(), "[uidriver] ", log.LstdFlags),
	}
}

// SetLogger overrides the driver's diagnostic logger, matching the teacher's
// injectable-logger test convention.
func (d *UiDriver) SetLogger(l *log.Logger) {
	d.log = l
}

// SetScrollSettleWaitMs sets the pause ScrollSearch's phase loop takes after
// issuing a scroll and before re-fetching, per uiconfig.Config's
// ScrollSettleWaitMs tunable. 0 (the default) issues no pause.
func (d *UiDriver) SetScrollSettleWaitMs(ms uint32) {
	d.scrollSettleWaitMs = ms
}

func (d *UiDriver) settleAfterScroll() {
	if d.scrollSettleWaitMs > 0 {
		time.Sleep(time.Duration(d.scrollSettleWaitMs) * time.Millisecond)
	}
}

func (d *UiDriver) activeController() (controller.Controller, *model.ApiCallErr) {
	c, ok := d.registry.GetController(d.device)
	if !ok {
		d.log.Printf("no usable UiController for device %q", d.device)
		return nil, model.NewApiCallErr(model.InternalError, "no usable UiController")
	}
	return c, nil
}

func (d *UiDriver) snapshot() (*dom.Snapshot, controller.Controller, *model.ApiCallErr) {
	c, err := d.activeController()
	if err != nil {
		return nil, nil, err
	}
	snap, fetchErr := c.GetCurrentUiDom()
	if fetchErr != nil {
		return nil, nil, model.NewApiCallErr(model.InternalError, fmt.Sprintf("fetch snapshot: %v", fetchErr))
	}
	return snap, c, nil
}

// FindWidgets resolves sel against the current snapshot and materializes a
// WidgetImage per match, in the selector's own pre-order DFS order.
func (d *UiDriver) FindWidgets(sel *selector.Selector) ([]*widget.WidgetImage, *model.ApiCallErr) {
	snap, _, err := d.snapshot()
	if err != nil {
		return nil, err
	}
	matches := sel.FindAll(snap)
	images := make([]*widget.WidgetImage, 0, len(matches))
	for _, n := range matches {
		images = append(images, widget.NewWidgetImage(n, sel))
	}
	return images, nil
}

// UpdateWidgetImage refreshes img against the current snapshot, mutating it
// in place on success. Resolution prefers img's captured hashcode; it falls
// back to img's originating selector when no hashcode was captured. Either
// path requires exactly one candidate — an ambiguous match is treated as a
// failure, not an arbitrary pick.
func (d *UiDriver) UpdateWidgetImage(img *widget.WidgetImage) *model.ApiCallErr {
	snap, _, err := d.snapshot()
	if err != nil {
		return err
	}
	return d.resolveAgainst(snap, img)
}

// resolveAgainst re-resolves img against an already-fetched snapshot,
// without issuing a new fetch. Used by ScrollSearch, which must reuse the
// snapshot it just inspected rather than fetching a fresh one on every
// subject refresh.
func (d *UiDriver) resolveAgainst(snap *dom.Snapshot, img *widget.WidgetImage) *model.ApiCallErr {
	candidates := d.resolveCandidates(snap, img)
	if len(candidates) != 1 {
		d.log.Printf("re-resolve failed for %s: %d candidates", img.GetSelectionDesc(), len(candidates))
		return model.NewApiCallErr(model.WidgetLost,
			fmt.Sprintf("could not re-resolve widget: %s", img.GetSelectionDesc()))
	}
	n := candidates[0]
	img.ApplyFresh(n.Attributes, n.Bounds, n.HasBounds)
	return nil
}

func (d *UiDriver) resolveCandidates(snap *dom.Snapshot, img *widget.WidgetImage) []*dom.Node {
	if hash := img.GetHashCode(); hash != "" {
		byHash := selector.New().AddMatcher(selector.Matcher{Key: "hashcode", Value: hash, Op: selector.EQ})
		return byHash.FindAll(snap)
	}
	if sel := img.Selector(); sel != nil {
		return sel.FindAll(snap)
	}
	return nil
}

// PerformWidgetOperate refreshes img, then synthesizes and injects the touch
// sequence for op at the refreshed widget's center.
func (d *UiDriver) PerformWidgetOperate(img *widget.WidgetImage, op OperateType) *model.ApiCallErr {
	if err := d.UpdateWidgetImage(img); err != nil {
		return err
	}
	bounds, hasBounds := img.Bounds()
	if !hasBounds {
		return model.NewApiCallErr(model.UsageError,
			fmt.Sprintf("widget has no bounds, not interactable: %s", img.GetSelectionDesc()))
	}

	c, err := d.activeController()
	if err != nil {
		return err
	}
	center := bounds.Center()

	var events []action.TouchEvent
	switch op {
	case Click:
		events = action.Click(center, d.args)
	case LongClick:
		events = action.LongClick(center, d.args)
	case DoubleClick:
		events = action.DoubleClick(center, d.args)
	case Swipe:
		to := model.Point{X: center.X, Y: bounds.Top}
		events = action.Swipe(center, to, d.args)
	default:
		return model.NewApiCallErr(model.UsageError, fmt.Sprintf("unsupported operate type %d", op))
	}

	if err := c.InjectTouchEventSequence(events); err != nil {
		return model.NewApiCallErr(model.InternalError, fmt.Sprintf("inject touch sequence: %v", err))
	}
	return nil
}

// TriggerKey resolves key by name first (action.NamedKey), falling back to
// the active controller's single-character lookup, and injects the result.
func (d *UiDriver) TriggerKey(key string) *model.ApiCallErr {
	c, err := d.activeController()
	if err != nil {
		return err
	}

	if events, ok := action.NamedKey(key, d.args); ok {
		if injErr := c.InjectKeyEventSequence(events); injErr != nil {
			return model.NewApiCallErr(model.InternalError, fmt.Sprintf("inject key sequence: %v", injErr))
		}
		return nil
	}

	runes := []rune(key)
	if len(runes) != 1 {
		return model.NewApiCallErr(model.UsageError, fmt.Sprintf("unknown key %q", key))
	}
	code, ctrlCode, ok := c.GetCharKeyCode(runes[0])
	if !ok {
		return model.NewApiCallErr(model.UsageError, fmt.Sprintf("unknown key %q", key))
	}
	events := action.CharKey(code, ctrlCode, d.args)
	if injErr := c.InjectKeyEventSequence(events); injErr != nil {
		return model.NewApiCallErr(model.InternalError, fmt.Sprintf("inject key sequence: %v", injErr))
	}
	return nil
}
