package uidriver

import (
	"fmt"

	"github.com/devicelab-dev/uicore/pkg/action"
	"github.com/devicelab-dev/uicore/pkg/controller"
	"github.com/devicelab-dev/uicore/pkg/dom"
	"github.com/devicelab-dev/uicore/pkg/model"
	"github.com/devicelab-dev/uicore/pkg/selector"
	"github.com/devicelab-dev/uicore/pkg/widget"
)

// ScrollSearch scrolls subjectImage until targetSelector matches or the
// snapshot freezes in both directions. startOffset, if positive, issues that
// many unconditional upward scrolls before the normal two-phase search
// begins, for a caller that already knows roughly how far to seek.
//
// Phase 1 scrolls up (revealing content above); phase 2 reverses. Each
// phase's first inspected snapshot is the one the subject was just refreshed
// against, so a target already visible costs zero scrolls and zero extra
// fetches. On the boundary snapshot that follows a phase's last scroll, one
// more FindAll runs before the frozen check ends that phase.
func (d *UiDriver) ScrollSearch(subjectImage *widget.WidgetImage, targetSelector *selector.Selector, startOffset int) (*widget.WidgetImage, *model.ApiCallErr) {
	c, err := d.activeController()
	if err != nil {
		return nil, err
	}

	current, fetchErr := c.GetCurrentUiDom()
	if fetchErr != nil {
		return nil, model.NewApiCallErr(model.InternalError, fmt.Sprintf("fetch snapshot: %v", fetchErr))
	}
	if err := d.resolveAgainst(current, subjectImage); err != nil {
		return nil, err
	}

	if startOffset > 0 {
		for i := 0; i < startOffset; i++ {
			if err := d.issueScroll(c, subjectImage, action.ScrollUp); err != nil {
				return nil, err
			}
			d.settleAfterScroll()
		}
		current, fetchErr = c.GetCurrentUiDom()
		if fetchErr != nil {
			return nil, model.NewApiCallErr(model.InternalError, fmt.Sprintf("fetch snapshot: %v", fetchErr))
		}
		if err := d.resolveAgainst(current, subjectImage); err != nil {
			return nil, err
		}
	}

	found, boundary, err := d.runScrollPhase(c, subjectImage, targetSelector, current, action.ScrollUp)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}

	if err := d.resolveAgainst(boundary, subjectImage); err != nil {
		return nil, err
	}
	found, _, err = d.runScrollPhase(c, subjectImage, targetSelector, boundary, action.ScrollDown)
	if err != nil {
		return nil, err
	}
	return found, nil
}

// runScrollPhase runs one directed phase of the search starting from an
// already-fetched snapshot, returning the boundary (frozen) snapshot it
// stopped on so the caller can hand it to the next phase without an extra
// fetch.
func (d *UiDriver) runScrollPhase(c controller.Controller, subjectImage *widget.WidgetImage, targetSelector *selector.Selector, before *dom.Snapshot, dir action.ScrollDirection) (*widget.WidgetImage, *dom.Snapshot, *model.ApiCallErr) {
	for {
		if match := tryFind(before, targetSelector); match != nil {
			return widget.NewWidgetImage(match, targetSelector), before, nil
		}

		if err := d.resolveAgainst(before, subjectImage); err != nil {
			return nil, before, err
		}
		if err := d.issueScroll(c, subjectImage, dir); err != nil {
			return nil, before, err
		}
		d.settleAfterScroll()

		after, fetchErr := c.GetCurrentUiDom()
		if fetchErr != nil {
			return nil, before, model.NewApiCallErr(model.InternalError, fmt.Sprintf("fetch snapshot: %v", fetchErr))
		}

		if after.Equal(before) {
			if match := tryFind(after, targetSelector); match != nil {
				return widget.NewWidgetImage(match, targetSelector), after, nil
			}
			return nil, after, nil
		}
		before = after
	}
}

func (d *UiDriver) issueScroll(c controller.Controller, subjectImage *widget.WidgetImage, dir action.ScrollDirection) *model.ApiCallErr {
	bounds, hasBounds := subjectImage.Bounds()
	if !hasBounds {
		return model.NewApiCallErr(model.UsageError,
			fmt.Sprintf("scroll subject has no bounds: %s", subjectImage.GetSelectionDesc()))
	}
	events := action.Scroll(bounds, dir, d.args)
	if err := c.InjectTouchEventSequence(events); err != nil {
		return model.NewApiCallErr(model.InternalError, fmt.Sprintf("inject scroll sequence: %v", err))
	}
	return nil
}

func tryFind(snap *dom.Snapshot, sel *selector.Selector) *dom.Node {
	matches := sel.FindAll(snap)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
