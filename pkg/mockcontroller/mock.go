// Package mockcontroller provides a scripted controller.Controller test
// double, so the rest of uicore can be exercised without a real device.
// Modeled on pkg/driver/mock/mock.go's Config-driven, stateful fake.
package mockcontroller

import (
	"fmt"

	"github.com/devicelab-dev/uicore/pkg/action"
	"github.com/devicelab-dev/uicore/pkg/dom"
)

// Controller is a scripted controller.Controller implementation.
type Controller struct {
	// Config configures the mock's identity and failure behavior.
	Config Config

	// Snapshots is the scripted sequence of DOM snapshots returned by
	// successive GetCurrentUiDom calls. The last element repeats once
	// exhausted.
	Snapshots []*dom.Snapshot

	fetchCount      int
	InjectedTouches [][]action.TouchEvent
	InjectedKeys    [][]action.KeyEvent
	Clipboard       string
}

// Config configures mock controller behavior.
type Config struct {
	Name         string
	TargetDevice string
	Workable     bool
	// FailFetchAfter makes GetCurrentUiDom start failing once this many
	// fetches have already succeeded. 0 = never fail.
	FailFetchAfter int
	// KeyCodes maps characters to (code, ctrlCode) for GetCharKeyCode.
	KeyCodes map[rune][2]int32
}

// New creates a mock controller with the given scripted snapshots.
func New(cfg Config, snapshots ...*dom.Snapshot) *Controller {
	if cfg.Name == "" {
		cfg.Name = "mock-controller"
	}
	cfg.Workable = true
	return &Controller{Config: cfg, Snapshots: snapshots}
}

// Name implements controller.Controller.
func (c *Controller) Name() string { return c.Config.Name }

// TargetDevice implements controller.Controller.
func (c *Controller) TargetDevice() string { return c.Config.TargetDevice }

// IsWorkable implements controller.Controller.
func (c *Controller) IsWorkable() bool { return c.Config.Workable }

// GetCurrentUiDom implements controller.Controller, advancing through the
// scripted snapshot sequence.
func (c *Controller) GetCurrentUiDom() (*dom.Snapshot, error) {
	if c.Config.FailFetchAfter > 0 && c.fetchCount >= c.Config.FailFetchAfter {
		return nil, fmt.Errorf("mockcontroller: scripted fetch failure after %d calls", c.Config.FailFetchAfter)
	}
	if len(c.Snapshots) == 0 {
		return nil, fmt.Errorf("mockcontroller: no scripted snapshots configured")
	}
	idx := c.fetchCount
	if idx >= len(c.Snapshots) {
		idx = len(c.Snapshots) - 1
	}
	c.fetchCount++
	return c.Snapshots[idx], nil
}

// FetchCount reports how many GetCurrentUiDom calls have returned a
// snapshot; calls that returned an error are not counted.
func (c *Controller) FetchCount() int { return c.fetchCount }

// InjectTouchEventSequence implements controller.Controller, recording the
// events for test assertions.
func (c *Controller) InjectTouchEventSequence(events []action.TouchEvent) error {
	c.InjectedTouches = append(c.InjectedTouches, events)
	return nil
}

// InjectKeyEventSequence implements controller.Controller, recording the
// events for test assertions.
func (c *Controller) InjectKeyEventSequence(events []action.KeyEvent) error {
	c.InjectedKeys = append(c.InjectedKeys, events)
	return nil
}

// PutTextToClipboard implements controller.Controller.
func (c *Controller) PutTextToClipboard(text string) error {
	c.Clipboard = text
	return nil
}

// WaitForUiSteady implements controller.Controller. The mock has no real
// timing to wait on, so it reports settled immediately.
func (c *Controller) WaitForUiSteady(idleThresholdMs, timeoutSec uint32) bool {
	return true
}

// TakeScreenCap implements controller.Controller. Unsupported by the mock.
func (c *Controller) TakeScreenCap(savePath string) bool {
	return false
}

// GetCharKeyCode implements controller.Controller using Config.KeyCodes.
func (c *Controller) GetCharKeyCode(ch rune) (code, ctrlCode int32, ok bool) {
	if pair, found := c.Config.KeyCodes[ch]; found {
		return pair[0], pair[1], true
	}
	return 0, 0, false
}
