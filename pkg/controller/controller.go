// Package controller defines the UiController abstraction and the
// priority-ordered registry used to select an active controller for a
// device. Concrete, OS-specific controller implementations (accessibility
// tree readers, input-injection backends, screen capture) are out of scope;
// this package only owns the interface and the bookkeeping around it.
package controller

import (
	"github.com/devicelab-dev/uicore/pkg/action"
	"github.com/devicelab-dev/uicore/pkg/dom"
)

// Priority mirrors the original engine's Priority enum.
type Priority int

const (
	Low    Priority = 1
	Medium Priority = 2
	High   Priority = 3
)

// Controller is the abstraction a UiDriver drives. Implementations own the
// concrete mechanism for reading the current UI and injecting input; uicore
// ships none beyond a scripted test double (pkg/mockcontroller).
type Controller interface {
	// Name identifies the controller instance for diagnostics and
	// registry bookkeeping.
	Name() string

	// TargetDevice returns the device id this controller serves, or ""
	// if it can serve any device.
	TargetDevice() string

	// GetCurrentUiDom fetches the current widget tree.
	GetCurrentUiDom() (*dom.Snapshot, error)

	// InjectTouchEventSequence delivers a synthesized touch gesture.
	InjectTouchEventSequence(events []action.TouchEvent) error

	// InjectKeyEventSequence delivers a synthesized key gesture.
	InjectKeyEventSequence(events []action.KeyEvent) error

	// PutTextToClipboard sets the system clipboard contents.
	PutTextToClipboard(text string) error

	// WaitForUiSteady blocks until the UI has been unchanged for
	// idleThresholdMs, or timeoutSec elapses. Returns true if the UI
	// settled before the timeout.
	WaitForUiSteady(idleThresholdMs, timeoutSec uint32) bool

	// TakeScreenCap saves a screen capture to savePath. Returns false if
	// unsupported.
	TakeScreenCap(savePath string) bool

	// GetCharKeyCode resolves a single character to a platform keycode
	// and an optional ctrl-modifier keycode.
	GetCharKeyCode(ch rune) (code, ctrlCode int32, ok bool)

	// IsWorkable reports whether this controller is currently effective.
	IsWorkable() bool
}
