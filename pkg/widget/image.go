// Package widget implements WidgetImage, a detached handle to a widget that
// can be re-resolved against a fresh DOM snapshot.
package widget

import (
	"encoding/json"
	"fmt"

	"github.com/devicelab-dev/uicore/pkg/dom"
	"github.com/devicelab-dev/uicore/pkg/model"
	"github.com/devicelab-dev/uicore/pkg/selector"
)

// WidgetImage is a snapshot-detached reference to a widget. It carries the
// widget's attributes and bounds as of the last refresh, plus enough
// information (a hashcode attribute, or the originating selector) to
// re-resolve itself against a newer snapshot.
type WidgetImage struct {
	attrs    map[string]string
	bounds   model.Rect
	hasB     bool
	path     string
	selector *selector.Selector
}

// NewWidgetImage builds a WidgetImage from a resolved node, remembering the
// selector that found it for selector-based re-resolution.
func NewWidgetImage(n *dom.Node, sel *selector.Selector) *WidgetImage {
	w := &WidgetImage{selector: sel, path: n.Path()}
	w.ApplyFresh(n.Attributes, n.Bounds, n.HasBounds)
	return w
}

// ApplyFresh replaces the image's cached attributes and bounds, as performed
// by UiDriver.UpdateWidgetImage after a successful re-resolution.
func (w *WidgetImage) ApplyFresh(attrs map[string]string, bounds model.Rect, hasBounds bool) {
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	w.attrs = copied
	w.bounds = bounds
	w.hasB = hasBounds
}

// GetAttribute returns the named attribute as of the last refresh, or def if
// absent.
func (w *WidgetImage) GetAttribute(name, def string) string {
	if v, ok := w.attrs[name]; ok {
		return v
	}
	return def
}

// GetHashCode returns the widget's hashcode attribute, or "" if it has none.
func (w *WidgetImage) GetHashCode() string {
	return w.attrs["hashcode"]
}

// Bounds returns the widget's bounds as of the last refresh.
func (w *WidgetImage) Bounds() (model.Rect, bool) {
	return w.bounds, w.hasB
}

// Selector returns the selector that originally located this widget, used
// as the fallback re-resolution strategy when no hashcode is available.
func (w *WidgetImage) Selector() *selector.Selector {
	return w.selector
}

// GetSelectionDesc renders a human-readable description of how this widget
// was selected, used in diagnostics and error messages.
func (w *WidgetImage) GetSelectionDesc() string {
	if w.selector != nil {
		return w.selector.Describe()
	}
	return w.path
}

type imageDTO struct {
	Attributes map[string]string `json:"attributes"`
	Bounds     *model.Rect       `json:"bounds,omitempty"`
	Path       string            `json:"path,omitempty"`
	Selector   json.RawMessage   `json:"selector,omitempty"`
}

// MarshalBlob serializes the image's current attributes/bounds, plus the
// originating selector's base matchers when it has one, for transit across
// the ExternApi boundary as a WIDGET value.
func (w *WidgetImage) MarshalBlob() (json.RawMessage, error) {
	dto := imageDTO{Attributes: w.attrs, Path: w.path}
	if w.hasB {
		b := w.bounds
		dto.Bounds = &b
	}
	if w.selector != nil {
		sel, err := w.selector.MarshalBlob()
		if err != nil {
			return nil, err
		}
		dto.Selector = sel
	}
	return json.Marshal(dto)
}

// ValueTag reports the Value tag a serialized WidgetImage carries.
func (w *WidgetImage) ValueTag() model.Tag {
	return model.Widget
}

// UnmarshalImage reconstructs a WidgetImage from a serialized WIDGET value.
// The originating selector's base matchers are restored when the value
// carries them, so an image without a hashcode can still be re-resolved by
// selector; relative constraints are not part of the wire format.
func UnmarshalImage(data json.RawMessage) (*WidgetImage, error) {
	var dto imageDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("widget: unmarshal image: %w", err)
	}
	w := &WidgetImage{path: dto.Path}
	if len(dto.Selector) > 0 {
		sel, err := selector.UnmarshalSelector(dto.Selector)
		if err != nil {
			return nil, fmt.Errorf("widget: unmarshal image: %w", err)
		}
		w.selector = sel
	}
	bounds := model.Rect{}
	hasBounds := dto.Bounds != nil
	if hasBounds {
		bounds = *dto.Bounds
	}
	w.ApplyFresh(dto.Attributes, bounds, hasBounds)
	return w, nil
}
