// Package apiserver binds a uidriver.UiDriver to the ExternApi function-id
// namespace, registering one externapi.Handler per operation the way
// frontend_api_handler.cpp registers one entry per API method. Function ids
// follow that file's "ClassName.methodName" convention.
package apiserver

import (
	"github.com/devicelab-dev/uicore/pkg/externapi"
	"github.com/devicelab-dev/uicore/pkg/model"
	"github.com/devicelab-dev/uicore/pkg/selector"
	"github.com/devicelab-dev/uicore/pkg/uidriver"
	"github.com/devicelab-dev/uicore/pkg/widget"
)

// RegisterHandlers registers every UiDriver operation as a handler on
// dispatcher, closing over driver the way the original binds each generated
// method stub to the calling UiDriver instance (there sBackendObjects/
// sDriverBindingMap; here, an ordinary Go closure).
func RegisterHandlers(dispatcher *externapi.Dispatcher, driver *uidriver.UiDriver) {
	dispatcher.AddHandler("UiDriver.findWidgets", handleFindWidgets(driver))
	dispatcher.AddHandler("UiComponent.click", handleOperate(driver, uidriver.Click))
	dispatcher.AddHandler("UiComponent.longClick", handleOperate(driver, uidriver.LongClick))
	dispatcher.AddHandler("UiComponent.doubleClick", handleOperate(driver, uidriver.DoubleClick))
	dispatcher.AddHandler("UiComponent.swipe", handleOperate(driver, uidriver.Swipe))
	dispatcher.AddHandler("UiComponent.getText", handleGetText())
	dispatcher.AddHandler("UiComponent.getBounds", handleGetBounds(driver))
	dispatcher.AddHandler("UiDriver.triggerKey", handleTriggerKey(driver))
	dispatcher.AddHandler("UiDriver.scrollSearch", handleScrollSearch(driver))
}

func widgetParam(params []model.Value, i int) (*widget.WidgetImage, *model.ApiCallErr) {
	blob, err := externapi.GetBlob(params, i, model.Widget)
	if err != nil {
		return nil, err
	}
	img, unmarshalErr := widget.UnmarshalImage(blob)
	if unmarshalErr != nil {
		return nil, model.NewApiCallErr(model.InternalError, unmarshalErr.Error())
	}
	return img, nil
}

func selectorParam(params []model.Value, i int) (*selector.Selector, *model.ApiCallErr) {
	blob, err := externapi.GetBlob(params, i, model.By)
	if err != nil {
		return nil, err
	}
	sel, unmarshalErr := selector.UnmarshalSelector(blob)
	if unmarshalErr != nil {
		return nil, model.NewApiCallErr(model.InternalError, unmarshalErr.Error())
	}
	return sel, nil
}

func pushWidgets(out []model.Value, images []*widget.WidgetImage) ([]model.Value, *model.ApiCallErr) {
	for _, img := range images {
		var apiErr *model.ApiCallErr
		out, apiErr = externapi.PushSerializable(out, img)
		if apiErr != nil {
			return out, apiErr
		}
	}
	return out, nil
}

// handleFindWidgets implements "UiDriver.findWidgets(by: BY) -> WIDGET[]".
func handleFindWidgets(driver *uidriver.UiDriver) externapi.Handler {
	return func(functionID string, caller *model.Value, params []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		if functionID != "UiDriver.findWidgets" {
			return nil, false, nil
		}
		sel, err := selectorParam(params, 0)
		if err != nil {
			return nil, true, err
		}
		images, err := driver.FindWidgets(sel)
		if err != nil {
			return nil, true, err
		}
		out, err := pushWidgets(nil, images)
		return out, true, err
	}
}

// handleOperate implements "UiComponent.<op>(widget: WIDGET) -> void" for
// the click-family operations plus swipe.
func handleOperate(driver *uidriver.UiDriver, op uidriver.OperateType) externapi.Handler {
	var functionID string
	switch op {
	case uidriver.Click:
		functionID = "UiComponent.click"
	case uidriver.LongClick:
		functionID = "UiComponent.longClick"
	case uidriver.DoubleClick:
		functionID = "UiComponent.doubleClick"
	case uidriver.Swipe:
		functionID = "UiComponent.swipe"
	}
	return func(id string, caller *model.Value, params []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		if id != functionID {
			return nil, false, nil
		}
		img, err := widgetParam(params, 0)
		if err != nil {
			return nil, true, err
		}
		if err := driver.PerformWidgetOperate(img, op); err != nil {
			return nil, true, err
		}
		out, err := externapi.PushSerializable(nil, img)
		return out, true, err
	}
}

// handleGetText implements "UiComponent.getText(widget: WIDGET) -> STRING",
// reading the widget's captured "text" attribute without a fresh refresh
// (the caller is expected to have just resolved it via findWidgets or an
// operate call, both of which already refresh).
func handleGetText() externapi.Handler {
	return func(id string, caller *model.Value, params []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		if id != "UiComponent.getText" {
			return nil, false, nil
		}
		blob, err := externapi.GetBlob(params, 0, model.Widget)
		if err != nil {
			return nil, true, err
		}
		img, unmarshalErr := widget.UnmarshalImage(blob)
		if unmarshalErr != nil {
			return nil, true, model.NewApiCallErr(model.InternalError, unmarshalErr.Error())
		}
		return externapi.PushString(nil, img.GetAttribute("text", "")), true, nil
	}
}

// handleGetBounds implements "UiComponent.getBounds(widget: WIDGET) -> RECT",
// refreshing the widget first so the returned bounds are current.
func handleGetBounds(driver *uidriver.UiDriver) externapi.Handler {
	return func(id string, caller *model.Value, params []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		if id != "UiComponent.getBounds" {
			return nil, false, nil
		}
		img, err := widgetParam(params, 0)
		if err != nil {
			return nil, true, err
		}
		if err := driver.UpdateWidgetImage(img); err != nil {
			return nil, true, err
		}
		bounds, hasBounds := img.Bounds()
		if !hasBounds {
			return nil, true, model.NewApiCallErr(model.UsageError, "widget has no bounds")
		}
		out, err := externapi.PushSerializable(nil, bounds)
		return out, true, err
	}
}

// handleTriggerKey implements "UiDriver.triggerKey(key: STRING) -> void".
func handleTriggerKey(driver *uidriver.UiDriver) externapi.Handler {
	return func(id string, caller *model.Value, params []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		if id != "UiDriver.triggerKey" {
			return nil, false, nil
		}
		key, err := externapi.GetString(params, 0)
		if err != nil {
			return nil, true, err
		}
		if err := driver.TriggerKey(key); err != nil {
			return nil, true, err
		}
		return nil, true, nil
	}
}

// handleScrollSearch implements
// "UiDriver.scrollSearch(subject: WIDGET, target: BY, startOffset: INT) -> WIDGET?".
// A search that finds nothing returns zero result values and NO_ERROR, not
// an exception.
func handleScrollSearch(driver *uidriver.UiDriver) externapi.Handler {
	return func(id string, caller *model.Value, params []model.Value) ([]model.Value, bool, *model.ApiCallErr) {
		if id != "UiDriver.scrollSearch" {
			return nil, false, nil
		}
		subject, err := widgetParam(params, 0)
		if err != nil {
			return nil, true, err
		}
		target, err := selectorParam(params, 1)
		if err != nil {
			return nil, true, err
		}
		startOffset, err := externapi.GetInt(params, 2)
		if err != nil {
			return nil, true, err
		}

		found, err := driver.ScrollSearch(subject, target, int(startOffset))
		if err != nil {
			return nil, true, err
		}
		if found == nil {
			return nil, true, nil
		}
		out, err := externapi.PushSerializable(nil, found)
		return out, true, err
	}
}
