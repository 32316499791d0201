package js

import (
	"github.com/dop251/goja"

	"dockui/pkg/geometry"
	"dockui/pkg/layout"
	"dockui/pkg/widget"
)

// widgetAccessor implements goja.DynamicObject for widget proxies.
type widgetAccessor struct {
	e *Engine
	w *widget.Widget
}

var widgetKeys = []string{
	"id", "kind", "tag", "text", "dock", "value", "checked",
	"x", "y", "w", "h",
	"setText", "setDock", "setSize", "setMinSize", "setValue", "setChecked", "scrollBy",
}

func (a *widgetAccessor) Get(key string) goja.Value {
	vm := a.e.vm
	w := a.w

	switch key {
	case "id":
		return vm.ToValue(uint32(w.ID()))
	case "kind":
		return vm.ToValue(w.Kind().String())
	case "tag":
		return vm.ToValue(w.Tag())
	case "text":
		return vm.ToValue(w.Text())
	case "dock":
		return vm.ToValue(w.Dock().String())
	case "value":
		return vm.ToValue(w.Value())
	case "checked":
		return vm.ToValue(w.Checked())
	case "x":
		return vm.ToValue(w.Rect().X)
	case "y":
		return vm.ToValue(w.Rect().Y)
	case "w":
		return vm.ToValue(w.Rect().W)
	case "h":
		return vm.ToValue(w.Rect().H)

	case "setText":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			w.SetText(a.e.stringArg(call, 0))
			return a.e.proxy(w)
		})
	case "setDock":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			w.SetDock(a.e.dockArg(call, 0, "setDock"))
			return a.e.proxy(w)
		})
	case "setSize":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			w.SetSize(call.Argument(0).ToFloat(), call.Argument(1).ToFloat())
			return a.e.proxy(w)
		})
	case "setMinSize":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			w.SetMinSize(geometry.Vec2{X: call.Argument(0).ToFloat(), Y: call.Argument(1).ToFloat()})
			return a.e.proxy(w)
		})
	case "setValue":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			w.SetValue(call.Argument(0).ToFloat())
			return a.e.proxy(w)
		})
	case "setChecked":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			w.SetChecked(call.Argument(0).ToBoolean())
			return a.e.proxy(w)
		})
	case "scrollBy":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			s := w.Embedded()
			if s == nil {
				panic(vm.NewTypeError("scrollBy: %s %q has no scrollbar", w.Kind(), w.Tag()))
			}
			s.ScrollBy(call.Argument(0).ToFloat(), call.Argument(1).ToFloat())
			return a.e.proxy(w)
		})
	}
	return goja.Undefined()
}

func (a *widgetAccessor) Set(key string, val goja.Value) bool {
	switch key {
	case "text":
		a.w.SetText(val.String())
	case "value":
		a.w.SetValue(val.ToFloat())
	case "checked":
		a.w.SetChecked(val.ToBoolean())
	case "tag":
		a.w.SetTag(val.String())
	case "dock":
		flags, err := layout.ParseFlags(val.String())
		if err != nil {
			panic(a.e.vm.NewTypeError("dock: %v", err))
		}
		a.w.SetDock(flags)
	default:
		return false
	}
	return true
}

func (a *widgetAccessor) Has(key string) bool {
	for _, k := range widgetKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (a *widgetAccessor) Delete(key string) bool {
	return false
}

func (a *widgetAccessor) Keys() []string {
	return widgetKeys
}
