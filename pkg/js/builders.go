package js

import (
	"fmt"

	"github.com/dop251/goja"

	"dockui/pkg/geometry"
	"dockui/pkg/layout"
	"dockui/pkg/theme"
	"dockui/pkg/widget"
)

// registerBuilders installs the global builder functions. Builders mirror
// widget.Context: frame() opens a group that popGroup() closes.
func (e *Engine) registerBuilders() {
	vm := e.vm
	ctx := e.ctx

	vm.Set("frame", func(call goja.FunctionCall) goja.Value {
		tag := e.stringArg(call, 0)
		rect := e.rectArg(call, 1)
		dock := e.dockArg(call, 2, "frame")
		return e.proxy(ctx.Frame(tag, rect, dock))
	})
	vm.Set("popGroup", func(call goja.FunctionCall) goja.Value {
		if err := ctx.PopGroup(); err != nil {
			panic(vm.NewTypeError("popGroup: %v", err))
		}
		return goja.Undefined()
	})
	vm.Set("button", func(call goja.FunctionCall) goja.Value {
		return e.proxy(ctx.Button(e.stringArg(call, 0), e.dockArg(call, 1, "button")))
	})
	vm.Set("label", func(call goja.FunctionCall) goja.Value {
		return e.proxy(ctx.Label(e.stringArg(call, 0), e.dockArg(call, 1, "label")))
	})
	vm.Set("checkbox", func(call goja.FunctionCall) goja.Value {
		text := e.stringArg(call, 0)
		checked := call.Argument(1).ToBoolean()
		return e.proxy(ctx.Checkbox(text, checked, e.dockArg(call, 2, "checkbox")))
	})
	vm.Set("slider", func(call goja.FunctionCall) goja.Value {
		tag := e.stringArg(call, 0)
		value := call.Argument(1).ToFloat()
		lo := call.Argument(2).ToFloat()
		hi := 100.0
		if !goja.IsUndefined(call.Argument(3)) {
			hi = call.Argument(3).ToFloat()
		}
		return e.proxy(ctx.Slider(tag, value, lo, hi, e.dockArg(call, 4, "slider")))
	})
	vm.Set("textbox", func(call goja.FunctionCall) goja.Value {
		tag := e.stringArg(call, 0)
		text := e.stringArg(call, 1)
		return e.proxy(ctx.Textbox(tag, text, e.dockArg(call, 2, "textbox")))
	})
	vm.Set("listbox", func(call goja.FunctionCall) goja.Value {
		tag := e.stringArg(call, 0)
		columns := e.stringsArg(call, 1)
		items := e.stringsArg(call, 2)
		return e.proxy(ctx.Listbox(tag, columns, items, e.dockArg(call, 3, "listbox")))
	})
	vm.Set("popup", func(call goja.FunctionCall) goja.Value {
		tag := e.stringArg(call, 0)
		items := e.stringsArg(call, 1)
		return e.proxy(ctx.Popup(tag, items, e.dockArg(call, 2, "popup")))
	})
	vm.Set("scrollbar", func(call goja.FunctionCall) goja.Value {
		w, err := ctx.Scrollbar(e.stringArg(call, 0))
		if err != nil {
			panic(vm.NewTypeError("scrollbar: %v", err))
		}
		return e.proxy(w)
	})

	vm.Set("theme", func(call goja.FunctionCall) goja.Value {
		th, err := theme.Resolve(e.stringArg(call, 0))
		if err != nil {
			panic(vm.NewTypeError("theme: %v", err))
		}
		ctx.SetTheme(th)
		return goja.Undefined()
	})
	vm.Set("viewport", func(call goja.FunctionCall) goja.Value {
		ctx.SetViewport(call.Argument(0).ToFloat(), call.Argument(1).ToFloat())
		return goja.Undefined()
	})
	vm.Set("update", func(call goja.FunctionCall) goja.Value {
		ctx.Update()
		return goja.Undefined()
	})
	vm.Set("find", func(call goja.FunctionCall) goja.Value {
		w := ctx.FindTag(e.stringArg(call, 0))
		if w == nil {
			return goja.Null()
		}
		return e.proxy(w)
	})
}

func (e *Engine) stringArg(call goja.FunctionCall, i int) string {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}

func (e *Engine) stringsArg(call goja.FunctionCall, i int) []string {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	raw, ok := v.Export().([]interface{})
	if !ok {
		panic(e.vm.NewTypeError("argument %d must be an array", i+1))
	}
	out := make([]string, len(raw))
	for j, item := range raw {
		out[j] = fmt.Sprint(item)
	}
	return out
}

func (e *Engine) dockArg(call goja.FunctionCall, i int, fn string) layout.Flags {
	flags, err := layout.ParseFlags(e.stringArg(call, i))
	if err != nil {
		panic(e.vm.NewTypeError("%s: %v", fn, err))
	}
	return flags
}

// rectArg reads an {x, y, w, h} object; missing fields are zero.
func (e *Engine) rectArg(call goja.FunctionCall, i int) geometry.Rect {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return geometry.Rect{}
	}
	obj := v.ToObject(e.vm)
	field := func(name string) float64 {
		f := obj.Get(name)
		if f == nil || goja.IsUndefined(f) {
			return 0
		}
		return f.ToFloat()
	}
	return geometry.Rect{X: field("x"), Y: field("y"), W: field("w"), H: field("h")}
}

// proxy returns the script object for w, creating it once per widget so
// scripts can compare widgets with ===.
func (e *Engine) proxy(w *widget.Widget) goja.Value {
	if v, ok := e.proxies[w.ID()]; ok {
		return v
	}
	v := e.vm.NewDynamicObject(&widgetAccessor{e: e, w: w})
	e.proxies[w.ID()] = v
	return v
}
