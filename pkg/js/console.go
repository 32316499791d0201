package js

import (
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"

	"dockui/pkg/diag"
)

// console prints script output one line per call, tagged with the name of
// the script being run. console.debug goes to the diag logger instead.
type console struct {
	script string
	out    io.Writer
	errOut io.Writer
}

func (c *console) install(vm *goja.Runtime) {
	obj := vm.NewObject()
	obj.Set("log", c.printer("", false))
	obj.Set("info", c.printer("", false))
	obj.Set("warn", c.printer("warn", true))
	obj.Set("error", c.printer("error", true))
	obj.Set("debug", func(call goja.FunctionCall) goja.Value {
		diag.Logger().Debug("js: console", "script", c.script, "msg", joinValues(call.Arguments))
		return goja.Undefined()
	})
	vm.Set("console", obj)
}

func (c *console) printer(level string, toErr bool) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		w := c.out
		if toErr {
			w = c.errOut
		}
		line := joinValues(call.Arguments)
		if level != "" {
			line = level + ": " + line
		}
		fmt.Fprintf(w, "[%s] %s\n", c.script, line)
		return goja.Undefined()
	}
}

func joinValues(args []goja.Value) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(arg.String())
	}
	return b.String()
}
