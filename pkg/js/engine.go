package js

import (
	"fmt"
	"io"
	"os"

	"github.com/dop251/goja"

	"dockui/pkg/layout"
	"dockui/pkg/widget"
)

// Engine runs scene scripts that build widgets into a Context.
type Engine struct {
	vm      *goja.Runtime
	ctx     *widget.Context
	proxies map[layout.ID]goja.Value
	console *console
}

// New creates an engine with a fresh goja runtime bound to ctx. Console
// output goes to stdout and stderr, each line tagged with the script name.
func New(ctx *widget.Context) *Engine {
	vm := goja.New()
	e := &Engine{
		vm:      vm,
		ctx:     ctx,
		proxies: make(map[layout.ID]goja.Value),
		console: &console{out: os.Stdout, errOut: os.Stderr},
	}

	e.console.install(vm)
	e.registerBuilders()

	return e
}

// SetOutput redirects console.log (out) and console.warn/error (errOut).
func (e *Engine) SetOutput(out, errOut io.Writer) {
	e.console.out = out
	e.console.errOut = errOut
}

// Run executes a script. name shows up in error positions and console lines.
func (e *Engine) Run(name, src string) error {
	e.console.script = name
	if _, err := e.vm.RunScript(name, src); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}
	return nil
}
