/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package engine embeds the goja JavaScript engine and wires its module
// loading through the specifier resolution chain.
package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dop251/goja"

	jsfs "jsrun.dev/jsrun/fs"
	"jsrun.dev/jsrun/internal/logger"
	"jsrun.dev/jsrun/specifier"
)

// Options configures a new Engine.
type Options struct {
	// FileSystem backs module loading. Defaults to the host OS.
	FileSystem jsfs.FileSystem

	// LookupEnv is the environment probe injected into the search path
	// resolver. Defaults to the process environment.
	LookupEnv specifier.LookupEnv

	// Stdout and Stderr receive console and std output.
	Stdout io.Writer
	Stderr io.Writer

	// MaxCallStackSize limits the JavaScript call stack when positive.
	MaxCallStackSize int

	// DumpRejections logs promise rejections that were never handled.
	DumpRejections bool
}

// Engine is a single-threaded JavaScript runtime with CommonJS-style
// require backed by the resolution chain. Module loads happen sequentially
// as the import graph is walked; no two resolutions ever race.
type Engine struct {
	vm      *goja.Runtime
	fs      jsfs.FileSystem
	loader  *Loader
	modules map[string]*goja.Object

	builtins     map[string]func(*Engine) *goja.Object
	builtinCache map[string]*goja.Object

	stdout io.Writer
	stderr io.Writer
}

// New creates an engine and installs the require hook, console and the
// builtin module table.
func New(opts Options) *Engine {
	if opts.FileSystem == nil {
		opts.FileSystem = jsfs.NewOSFileSystem()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	vm := goja.New()
	if opts.MaxCallStackSize > 0 {
		vm.SetMaxCallStackSize(opts.MaxCallStackSize)
	}
	if opts.DumpRejections {
		vm.SetPromiseRejectionTracker(func(p *goja.Promise, op goja.PromiseRejectionOperation) {
			if op == goja.PromiseRejectionReject {
				logger.Warn("unhandled promise rejection: %s", p.Result().String())
			}
		})
	}

	e := &Engine{
		vm:           vm,
		fs:           opts.FileSystem,
		loader:       NewLoader(opts.FileSystem, opts.LookupEnv),
		modules:      make(map[string]*goja.Object),
		builtinCache: make(map[string]*goja.Object),
		stdout:       opts.Stdout,
		stderr:       opts.Stderr,
	}
	e.builtins = map[string]func(*Engine) *goja.Object{
		"std": stdModule,
		"os":  osModule,
	}

	_ = vm.Set("require", e.makeRequire(""))
	e.installConsole()
	return e
}

// SetArgs exposes the script's command line as the scriptArgs global.
func (e *Engine) SetArgs(args []string) {
	_ = e.vm.Set("scriptArgs", args)
}

// RunFile loads and evaluates a script file.
func (e *Engine) RunFile(path string) error {
	src, err := e.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	_, err = e.vm.RunScript(path, string(src))
	return err
}

// Eval evaluates source text and returns the resulting value.
func (e *Engine) Eval(name, src string) (goja.Value, error) {
	return e.vm.RunScript(name, src)
}

// makeRequire builds a require function anchored at the directory of the
// importing module. The top-level require uses an empty anchor, leaving
// relative specifiers to resolve against the working directory.
func (e *Engine) makeRequire(fromDir string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		spec := call.Argument(0).String()
		exports, err := e.loadModule(fromDir, spec)
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		return exports
	}
}

// loadModule is the import hook: normalize, resolve, then fall back to the
// engine's native loading. Exactly one of the three outcomes wins.
func (e *Engine) loadModule(fromDir, spec string) (goja.Value, error) {
	if fromDir != "" && specifier.Classify(spec) == specifier.KindRelative {
		// Anchor relative imports at the importing module's directory
		// before classification-driven resolution, the way the host
		// normalization step would.
		spec = filepath.Join(fromDir, spec)
	}

	name, path, err := e.loader.Resolve(spec)
	if err == nil {
		return e.evalModule(path)
	}
	if !errors.Is(err, specifier.ErrNotFound) {
		return nil, err
	}
	return e.loadNative(name)
}

// loadNative is the engine's own loader: builtin modules by name, then the
// specifier taken verbatim as a file path. Its failure is the terminal
// module-load error.
func (e *Engine) loadNative(name string) (goja.Value, error) {
	if builtin, ok := e.builtins[name]; ok {
		if cached, ok := e.builtinCache[name]; ok {
			return cached, nil
		}
		obj := builtin(e)
		e.builtinCache[name] = obj
		return obj, nil
	}
	return e.evalModule(name)
}

// evalModule loads, compiles and executes a CommonJS module at a concrete
// path, returning its exports. Loaded modules are cached by path; the
// cache entry is installed before execution so cyclic imports observe the
// partially built exports instead of recursing forever.
func (e *Engine) evalModule(path string) (goja.Value, error) {
	if module, ok := e.modules[path]; ok {
		return module.Get("exports"), nil
	}

	src, err := e.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load module %s: %w", path, err)
	}

	module := e.vm.NewObject()
	exports := e.vm.NewObject()
	_ = module.Set("exports", exports)
	e.modules[path] = module

	prog, err := goja.Compile(path, moduleWrapper(string(src)), false)
	if err != nil {
		delete(e.modules, path)
		return nil, fmt.Errorf("compile module %s: %w", path, err)
	}

	v, err := e.vm.RunProgram(prog)
	if err != nil {
		delete(e.modules, path)
		return nil, err
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		delete(e.modules, path)
		return nil, fmt.Errorf("compile module %s: wrapper is not a function", path)
	}

	requireFn := e.vm.ToValue(e.makeRequire(filepath.Dir(path)))
	_, err = fn(exports, module, exports, requireFn,
		e.vm.ToValue(path), e.vm.ToValue(filepath.Dir(path)))
	if err != nil {
		delete(e.modules, path)
		return nil, err
	}

	return module.Get("exports"), nil
}

// moduleWrapper wraps module source in the CommonJS function scope.
func moduleWrapper(src string) string {
	return "(function(module, exports, require, __filename, __dirname) {\n" + src + "\n})"
}

// installConsole provides console.log/warn/error backed by the configured
// writers.
func (e *Engine) installConsole() {
	console := e.vm.NewObject()
	_ = console.Set("log", e.printTo(e.stdout))
	_ = console.Set("info", e.printTo(e.stdout))
	_ = console.Set("warn", e.printTo(e.stderr))
	_ = console.Set("error", e.printTo(e.stderr))
	_ = e.vm.Set("console", console)
}

func (e *Engine) printTo(w io.Writer) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		_, _ = fmt.Fprintln(w, strings.Join(parts, " "))
		return goja.Undefined()
	}
}
