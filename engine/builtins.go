/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package engine

import (
	"fmt"
	"os"
	"runtime"

	"github.com/dop251/goja"
)

// stdModule builds the std builtin, a small subset of the quickjs-libc
// surface: text output, environment access and file reading.
func stdModule(e *Engine) *goja.Object {
	obj := e.vm.NewObject()

	_ = obj.Set("puts", func(s string) {
		_, _ = fmt.Fprint(e.stdout, s)
	})
	_ = obj.Set("printf", func(format string, args ...any) {
		_, _ = fmt.Fprintf(e.stdout, format, args...)
	})
	_ = obj.Set("getenv", func(name string) goja.Value {
		if value, ok := os.LookupEnv(name); ok {
			return e.vm.ToValue(value)
		}
		return goja.Undefined()
	})
	_ = obj.Set("loadFile", func(path string) (string, error) {
		data, err := e.fs.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
	_ = obj.Set("exit", func(code int) {
		os.Exit(code)
	})

	return obj
}

// osModule builds the os builtin with basic platform queries.
func osModule(e *Engine) *goja.Object {
	obj := e.vm.NewObject()

	_ = obj.Set("platform", runtime.GOOS)
	_ = obj.Set("getcwd", func() (string, error) {
		return os.Getwd()
	})
	_ = obj.Set("readdir", func(path string) ([]string, error) {
		entries, err := e.fs.ReadDir(path)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(entries))
		for i, entry := range entries {
			names[i] = entry.Name()
		}
		return names, nil
	})

	return obj
}
