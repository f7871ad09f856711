/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package eval provides the eval command for jsrun.
package eval

import (
	"fmt"
	"os"

	"github.com/dop251/goja"
	"github.com/spf13/cobra"

	"jsrun.dev/jsrun/config"
	"jsrun.dev/jsrun/engine"
	jsfs "jsrun.dev/jsrun/fs"
)

// Cmd is the eval cobra command.
var Cmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a JavaScript expression",
	Long:  `Evaluate a JavaScript expression and print the result. require() and JSRUNPATH resolution are available.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runE,
}

func runE(cmd *cobra.Command, args []string) error {
	filesystem := jsfs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	eng := engine.New(engine.Options{
		FileSystem: filesystem,
		LookupEnv:  cfg.LookupEnv(os.LookupEnv),
	})

	value, err := eng.Eval("<cmdline>", args[0])
	if err != nil {
		return err
	}
	if value != nil && !goja.IsUndefined(value) {
		fmt.Println(value.String())
	}
	return nil
}
