/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package repl provides the interactive read-eval-print loop for jsrun.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/dop251/goja"
	"github.com/spf13/cobra"

	"jsrun.dev/jsrun/config"
	"jsrun.dev/jsrun/engine"
	jsfs "jsrun.dev/jsrun/fs"
	"jsrun.dev/jsrun/internal/version"
)

// Cmd is the repl cobra command.
var Cmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive JavaScript session",
	RunE:  runE,
}

func runE(cmd *cobra.Command, args []string) error {
	filesystem := jsfs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	eng := engine.New(engine.Options{
		FileSystem: filesystem,
		LookupEnv:  cfg.LookupEnv(os.LookupEnv),
	})

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "jsrun> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".jsrun_history"),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	fmt.Printf("jsrun %s (ctrl-d to exit)\n", version.Get())

	var line int
	for {
		input, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if input == "" {
			continue
		}

		line++
		value, err := eng.Eval(fmt.Sprintf("<repl:%d>", line), input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if value != nil && !goja.IsUndefined(value) {
			fmt.Println(value.String())
		}
	}
}
