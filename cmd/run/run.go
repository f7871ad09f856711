/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package run provides the run command for jsrun.
package run

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jsrun.dev/jsrun/config"
	"jsrun.dev/jsrun/engine"
	jsfs "jsrun.dev/jsrun/fs"
	"jsrun.dev/jsrun/internal/logger"
	"jsrun.dev/jsrun/specifier"
)

// Cmd is the run cobra command.
var Cmd = &cobra.Command{
	Use:   "run [flags] <file> [args...]",
	Short: "Run a JavaScript file",
	Long: `Run a JavaScript file. Bare imports are resolved against JSRUNPATH,
relative and absolute imports against the filesystem, with .js and
index.js fallbacks.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runE,
}

func init() {
	Cmd.Flags().StringArrayP("include", "I", nil, "Evaluate additional files first (glob patterns allowed)")
	Cmd.Flags().Bool("std", false, "Expose the std and os modules as globals")
	Cmd.Flags().Int("stack-size", 0, "Limit the JavaScript call stack depth")
	Cmd.Flags().Bool("unhandled-rejection", false, "Warn about unhandled promise rejections")
	Cmd.Flags().Bool("watch", false, "Re-run the script when it changes")

	_ = viper.BindPFlag("std", Cmd.Flags().Lookup("std"))
}

// job carries everything one script execution needs, so --watch can replay
// it with a fresh engine each time.
type job struct {
	filesystem jsfs.FileSystem
	lookup     specifier.LookupEnv
	includes   []string
	std        bool
	stackSize  int
	dumpRej    bool
	script     string
	args       []string
	stdout     io.Writer
	stderr     io.Writer
}

func runE(cmd *cobra.Command, args []string) error {
	includes, _ := cmd.Flags().GetStringArray("include")
	stackSize, _ := cmd.Flags().GetInt("stack-size")
	dumpRejections, _ := cmd.Flags().GetBool("unhandled-rejection")
	watch, _ := cmd.Flags().GetBool("watch")

	filesystem := jsfs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	// The config file supplies the default; an explicit --std flag wins.
	viper.SetDefault("std", cfg.Std)

	j := &job{
		filesystem: filesystem,
		lookup:     cfg.LookupEnv(os.LookupEnv),
		includes:   append(append([]string{}, cfg.Includes...), includes...),
		std:        viper.GetBool("std"),
		stackSize:  stackSize,
		dumpRej:    dumpRejections,
		script:     args[0],
		args:       args[1:],
	}

	if watch {
		return watchAndRun(j.script, j.execute)
	}
	return j.execute()
}

// execute runs the job on a fresh engine. Globals (scriptArgs, the std/os
// preamble) are installed before include files are evaluated, so includes
// see the same environment the main script does.
func (j *job) execute() error {
	eng := engine.New(engine.Options{
		FileSystem:       j.filesystem,
		LookupEnv:        j.lookup,
		MaxCallStackSize: j.stackSize,
		DumpRejections:   j.dumpRej,
		Stdout:           j.stdout,
		Stderr:           j.stderr,
	})

	eng.SetArgs(j.args)

	if j.std {
		if _, err := eng.Eval("<preamble>",
			"globalThis.std = require('std'); globalThis.os = require('os');"); err != nil {
			return err
		}
	}

	files, err := expandIncludes(j.includes)
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := eng.RunFile(file); err != nil {
			return fmt.Errorf("include %s: %w", file, err)
		}
	}

	return eng.RunFile(j.script)
}

// expandIncludes resolves include patterns to concrete files. A pattern
// that matches nothing is a warning, not an error, so a config shared
// between projects can name optional preludes.
func expandIncludes(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			logger.Warn("include pattern %q matched no files", pattern)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
