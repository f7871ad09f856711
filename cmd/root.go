/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for jsrun.
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"jsrun.dev/jsrun/cmd/eval"
	"jsrun.dev/jsrun/cmd/repl"
	"jsrun.dev/jsrun/cmd/run"
	"jsrun.dev/jsrun/cmd/version"
	"jsrun.dev/jsrun/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "jsrun",
	Short: "Run JavaScript with JSRUNPATH module resolution",
	Long: `jsrun embeds a JavaScript engine and resolves bare imports Node.js-style
against the directories listed in the JSRUNPATH environment variable.

Example: JSRUNPATH=./my_modules:./lib jsrun run script.js`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress warnings and diagnostics")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			logger.SetOutput(io.Discard)
		}
	}

	rootCmd.AddCommand(run.Cmd)
	rootCmd.AddCommand(eval.Cmd)
	rootCmd.AddCommand(repl.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
