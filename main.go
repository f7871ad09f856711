/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command jsrun runs JavaScript with JSRUNPATH module resolution.
package main

import (
	"os"

	"jsrun.dev/jsrun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
