/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package run

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	jsfs "jsrun.dev/jsrun/fs"
	"jsrun.dev/jsrun/internal/logger"
)

func TestExpandIncludes(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	dir := t.TempDir()
	for _, name := range []string{"a.js", "b.js", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("// include"), 0644))
	}

	files, err := expandIncludes([]string{filepath.Join(dir, "*.js")})
	require.NoError(t, err)
	require.Len(t, files, 2)

	// A pattern with no matches is tolerated.
	files, err = expandIncludes([]string{filepath.Join(dir, "missing", "**", "*.js")})
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestExpandIncludes_BadPattern(t *testing.T) {
	_, err := expandIncludes([]string{"["})
	require.Error(t, err)
}

func TestJob_IncludesSeeGlobals(t *testing.T) {
	dir := t.TempDir()
	include := filepath.Join(dir, "prelude.js")
	script := filepath.Join(dir, "main.js")
	require.NoError(t, os.WriteFile(include,
		[]byte("std.puts('inc:' + scriptArgs.length + '\\n');"), 0644))
	require.NoError(t, os.WriteFile(script,
		[]byte("std.puts('main\\n');"), 0644))

	var out bytes.Buffer
	j := &job{
		filesystem: jsfs.NewOSFileSystem(),
		lookup:     func(string) (string, bool) { return "", false },
		includes:   []string{include},
		std:        true,
		script:     script,
		args:       []string{"one"},
		stdout:     &out,
	}
	require.NoError(t, j.execute())
	require.Equal(t, "inc:1\nmain\n", out.String())
}
