/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsrun.dev/jsrun/internal/mapfs"
	"jsrun.dev/jsrun/specifier"
)

func searchPath(value string) specifier.LookupEnv {
	return func(key string) (string, bool) {
		if key == specifier.EnvVar {
			return value, true
		}
		return "", false
	}
}

func TestLoader_TranslatesSchemeSpecifiers(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("./mods/node/fs.js", "export", 0644)

	loader := NewLoader(mfs, searchPath("./mods"))
	name, path, err := loader.Resolve("node:fs")
	require.NoError(t, err)
	require.Equal(t, "node/fs", name)
	require.Equal(t, "./mods/node/fs.js", path)
}

func TestLoader_AbsenceKeepsNormalizedName(t *testing.T) {
	loader := NewLoader(mapfs.New(), searchPath(""))

	name, path, err := loader.Resolve("node:missing")
	require.ErrorIs(t, err, specifier.ErrNotFound)
	require.Equal(t, "node/missing", name)
	require.Empty(t, path)
}

func TestLoader_RelativeSpecifier(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("./bar/index.js", "export", 0644)

	loader := NewLoader(mfs, searchPath(""))
	_, path, err := loader.Resolve("./bar")
	require.NoError(t, err)
	require.Equal(t, "./bar/index.js", path)
}
