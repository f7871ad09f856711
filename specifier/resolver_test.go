/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"testing"

	"jsrun.dev/jsrun/internal/mapfs"
)

func newChain(mfs *mapfs.MapFileSystem, lookup LookupEnv) *ChainResolver {
	return NewChainResolver(
		NewSearchPathResolver(mfs, lookup),
		NewLocalResolver(mfs),
	)
}

func TestChainResolver_SearchPathBeforeLocal(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("./mods/util.js", "from search path", 0644)
	mfs.AddFile("./util.js", "from cwd", 0644)

	rf, err := newChain(mfs, env("./mods")).Resolve("util")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rf.Path != "./mods/util.js" {
		t.Errorf("Path = %q, want search path hit %q", rf.Path, "./mods/util.js")
	}
}

func TestChainResolver_BareFallsThroughToLocal(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("./lib/util.js", "export", 0644)

	// Search path is set but has no match, so the bare specifier falls
	// through to local resolution.
	rf, err := newChain(mfs, env("./empty")).Resolve("lib/util")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rf.Path != "lib/util.js" {
		t.Errorf("Path = %q, want %q", rf.Path, "lib/util.js")
	}
}

func TestChainResolver_RelativeSkipsSearchPath(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("./bar.js", "export", 0644)

	panicking := func(string) (string, bool) {
		panic("search path consulted for relative specifier")
	}

	rf, err := newChain(mfs, panicking).Resolve("./bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rf.Path != "./bar.js" {
		t.Errorf("Path = %q, want %q", rf.Path, "./bar.js")
	}
}

func TestChainResolver_AllAbsent(t *testing.T) {
	_, err := newChain(mapfs.New(), unsetEnv).Resolve("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
