/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package engine

import (
	jsfs "jsrun.dev/jsrun/fs"
	"jsrun.dev/jsrun/specifier"
)

// Loader is the glue between the engine's import hook and the specifier
// resolvers. It normalizes the raw specifier, then runs the resolution
// chain: search path for bare specifiers, local filesystem strategies for
// everything else (and for bare specifiers the search path missed).
type Loader struct {
	chain *specifier.ChainResolver
}

// NewLoader builds the resolution chain over the given filesystem and
// environment lookup.
func NewLoader(filesystem jsfs.FileSystem, lookup specifier.LookupEnv) *Loader {
	return &Loader{
		chain: specifier.NewChainResolver(
			specifier.NewSearchPathResolver(filesystem, lookup),
			specifier.NewLocalResolver(filesystem),
		),
	}
}

// Resolve maps an import specifier to a concrete file path. The normalized
// name is returned alongside the result so that on absence the caller can
// hand the engine's native loader the same name the chain saw. The error
// is specifier.ErrNotFound when no stage produced a path.
func (l *Loader) Resolve(spec string) (name string, path string, err error) {
	name = spec
	if translated, ok := specifier.Translate(spec); ok {
		name = translated
	}

	rf, err := l.chain.Resolve(name)
	if err != nil {
		return name, "", err
	}
	return name, rf.Path, nil
}
