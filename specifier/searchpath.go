/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsfs "jsrun.dev/jsrun/fs"
)

// LookupEnv is the environment probe used by SearchPathResolver. Injecting
// it keeps the resolver free of hidden process state and lets tests run
// against a simulated environment.
type LookupEnv func(key string) (string, bool)

// SearchPathResolver resolves bare specifiers against the ordered list of
// directories named by the search path environment variable.
//
// The variable is re-read on every call rather than cached, so resolution
// always reflects the current environment.
type SearchPathResolver struct {
	fs     jsfs.FileSystem
	lookup LookupEnv
	envVar string
}

// NewSearchPathResolver creates a resolver for bare specifiers. A nil
// lookup falls back to the process environment.
func NewSearchPathResolver(filesystem jsfs.FileSystem, lookup LookupEnv) *SearchPathResolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &SearchPathResolver{
		fs:     filesystem,
		lookup: lookup,
		envVar: EnvVar,
	}
}

// CanResolve returns true for bare specifiers.
func (r *SearchPathResolver) CanResolve(spec string) bool {
	return Classify(spec) == KindBare
}

// Resolve walks the search path directories in order. For each directory
// the candidates <dir>/<spec>/index.js, <dir>/<spec>.js and <dir>/<spec>
// are probed in that fixed order; the first existing file wins overall and
// no further directories are tried.
//
// An unset search path variable is an absence, not an error, and the
// filesystem is never touched in that case.
func (r *SearchPathResolver) Resolve(spec string) (*ResolvedFile, error) {
	paths, ok := r.lookup(r.envVar)
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s is unset)", ErrNotFound, spec, r.envVar)
	}

	for _, dir := range filepath.SplitList(paths) {
		// Empty segments are tolerated but never match; without this
		// they would anchor candidates at the filesystem root.
		if dir == "" {
			continue
		}
		if path, found := firstExisting(r.fs, searchCandidates(dir, spec)); found {
			return &ResolvedFile{
				Specifier: spec,
				Path:      path,
				Kind:      KindBare,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %s (searched %s)", ErrNotFound, spec, r.envVar)
}

// searchCandidates builds the fixed-priority candidate list for one search
// directory. A single trailing separator on the directory is stripped so
// concatenation never doubles separators.
func searchCandidates(dir, spec string) []string {
	if len(dir) > 0 && strings.ContainsAny(dir[len(dir)-1:], `/\`) {
		dir = dir[:len(dir)-1]
	}
	base := dir + dirSep + spec
	return []string{
		base + dirSep + indexFile,
		base + sourceExt,
		base,
	}
}
