/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"

	jsfs "jsrun.dev/jsrun/fs"
)

// LocalResolver resolves specifiers directly against the filesystem:
// the specifier verbatim, then with the source extension appended, then as
// a directory with a conventional index file. It is the catch-all stage
// for relative and absolute specifiers, and for bare specifiers the search
// path could not satisfy.
type LocalResolver struct {
	fs jsfs.FileSystem
}

// NewLocalResolver creates a resolver for direct filesystem paths.
func NewLocalResolver(filesystem jsfs.FileSystem) *LocalResolver {
	return &LocalResolver{fs: filesystem}
}

// CanResolve returns true: local resolution applies to every specifier.
func (r *LocalResolver) CanResolve(string) bool {
	return true
}

// Resolve tries the three local strategies in order and stops at the first
// existing file. Resolving a path that already names an existing file
// returns that path unchanged.
func (r *LocalResolver) Resolve(spec string) (*ResolvedFile, error) {
	candidates := []string{
		spec,
		spec + sourceExt,
		spec + dirSep + indexFile,
	}
	if path, found := firstExisting(r.fs, candidates); found {
		return &ResolvedFile{
			Specifier: spec,
			Path:      path,
			Kind:      Classify(spec),
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, spec)
}
