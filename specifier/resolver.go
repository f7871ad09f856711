/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"fmt"

	jsfs "jsrun.dev/jsrun/fs"
)

// ErrNotFound signals that no resolution stage produced a path. It is an
// absence, not a fault: callers treat it as "try the next stage", and only
// the final loading step turns it into a module-load error.
var ErrNotFound = errors.New("module not found")

// ResolvedFile preserves both the original specifier and the resolved
// filesystem path.
type ResolvedFile struct {
	// Specifier is the specifier as handed to the resolver
	// (e.g. "node/fs" after translation).
	Specifier string

	// Path is the verified filesystem path (e.g. "./lib/node/fs.js").
	Path string

	// Kind is the syntactic class of the specifier.
	Kind Kind
}

// Resolver resolves specifiers to filesystem paths.
type Resolver interface {
	// Resolve resolves a specifier to a ResolvedFile.
	// Returns an error wrapping ErrNotFound when nothing matched.
	Resolve(spec string) (*ResolvedFile, error)

	// CanResolve returns true if this resolver applies to the specifier.
	CanResolve(spec string) bool
}

// ChainResolver tries multiple resolvers in order. The first path produced
// wins; a resolver signalling absence hands the specifier to the next one.
type ChainResolver struct {
	resolvers []Resolver
}

// NewChainResolver creates a resolver that tries each resolver in order.
func NewChainResolver(resolvers ...Resolver) *ChainResolver {
	return &ChainResolver{resolvers: resolvers}
}

// Resolve returns the first non-absent result. Results are never merged:
// exactly one resolver's answer becomes the outcome.
func (c *ChainResolver) Resolve(spec string) (*ResolvedFile, error) {
	for _, r := range c.resolvers {
		if !r.CanResolve(spec) {
			continue
		}
		rf, err := r.Resolve(spec)
		if err == nil {
			return rf, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, spec)
}

// CanResolve returns true if any resolver in the chain applies.
func (c *ChainResolver) CanResolve(spec string) bool {
	for _, r := range c.resolvers {
		if r.CanResolve(spec) {
			return true
		}
	}
	return false
}

// fileExists reports whether path names an existing, readable, regular
// file. Directories and special files are never acceptable candidates.
func fileExists(fsys jsfs.FileSystem, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := fsys.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// firstExisting consumes a candidate sequence and returns the first
// existing file, if any.
func firstExisting(fsys jsfs.FileSystem, candidates []string) (string, bool) {
	for _, c := range candidates {
		if fileExists(fsys, c) {
			return c, true
		}
	}
	return "", false
}
