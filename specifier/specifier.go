/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier resolves import specifiers to source files on disk.
package specifier

import (
	"os"
	"strings"
)

// Kind indicates the syntactic class of a specifier.
type Kind int

const (
	// KindBare is a library-style reference ("lodash", "node/fs"),
	// resolved against the search path.
	KindBare Kind = iota
	// KindRelative starts with "." or "..".
	KindRelative
	// KindAbsolute starts with the root separator.
	KindAbsolute
)

// EnvVar is the environment variable holding the module search path,
// a list of directories separated by the platform's path list separator.
const EnvVar = "JSRUNPATH"

const (
	// sourceExt is the extension appended when probing for source files.
	sourceExt = ".js"
	// indexFile is the conventional entry file for directory specifiers.
	indexFile = "index.js"
)

// dirSep is the platform directory separator used when building candidates.
var dirSep = string(os.PathSeparator)

// Classify determines the kind of a specifier. The decision is purely
// syntactic and made once per resolution attempt; normalized specifiers
// are classified the same way as raw ones.
func Classify(spec string) Kind {
	switch {
	case strings.HasPrefix(spec, "."):
		return KindRelative
	case strings.HasPrefix(spec, "/"):
		return KindAbsolute
	default:
		return KindBare
	}
}

// Translate rewrites every ':' in a specifier to '/', so that scheme-like
// specifiers ("node:fs") degrade into nested bare paths ("node/fs") that
// the resolvers handle uniformly. The scheme name itself is not validated.
// Returns the input unchanged and false when it contains no colon.
func Translate(spec string) (string, bool) {
	if !strings.ContainsRune(spec, ':') {
		return spec, false
	}
	return strings.ReplaceAll(spec, ":", "/"), true
}
