/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides the filesystem abstraction for jsrun.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem is the read-only filesystem surface jsrun needs: existence
// probing and reads. Module resolution never writes or lists beyond what
// the engine's own builtins expose.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(name string) ([]byte, error)

	// Stat returns file information for the named path.
	Stat(name string) (fs.FileInfo, error)

	// Exists returns true if the path exists.
	Exists(path string) bool

	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// ReadDir reads the named directory and returns its entries.
	ReadDir(name string) ([]fs.DirEntry, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a filesystem backed by the host OS.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Stat returns file information for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists returns true if the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Open opens the named file for reading.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadDir reads the named directory and returns its entries.
func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}
