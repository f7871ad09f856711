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

func TestLocalResolver_StrategyOrder(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		spec  string
		want  string
	}{
		{
			name:  "verbatim wins over extension",
			files: []string{"./bar", "./bar.js"},
			spec:  "./bar",
			want:  "./bar",
		},
		{
			name:  "extension appended",
			files: []string{"./bar.js"},
			spec:  "./bar",
			want:  "./bar.js",
		},
		{
			name:  "directory index",
			files: []string{"./bar/index.js"},
			spec:  "./bar",
			want:  "./bar/index.js",
		},
		{
			name:  "absolute specifier",
			files: []string{"/opt/lib/baz.js"},
			spec:  "/opt/lib/baz",
			want:  "/opt/lib/baz.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := mapfs.New()
			for _, f := range tt.files {
				mfs.AddFile(f, "export", 0644)
			}

			r := NewLocalResolver(mfs)
			rf, err := r.Resolve(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rf.Path != tt.want {
				t.Errorf("Path = %q, want %q", rf.Path, tt.want)
			}
		})
	}
}

func TestLocalResolver_Absence(t *testing.T) {
	r := NewLocalResolver(mapfs.New())

	_, err := r.Resolve("./bar")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLocalResolver_Idempotent(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("./lib/bar.js", "export", 0644)

	r := NewLocalResolver(mfs)
	rf, err := r.Resolve("./lib/bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := r.Resolve(rf.Path)
	if err != nil {
		t.Fatalf("unexpected error resolving resolved path: %v", err)
	}
	if again.Path != rf.Path {
		t.Errorf("re-resolution changed path: %q != %q", again.Path, rf.Path)
	}
}

func TestLocalResolver_CanResolve(t *testing.T) {
	r := NewLocalResolver(mapfs.New())

	for _, spec := range []string{"./bar", "/opt/bar", "bare", ""} {
		if !r.CanResolve(spec) {
			t.Errorf("expected CanResolve(%q) to return true", spec)
		}
	}
}
