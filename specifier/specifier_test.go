/*
Copyright 2026 the jsrun authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Kind
	}{
		{"simple name", "lodash", KindBare},
		{"nested bare path", "lodash/debounce", KindBare},
		{"scoped package", "@scope/pkg", KindBare},
		{"translated scheme", "node/fs", KindBare},
		{"dot relative", "./util", KindRelative},
		{"parent relative", "../util", KindRelative},
		{"absolute", "/opt/lib/util", KindAbsolute},
		{"empty", "", KindBare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.spec); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    string
		changed bool
	}{
		{"scheme specifier", "node:fs", "node/fs", true},
		{"multiple colons", "a:b:c", "a/b/c", true},
		{"colon only", ":", "/", true},
		{"no colon", "lodash", "lodash", false},
		{"relative no colon", "./util", "./util", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Translate(tt.spec)
			if got != tt.want || changed != tt.changed {
				t.Errorf("Translate(%q) = (%q, %v), want (%q, %v)",
					tt.spec, got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestTranslate_DoesNotMutateInput(t *testing.T) {
	spec := "node:fs"
	if _, changed := Translate(spec); !changed {
		t.Fatal("expected translation")
	}
	if spec != "node:fs" {
		t.Errorf("input mutated: %q", spec)
	}
}
