// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Caffè Crème", "caffe-creme"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"UPPER_case.file", "uppercasefile"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"", ""},
		{"summer look 2026!", "summer-look-2026"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
