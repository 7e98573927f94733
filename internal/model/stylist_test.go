// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpecialties(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "cuts,colour,styling", []string{"cuts", "colour", "styling"}},
		{"whitespace trimmed", "cuts, colour,  styling ", []string{"cuts", "colour", "styling"}},
		{"empty segments dropped", "cuts,,colour,", []string{"cuts", "colour"}},
		{"single value", "balayage", []string{"balayage"}},
		{"empty string", "", nil},
		{"only whitespace", "   ", nil},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSpecialties(tt.input))
		})
	}
}

func TestSpecialtiesRoundTrip(t *testing.T) {
	s := Stylist{Specialties: ParseSpecialties("cuts, colour,  styling")}
	assert.Equal(t, "cuts, colour, styling", s.SpecialtiesText())

	// A second round trip is stable.
	assert.Equal(t, s.Specialties, ParseSpecialties(s.SpecialtiesText()))
}

func TestSpecialtiesText_Empty(t *testing.T) {
	s := Stylist{}
	assert.Equal(t, "", s.SpecialtiesText())
}
