// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package board

import "strings"

// Color identifies the team an insect belongs to. Insects of the same color
// pass through each other; a different color blocks travel.
type Color int

const (
	Red Color = iota
	Green
	Blue
	Yellow
)

var colorNames = [...]string{
	Red:    "Red",
	Green:  "Green",
	Blue:   "Blue",
	Yellow: "Yellow",
}

// ParseColor converts a case-insensitive token such as "red" or "YELLOW".
func ParseColor(token string) (Color, bool) {
	for c, name := range colorNames {
		if strings.EqualFold(token, name) {
			return Color(c), true
		}
	}
	return 0, false
}

func (c Color) String() string {
	if c < Red || c > Yellow {
		return "Unknown"
	}
	return colorNames[c]
}
