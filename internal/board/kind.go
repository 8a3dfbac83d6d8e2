// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package board

import "strings"

// Kind is an insect species.
type Kind int

const (
	Grasshopper Kind = iota
	Butterfly
	Ant
	Spider
)

// capability describes how a kind moves. Directions are evaluated in the
// listed order; stride is the number of cells covered per step.
type capability struct {
	name       string
	directions []Direction
	stride     int
}

var capabilities = [...]capability{
	Grasshopper: {name: "Grasshopper", directions: Orthogonal, stride: 2},
	Butterfly:   {name: "Butterfly", directions: Orthogonal, stride: 1},
	Ant:         {name: "Ant", directions: All, stride: 1},
	Spider:      {name: "Spider", directions: Diagonal, stride: 1},
}

// ParseKind converts a case-insensitive token such as "ant" or "Spider".
func ParseKind(token string) (Kind, bool) {
	for k, c := range capabilities {
		if strings.EqualFold(token, c.name) {
			return Kind(k), true
		}
	}
	return 0, false
}

// Directions returns the directions this kind may scan and travel, in
// tie-break order. The returned slice must not be modified.
func (k Kind) Directions() []Direction {
	return capabilities[k].directions
}

// Stride returns how many cells the kind advances per step.
func (k Kind) Stride() int {
	return capabilities[k].stride
}

func (k Kind) String() string {
	if k < Grasshopper || k > Spider {
		return "Unknown"
	}
	return capabilities[k].name
}
