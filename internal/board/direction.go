// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package board

// Direction is one of the eight compass directions. The declaration order is
// the evaluation order used for tie-breaking.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// Vector is a unit step between neighbouring cells.
type Vector struct {
	X, Y int
}

type directionInfo struct {
	label  string
	vector Vector
}

var directions = [...]directionInfo{
	North:     {"North", Vector{0, -1}},
	East:      {"East", Vector{1, 0}},
	South:     {"South", Vector{0, 1}},
	West:      {"West", Vector{-1, 0}},
	NorthEast: {"North-East", Vector{1, -1}},
	SouthEast: {"South-East", Vector{1, 1}},
	SouthWest: {"South-West", Vector{-1, 1}},
	NorthWest: {"North-West", Vector{-1, -1}},
}

var (
	// Orthogonal lists the four axis-aligned directions in evaluation order.
	Orthogonal = []Direction{North, East, South, West}
	// Diagonal lists the four diagonal directions in evaluation order.
	Diagonal = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	// All lists every direction in evaluation order.
	All = []Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
)

// Vector returns the step vector of d.
func (d Direction) Vector() Vector {
	if !d.valid() {
		return Vector{}
	}
	return directions[d].vector
}

// Label returns the human-readable name used in result lines, e.g. "North-East".
func (d Direction) Label() string {
	if !d.valid() {
		return "Unknown"
	}
	return directions[d].label
}

func (d Direction) String() string {
	return d.Label()
}

func (d Direction) valid() bool {
	return d >= North && d <= NorthWest
}
