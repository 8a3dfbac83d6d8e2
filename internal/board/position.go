// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package board

import "fmt"

// Position is a 1-based cell coordinate. Y is the row, X is the column.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	v := d.Vector()
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Within reports whether p lies on a board of the given side length.
func (p Position) Within(size int) bool {
	return p.X >= 1 && p.Y >= 1 && p.X <= size && p.Y <= size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
