// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package board

// Entity is anything placed on the board. The set of implementations is
// closed: *Food and *Insect.
type Entity interface {
	Pos() Position
	entity()
}

// Food is a one-time source of value. It disappears when an insect travels
// over it.
type Food struct {
	Position Position
	Value    int
}

// Pos returns the cell the food occupies.
func (f *Food) Pos() Position { return f.Position }

func (*Food) entity() {}

// Insect is a colored creature of a given kind. Its position never changes
// in the store; travel only advances a scan cursor.
type Insect struct {
	Position Position
	Kind     Kind
	Color    Color
}

// Pos returns the cell the insect occupies.
func (i *Insect) Pos() Position { return i.Position }

func (*Insect) entity() {}

// Name is the "<Color> <Kind>" pair that identifies an insect on a board.
func (i *Insect) Name() string {
	return i.Color.String() + " " + i.Kind.String()
}
