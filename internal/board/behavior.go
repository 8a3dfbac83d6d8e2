// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package board

// walk visits the cells an insect of the given kind reaches from start in
// direction d, stopping at the board edge or when visit returns false.
func walk(start Position, k Kind, d Direction, size int, visit func(Position) bool) {
	cur := start
	for {
		for n := 0; n < k.Stride(); n++ {
			cur = cur.Step(d)
		}
		if !cur.Within(size) {
			return
		}
		if !visit(cur) {
			return
		}
	}
}

// VisibleValue sums the food an insect can see in direction d. The board is
// not modified.
func VisibleValue(ins *Insect, d Direction, b *Board) int {
	total := 0
	walk(ins.Position, ins.Kind, d, b.Size(), func(p Position) bool {
		if _, e, ok := b.Find(p); ok {
			if f, isFood := e.(*Food); isFood {
				total += f.Value
			}
		}
		return true
	})
	return total
}

// BestDirection returns the allowed direction with the largest visible
// value. Ties go to the direction evaluated first.
func BestDirection(ins *Insect, b *Board) Direction {
	dirs := ins.Kind.Directions()
	best := dirs[0]
	bestValue := VisibleValue(ins, best, b)
	for _, d := range dirs[1:] {
		if v := VisibleValue(ins, d, b); v > bestValue {
			best, bestValue = d, v
		}
	}
	return best
}

// Travel moves a scan cursor from the insect in direction d, eating every
// food point on the way, and returns the total eaten. It stops at the first
// insect of another color; insects of the same color are passed through.
func Travel(ins *Insect, d Direction, b *Board) int {
	gathered := 0
	walk(ins.Position, ins.Kind, d, b.Size(), func(p Position) bool {
		i, e, ok := b.Find(p)
		if !ok {
			return true
		}
		switch e := e.(type) {
		case *Food:
			gathered += e.Value
			b.Remove(i)
		case *Insect:
			if e.Color != ins.Color {
				return false
			}
		}
		return true
	})
	return gathered
}
