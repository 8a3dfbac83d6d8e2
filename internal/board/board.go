// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Removal clears a slot and never compacts: an insect keeps its index for
// the whole run, and indices are never reused.

package board

import "errors"

// ErrInsectAfterFood is returned by Add when an insect is added once any
// food has been placed. Insects always occupy the leading index range.
var ErrInsectAfterFood = errors.New("insect added after food")

// Board is the index-keyed entity store of a single run.
type Board struct {
	size      int
	slots     []Entity
	firstFood int
	live      int
}

// New creates an empty board with the given side length.
func New(size int) *Board {
	return &Board{size: size, firstFood: -1}
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Add appends e at the next free index and returns that index.
func (b *Board) Add(e Entity) (int, error) {
	switch e.(type) {
	case *Food:
		if b.firstFood == -1 {
			b.firstFood = len(b.slots)
		}
	case *Insect:
		if b.firstFood != -1 {
			return -1, ErrInsectAfterFood
		}
	}
	b.slots = append(b.slots, e)
	b.live++
	return len(b.slots) - 1, nil
}

// At returns the entity stored at index, or false if the index was never
// used or has been removed.
func (b *Board) At(index int) (Entity, bool) {
	if index < 0 || index >= len(b.slots) || b.slots[index] == nil {
		return nil, false
	}
	return b.slots[index], true
}

// Find returns the first live entity at pos together with its index.
func (b *Board) Find(pos Position) (int, Entity, bool) {
	for i, e := range b.slots {
		if e != nil && e.Pos() == pos {
			return i, e, true
		}
	}
	return -1, nil, false
}

// Remove clears the slot at index. Removing an empty slot is a no-op.
func (b *Board) Remove(index int) {
	if index < 0 || index >= len(b.slots) || b.slots[index] == nil {
		return
	}
	b.slots[index] = nil
	b.live--
}

// RemoveAt clears the first live entity at pos and reports whether one was
// found.
func (b *Board) RemoveAt(pos Position) bool {
	i, _, ok := b.Find(pos)
	if ok {
		b.Remove(i)
	}
	return ok
}

// InsectCount returns the size of the insect index range. Indices
// [0, InsectCount()) held insects at load time.
func (b *Board) InsectCount() int {
	if b.firstFood == -1 {
		return len(b.slots)
	}
	return b.firstFood
}

// LastInsectIndex returns the index of the last loaded insect, or -1.
func (b *Board) LastInsectIndex() int {
	return b.InsectCount() - 1
}

// Len returns the number of slots ever used, including removed ones.
func (b *Board) Len() int {
	return len(b.slots)
}

// Live returns the number of entities still on the board.
func (b *Board) Live() int {
	return b.live
}

// Each calls fn for every live entity in index order until fn returns false.
func (b *Board) Each(fn func(index int, e Entity) bool) {
	for i, e := range b.slots {
		if e == nil {
			continue
		}
		if !fn(i, e) {
			return
		}
	}
}
