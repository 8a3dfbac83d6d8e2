// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package board holds the in-memory model of an insect board: positions,
// compass directions, the entities placed on the board and the arena that
// stores them.
//
// # Core Concepts
//
//   - Board: an arena of entity slots indexed by insertion order. Removing an
//     entity leaves a tombstone, so an index always names the same entity for
//     the lifetime of the board and iteration order equals load order.
//
//   - Entity: a sealed union of *Food and *Insect. Consumers switch on the
//     concrete type.
//
//   - Kind: the insect species. Each kind has a fixed entry in a capability
//     table describing which directions it may use and how many cells it
//     covers per step.
//
// Scans (VisibleValue) never mutate the board. Travel consumes food and is
// the only operation besides Remove that changes board contents.
package board
