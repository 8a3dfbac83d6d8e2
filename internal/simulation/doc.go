// Package simulation drives a single insect-board run: it loads a scenario
// from a Source while validating it, then gives every insect exactly one turn
// in load order and records the outcome of each turn as an Elimination.
//
// The run is strictly sequential. An insect's travel consumes food from the
// shared board, so later insects see the board as earlier turns left it;
// turn order is load order, never position or color order.
package simulation
