// Package scenario reads insect-board scenarios and exposes them as a
// simulation.Source.
//
// Two formats are supported:
//
//   - Text (any extension other than .hcl): whitespace separated tokens.
//     The board size, the insect and food counts, then one
//     "<color> <kind> <row> <column>" group per insect and one
//     "<value> <row> <column>" group per food point.
//
//   - HCL (.hcl): a board block, one insect block per insect labelled with
//     its color and kind, and one food block per food point. Coordinates
//     and values are expressions and may refer to the board side length as
//     `size`.
//
//	board {
//	  size = 8
//	}
//
//	insect "red" "ant" {
//	  row    = 1
//	  column = 1
//	}
//
//	food {
//	  value  = 5
//	  row    = size
//	  column = size - 1
//	}
package scenario
