package simulation

import (
	"context"
	"fmt"

	"github.com/specialistvlad/insectgrid/internal/board"
	"github.com/specialistvlad/insectgrid/internal/ctxlog"
)

// Elimination is the outcome of one insect's turn.
type Elimination struct {
	Color     board.Color
	Kind      board.Kind
	Direction board.Direction
	Gathered  int
}

// String formats the result line, e.g. "Red Ant North-East 12".
func (e Elimination) String() string {
	return fmt.Sprintf("%s %s %s %d", e.Color, e.Kind, e.Direction.Label(), e.Gathered)
}

// Turn is what observers see after an insect has been eliminated. Board
// reflects the state after the removal and must be treated as read-only.
type Turn struct {
	Number      int
	Insect      *board.Insect
	Elimination Elimination
	Board       *board.Board
}

// Observer is notified after every turn, in turn order.
type Observer interface {
	ObserveTurn(ctx context.Context, turn Turn)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, turn Turn)

// ObserveTurn calls f.
func (f ObserverFunc) ObserveTurn(ctx context.Context, turn Turn) {
	f(ctx, turn)
}

// Run gives every loaded insect one turn in load order: pick the best
// direction, travel, leave the board. It returns one Elimination per insect.
func Run(ctx context.Context, b *board.Board, observers ...Observer) []Elimination {
	logger := ctxlog.FromContext(ctx)
	count := b.InsectCount()
	results := make([]Elimination, 0, count)
	logger.Debug("Simulation started.", "insects", count)

	for i := 0; i < count; i++ {
		e, ok := b.At(i)
		if !ok {
			continue
		}
		ins, ok := e.(*board.Insect)
		if !ok {
			continue
		}

		dir := board.BestDirection(ins, b)
		gathered := board.Travel(ins, dir, b)
		b.Remove(i)

		rec := Elimination{
			Color:     ins.Color,
			Kind:      ins.Kind,
			Direction: dir,
			Gathered:  gathered,
		}
		results = append(results, rec)
		logger.Debug("Insect eliminated.", "turn", i+1, "insect", ins.Name(), "position", ins.Position.String(), "direction", dir.Label(), "gathered", gathered)

		turn := Turn{Number: i + 1, Insect: ins, Elimination: rec, Board: b}
		for _, o := range observers {
			o.ObserveTurn(ctx, turn)
		}
	}

	logger.Debug("Simulation finished.", "eliminations", len(results), "remaining_entities", b.Live())
	return results
}
