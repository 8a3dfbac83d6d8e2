package simulation

import (
	"context"
	"fmt"

	"github.com/specialistvlad/insectgrid/internal/board"
	"github.com/specialistvlad/insectgrid/internal/ctxlog"
)

// Load reads a scenario from src and builds its board. Checks run in reading
// order and the first failure aborts the load.
func Load(ctx context.Context, src Source, limits Limits) (*board.Board, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.")

	size, err := src.BoardSize()
	if err != nil {
		return nil, err
	}
	if size < limits.MinBoardSize || size > limits.MaxBoardSize {
		return nil, Reject(InvalidBoardSize, "%d not in %d..%d", size, limits.MinBoardSize, limits.MaxBoardSize)
	}

	insects, err := src.InsectCount()
	if err != nil {
		return nil, err
	}
	if insects < limits.MinInsects || insects > limits.MaxInsects {
		return nil, Reject(InvalidInsectCount, "%d not in %d..%d", insects, limits.MinInsects, limits.MaxInsects)
	}

	foods, err := src.FoodCount()
	if err != nil {
		return nil, err
	}
	if foods < limits.MinFood || foods > limits.MaxFood {
		return nil, Reject(InvalidFoodCount, "%d not in %d..%d", foods, limits.MinFood, limits.MaxFood)
	}
	logger.Debug("Scenario header accepted.", "board_size", size, "insects", insects, "food", foods)

	b := board.New(size)
	for i := 0; i < insects; i++ {
		rec, err := src.NextInsect()
		if err != nil {
			return nil, fmt.Errorf("insect %d: %w", i+1, partialInsectError(rec, err))
		}
		ins, err := newInsect(rec, size)
		if err != nil {
			return nil, fmt.Errorf("insect %d: %w", i+1, err)
		}
		if _, err := b.Add(ins); err != nil {
			return nil, err
		}
	}

	for i := 0; i < foods; i++ {
		rec, err := src.NextFood()
		if err != nil {
			return nil, err
		}
		food, err := newFood(rec, size)
		if err != nil {
			return nil, fmt.Errorf("food %d: %w", i+1, err)
		}
		if _, err := b.Add(food); err != nil {
			return nil, err
		}
	}

	if err := checkDuplicateInsects(b); err != nil {
		return nil, err
	}
	if err := checkOverlaps(b); err != nil {
		return nil, err
	}

	logger.Debug("Scenario loaded.", "entities", b.Len())
	return b, nil
}

func newInsect(rec InsectRecord, size int) (*board.Insect, error) {
	color, ok := board.ParseColor(rec.Color)
	if !ok {
		return nil, Reject(InvalidInsectColor, "%q", rec.Color)
	}
	kind, ok := board.ParseKind(rec.Kind)
	if !ok {
		return nil, Reject(InvalidInsectKind, "%q", rec.Kind)
	}
	pos := board.Position{X: rec.Column, Y: rec.Row}
	if !pos.Within(size) {
		return nil, Reject(InvalidEntityPosition, "%s outside 1..%d", pos, size)
	}
	return &board.Insect{Position: pos, Kind: kind, Color: color}, nil
}

// partialInsectError picks the error for an insect record that could not be
// read completely. Fields are checked in reading order, so a bad color or
// kind that was read before the failure is reported instead of readErr.
func partialInsectError(rec InsectRecord, readErr error) error {
	if rec.Color == "" {
		return readErr
	}
	if _, ok := board.ParseColor(rec.Color); !ok {
		return Reject(InvalidInsectColor, "%q", rec.Color)
	}
	if rec.Kind == "" {
		return readErr
	}
	if _, ok := board.ParseKind(rec.Kind); !ok {
		return Reject(InvalidInsectKind, "%q", rec.Kind)
	}
	return readErr
}

func newFood(rec FoodRecord, size int) (*board.Food, error) {
	pos := board.Position{X: rec.Column, Y: rec.Row}
	if !pos.Within(size) {
		return nil, Reject(InvalidEntityPosition, "%s outside 1..%d", pos, size)
	}
	if rec.Value < 1 {
		return nil, Reject(InvalidFoodValue, "%d at %s", rec.Value, pos)
	}
	return &board.Food{Position: pos, Value: rec.Value}, nil
}

// checkDuplicateInsects rejects two insects sharing both kind and color.
func checkDuplicateInsects(b *board.Board) error {
	type identity struct {
		kind  board.Kind
		color board.Color
	}
	seen := make(map[identity]struct{}, b.InsectCount())
	for i := 0; i < b.InsectCount(); i++ {
		e, ok := b.At(i)
		if !ok {
			continue
		}
		ins := e.(*board.Insect)
		id := identity{ins.Kind, ins.Color}
		if _, dup := seen[id]; dup {
			return Reject(DuplicateInsect, "%s", ins.Name())
		}
		seen[id] = struct{}{}
	}
	return nil
}

// checkOverlaps rejects any two entities on the same cell, whatever their
// types.
func checkOverlaps(b *board.Board) error {
	seen := make(map[board.Position]int, b.Len())
	var err error
	b.Each(func(i int, e board.Entity) bool {
		if first, taken := seen[e.Pos()]; taken {
			err = Reject(OverlappingPosition, "entities %d and %d at %s", first, i, e.Pos())
			return false
		}
		seen[e.Pos()] = i
		return true
	})
	return err
}
