package simulation

import "fmt"

// Limits bounds the size of a scenario. All ranges are inclusive.
type Limits struct {
	MinBoardSize int
	MaxBoardSize int
	MinInsects   int
	MaxInsects   int
	MinFood      int
	MaxFood      int
}

// DefaultLimits returns the standard bounds: board 4..1000, 1..16 insects,
// 1..200 food points.
func DefaultLimits() Limits {
	return Limits{
		MinBoardSize: 4,
		MaxBoardSize: 1000,
		MinInsects:   1,
		MaxInsects:   16,
		MinFood:      1,
		MaxFood:      200,
	}
}

// Validate checks that every range is non-empty and starts above zero.
func (l Limits) Validate() error {
	ranges := []struct {
		name     string
		min, max int
	}{
		{"board size", l.MinBoardSize, l.MaxBoardSize},
		{"insects", l.MinInsects, l.MaxInsects},
		{"food", l.MinFood, l.MaxFood},
	}
	for _, r := range ranges {
		if r.min < 1 || r.max < r.min {
			return fmt.Errorf("invalid %s limits: %d..%d", r.name, r.min, r.max)
		}
	}
	return nil
}
