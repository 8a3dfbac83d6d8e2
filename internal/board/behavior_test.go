package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// place builds a board from the given entities, insects first.
func place(t *testing.T, size int, entities ...Entity) *Board {
	t.Helper()
	b := New(size)
	for _, e := range entities {
		_, err := b.Add(e)
		require.NoError(t, err)
	}
	return b
}

func TestVisibleValue_SumsFoodToEdge(t *testing.T) {
	ant := &Insect{Position: Position{1, 5}, Kind: Ant, Color: Red}
	b := place(t, 5, ant,
		&Food{Position: Position{1, 3}, Value: 2},
		&Food{Position: Position{1, 1}, Value: 7},
		&Food{Position: Position{2, 5}, Value: 1},
	)

	assert.Equal(t, 9, VisibleValue(ant, North, b))
	assert.Equal(t, 1, VisibleValue(ant, East, b))
	assert.Equal(t, 0, VisibleValue(ant, South, b))
	assert.Equal(t, 3, b.Live(), "scanning must not consume food")
}

func TestVisibleValue_GrasshopperSkipsCells(t *testing.T) {
	hopper := &Insect{Position: Position{1, 1}, Kind: Grasshopper, Color: Red}
	butterfly := &Insect{Position: Position{1, 2}, Kind: Butterfly, Color: Red}
	b := place(t, 6, hopper, butterfly,
		// Row 1: odd offsets from the hopper (x=2, 4, 6 are reached; x=3, 5 are jumped).
		&Food{Position: Position{2, 1}, Value: 1},
		&Food{Position: Position{3, 1}, Value: 10},
		&Food{Position: Position{5, 1}, Value: 100},
		// Row 2: same layout for the butterfly.
		&Food{Position: Position{2, 2}, Value: 1},
		&Food{Position: Position{3, 2}, Value: 10},
		&Food{Position: Position{5, 2}, Value: 100},
	)

	assert.Equal(t, 110, VisibleValue(hopper, East, b), "hopper lands on x=3 and x=5 only")
	assert.Equal(t, 111, VisibleValue(butterfly, East, b))
}

func TestBestDirection_TieBreaksToNorth(t *testing.T) {
	b := New(5)
	butterfly := &Insect{Position: Position{3, 3}, Kind: Butterfly, Color: Green}
	_, err := b.Add(butterfly)
	require.NoError(t, err)

	assert.Equal(t, North, BestDirection(butterfly, b))
}

func TestBestDirection_TieBreaksInEnumerationOrder(t *testing.T) {
	ant := &Insect{Position: Position{3, 3}, Kind: Ant, Color: Red}
	b := place(t, 5, ant,
		&Food{Position: Position{1, 3}, Value: 4}, // West
		&Food{Position: Position{5, 5}, Value: 4}, // South-East
	)

	assert.Equal(t, West, BestDirection(ant, b))
}

func TestBestDirection_RespectsKindCapabilities(t *testing.T) {
	testCases := []struct {
		name string
		kind Kind
		want Direction
	}{
		{"spider ignores orthogonal food", Spider, SouthWest},
		{"butterfly ignores diagonal food", Butterfly, East},
		{"ant sees everything", Ant, SouthWest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ins := &Insect{Position: Position{3, 3}, Kind: tc.kind, Color: Red}
			b := place(t, 5, ins,
				&Food{Position: Position{5, 3}, Value: 5}, // East
				&Food{Position: Position{1, 5}, Value: 9}, // South-West
				&Food{Position: Position{5, 1}, Value: 2}, // North-East
			)
			assert.Equal(t, tc.want, BestDirection(ins, b))
		})
	}
}

func TestTravel_ConsumesFood(t *testing.T) {
	ant := &Insect{Position: Position{1, 1}, Kind: Ant, Color: Red}
	b := place(t, 4, ant,
		&Food{Position: Position{2, 2}, Value: 3},
		&Food{Position: Position{4, 4}, Value: 5},
	)

	got := Travel(ant, SouthEast, b)

	assert.Equal(t, 8, got)
	assert.Equal(t, 1, b.Live())
	assert.Equal(t, 0, VisibleValue(ant, SouthEast, b))
	e, ok := b.At(0)
	require.True(t, ok)
	assert.Equal(t, Position{1, 1}, e.Pos(), "the traveller's own slot does not move")
}

func TestTravel_StopsAtEnemy(t *testing.T) {
	ant := &Insect{Position: Position{1, 1}, Kind: Ant, Color: Red}
	enemy := &Insect{Position: Position{3, 1}, Kind: Spider, Color: Blue}
	b := place(t, 5, ant, enemy,
		&Food{Position: Position{2, 1}, Value: 2},
		&Food{Position: Position{3, 2}, Value: 100},
		&Food{Position: Position{4, 1}, Value: 7},
	)

	assert.Equal(t, 2, Travel(ant, East, b))
	_, _, ok := b.Find(Position{4, 1})
	assert.True(t, ok, "food behind the enemy must survive")
}

func TestTravel_PassesSameColor(t *testing.T) {
	ant := &Insect{Position: Position{1, 1}, Kind: Ant, Color: Red}
	friend := &Insect{Position: Position{3, 1}, Kind: Spider, Color: Red}
	b := place(t, 5, ant, friend,
		&Food{Position: Position{2, 1}, Value: 2},
		&Food{Position: Position{4, 1}, Value: 7},
	)

	assert.Equal(t, 9, Travel(ant, East, b))
	_, _, ok := b.Find(Position{3, 1})
	assert.True(t, ok, "friendly insect is left untouched")
}

func TestTravel_GrasshopperJumpsOverEnemy(t *testing.T) {
	hopper := &Insect{Position: Position{1, 1}, Kind: Grasshopper, Color: Red}
	enemy := &Insect{Position: Position{2, 1}, Kind: Ant, Color: Green}
	b := place(t, 5, hopper, enemy,
		&Food{Position: Position{3, 1}, Value: 4},
		&Food{Position: Position{5, 1}, Value: 6},
	)

	assert.Equal(t, 10, Travel(hopper, East, b))
}
