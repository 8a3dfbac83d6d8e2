package simulation

import (
	"context"
	"testing"

	"github.com/specialistvlad/insectgrid/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSource() *memSource {
	return &memSource{
		size: 5,
		insects: []InsectRecord{
			{Color: "red", Kind: "ant", Row: 1, Column: 1},
			{Color: "Blue", Kind: "SPIDER", Row: 3, Column: 3},
		},
		foods: []FoodRecord{
			{Value: 4, Row: 2, Column: 2},
		},
	}
}

func TestLoad_BuildsBoardInOrder(t *testing.T) {
	b, err := Load(context.Background(), validSource(), DefaultLimits())
	require.NoError(t, err)

	assert.Equal(t, 5, b.Size())
	assert.Equal(t, 2, b.InsectCount())
	assert.Equal(t, 3, b.Len())

	e, ok := b.At(1)
	require.True(t, ok)
	spider := e.(*board.Insect)
	assert.Equal(t, board.Spider, spider.Kind)
	assert.Equal(t, board.Blue, spider.Color)
	assert.Equal(t, board.Position{X: 3, Y: 3}, spider.Position)
}

func TestLoad_RowColumnOrder(t *testing.T) {
	src := &memSource{
		size:    5,
		insects: []InsectRecord{{Color: "red", Kind: "ant", Row: 2, Column: 4}},
		foods:   []FoodRecord{{Value: 1, Row: 5, Column: 1}},
	}
	b, err := Load(context.Background(), src, DefaultLimits())
	require.NoError(t, err)

	e, _ := b.At(0)
	assert.Equal(t, board.Position{X: 4, Y: 2}, e.Pos())
	e, _ = b.At(1)
	assert.Equal(t, board.Position{X: 1, Y: 5}, e.Pos())
}

func TestLoad_Rejections(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(s *memSource)
		want   error
		line   string
	}{
		{
			name:   "board too small",
			mutate: func(s *memSource) { s.size = 2 },
			want:   ErrInvalidBoardSize,
			line:   "Invalid board size",
		},
		{
			name:   "board too large",
			mutate: func(s *memSource) { s.size = 1001 },
			want:   ErrInvalidBoardSize,
			line:   "Invalid board size",
		},
		{
			name:   "no insects",
			mutate: func(s *memSource) { s.insectCount = intPtr(0) },
			want:   ErrInvalidInsectCount,
			line:   "Invalid number of insects",
		},
		{
			name:   "too many insects",
			mutate: func(s *memSource) { s.insectCount = intPtr(17) },
			want:   ErrInvalidInsectCount,
			line:   "Invalid number of insects",
		},
		{
			name:   "too much food",
			mutate: func(s *memSource) { s.foodCount = intPtr(201) },
			want:   ErrInvalidFoodCount,
			line:   "Invalid number of food points",
		},
		{
			name:   "no food",
			mutate: func(s *memSource) { s.foodCount = intPtr(0) },
			want:   ErrInvalidFoodCount,
			line:   "Invalid number of food points",
		},
		{
			name:   "unknown color",
			mutate: func(s *memSource) { s.insects[1].Color = "purple" },
			want:   ErrInvalidInsectColor,
			line:   "Invalid insect color",
		},
		{
			name:   "unknown kind",
			mutate: func(s *memSource) { s.insects[0].Kind = "beetle" },
			want:   ErrInvalidInsectKind,
			line:   "Invalid insect type",
		},
		{
			name:   "color is checked before kind",
			mutate: func(s *memSource) { s.insects[0].Color = "pink"; s.insects[0].Kind = "beetle" },
			want:   ErrInvalidInsectColor,
			line:   "Invalid insect color",
		},
		{
			name:   "insect off the board",
			mutate: func(s *memSource) { s.insects[0].Column = 6 },
			want:   ErrInvalidEntityPosition,
			line:   "Invalid entity position",
		},
		{
			name:   "food off the board",
			mutate: func(s *memSource) { s.foods[0].Row = 0 },
			want:   ErrInvalidEntityPosition,
			line:   "Invalid entity position",
		},
		{
			name:   "non-positive food",
			mutate: func(s *memSource) { s.foods[0].Value = 0 },
			want:   ErrInvalidFoodValue,
			line:   "Invalid food value",
		},
		{
			name:   "duplicate insects",
			mutate: func(s *memSource) { s.insects[1].Color = "red"; s.insects[1].Kind = "Ant" },
			want:   ErrDuplicateInsect,
			line:   "Duplicate insects",
		},
		{
			name:   "food on an insect",
			mutate: func(s *memSource) { s.foods[0].Row, s.foods[0].Column = 3, 3 },
			want:   ErrOverlappingPosition,
			line:   "Two entities in the same position",
		},
		{
			name: "two food points on one cell",
			mutate: func(s *memSource) {
				s.foods = append(s.foods, FoodRecord{Value: 1, Row: 2, Column: 2})
			},
			want: ErrOverlappingPosition,
			line: "Two entities in the same position",
		},
		{
			name: "duplicates win over overlaps",
			mutate: func(s *memSource) {
				s.insects[1] = InsectRecord{Color: "RED", Kind: "ant", Row: 1, Column: 1}
			},
			want: ErrDuplicateInsect,
			line: "Duplicate insects",
		},
		{
			name:   "fewer insects than announced",
			mutate: func(s *memSource) { s.insectCount = intPtr(3) },
			want:   ErrMalformedInput,
			line:   "Invalid input",
		},
		{
			name: "color of a truncated record is checked first",
			mutate: func(s *memSource) {
				s.insectCount = intPtr(3)
				s.partial = InsectRecord{Color: "purple", Kind: "ant"}
			},
			want: ErrInvalidInsectColor,
			line: "Invalid insect color",
		},
		{
			name: "kind of a truncated record is checked next",
			mutate: func(s *memSource) {
				s.insectCount = intPtr(3)
				s.partial = InsectRecord{Color: "green", Kind: "beetle"}
			},
			want: ErrInvalidInsectKind,
			line: "Invalid insect type",
		},
		{
			name: "valid but truncated record",
			mutate: func(s *memSource) {
				s.insectCount = intPtr(3)
				s.partial = InsectRecord{Color: "green", Kind: "ant"}
			},
			want: ErrMalformedInput,
			line: "Invalid input",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := validSource()
			tc.mutate(src)

			b, err := Load(context.Background(), src, DefaultLimits())

			require.Error(t, err)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.line, Message(err))
		})
	}
}

func TestLoad_CustomLimits(t *testing.T) {
	limits := DefaultLimits()
	limits.MaxInsects = 1

	_, err := Load(context.Background(), validSource(), limits)
	assert.ErrorIs(t, err, ErrInvalidInsectCount)
}

func TestLimits_Validate(t *testing.T) {
	require.NoError(t, DefaultLimits().Validate())

	l := DefaultLimits()
	l.MinFood = 0
	assert.Error(t, l.Validate())

	l = DefaultLimits()
	l.MaxBoardSize = 3
	assert.Error(t, l.Validate())
}

func TestValidationError_Is(t *testing.T) {
	err := Reject(InvalidBoardSize, "2 not in 4..1000")

	assert.ErrorIs(t, err, ErrInvalidBoardSize)
	assert.NotErrorIs(t, err, ErrInvalidFoodCount)
	assert.Equal(t, "Invalid board size: 2 not in 4..1000", err.Error())
	assert.Equal(t, "Invalid board size", Message(err))
}
