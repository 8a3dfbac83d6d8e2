package termview

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/specialistvlad/insectgrid/internal/board"
	"github.com/specialistvlad/insectgrid/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func sampleBoard(t *testing.T) *board.Board {
	t.Helper()
	b := board.New(4)
	for _, e := range []board.Entity{
		&board.Insect{Position: board.Position{X: 1, Y: 1}, Kind: board.Ant, Color: board.Red},
		&board.Insect{Position: board.Position{X: 4, Y: 2}, Kind: board.Spider, Color: board.Blue},
		&board.Food{Position: board.Position{X: 2, Y: 3}, Value: 7},
		&board.Food{Position: board.Position{X: 3, Y: 4}, Value: 15},
	} {
		_, err := b.Add(e)
		require.NoError(t, err)
	}
	return b
}

func TestView_DrawsEntities(t *testing.T) {
	screen := newScreen(t, 20, 10)
	v := New(screen, 0)

	v.Draw(sampleBoard(t), "hello")

	r, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'A', r)
	assert.Equal(t, colorStyle(board.Red), style)

	r, _, style, _ = screen.GetContent(3, 1)
	assert.Equal(t, 'S', r)
	assert.Equal(t, colorStyle(board.Blue), style)

	r, _, _, _ = screen.GetContent(1, 2)
	assert.Equal(t, '7', r)
	r, _, _, _ = screen.GetContent(2, 3)
	assert.Equal(t, '+', r)
	r, _, _, _ = screen.GetContent(1, 1)
	assert.Equal(t, '.', r)

	for i, want := range "hello" {
		r, _, _, _ = screen.GetContent(i, 9)
		assert.Equal(t, want, r)
	}
}

func TestView_ClipsToScreen(t *testing.T) {
	screen := newScreen(t, 2, 3)
	v := New(screen, 0)

	assert.NotPanics(t, func() { v.Draw(sampleBoard(t), "a long status line") })

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'A', r)
}

func TestView_ObserveTurnHonoursContext(t *testing.T) {
	screen := newScreen(t, 20, 10)
	v := New(screen, time.Hour)
	b := sampleBoard(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		v.ObserveTurn(ctx, simulation.Turn{
			Number:      1,
			Elimination: simulation.Elimination{Color: board.Red, Kind: board.Ant},
			Board:       b,
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("ObserveTurn did not return after cancellation")
	}
}
