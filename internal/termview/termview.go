// Package termview replays a run in the terminal. After every turn it
// redraws the board with tcell: insects as the initial of their kind in
// their team color, food as its value (or '+' above 9), empty cells as '.'.
// Boards larger than the screen are clipped to the top-left corner.
package termview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/specialistvlad/insectgrid/internal/board"
	"github.com/specialistvlad/insectgrid/internal/simulation"
)

var (
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

var kindGlyphs = map[board.Kind]rune{
	board.Grasshopper: 'G',
	board.Butterfly:   'B',
	board.Ant:         'A',
	board.Spider:      'S',
}

// View draws boards onto a tcell screen.
type View struct {
	screen tcell.Screen
	delay  time.Duration
}

var _ simulation.Observer = (*View)(nil)

// New creates a view on an initialised screen. delay is how long each turn
// stays visible.
func New(screen tcell.Screen, delay time.Duration) *View {
	return &View{screen: screen, delay: delay}
}

// Open initialises the real terminal. The caller must call Close.
func Open(delay time.Duration) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise terminal screen: %w", err)
	}
	return New(screen, delay), nil
}

// Close restores the terminal.
func (v *View) Close() {
	v.screen.Fini()
}

// ObserveTurn redraws the board after a turn and waits for the configured
// delay or until ctx is done.
func (v *View) ObserveTurn(ctx context.Context, turn simulation.Turn) {
	v.Draw(turn.Board, fmt.Sprintf("turn %d: %s", turn.Number, turn.Elimination))
	if v.delay <= 0 {
		return
	}
	timer := time.NewTimer(v.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// Draw renders b and a status line on the last screen row.
func (v *View) Draw(b *board.Board, status string) {
	width, height := v.screen.Size()
	rows := min(b.Size(), height-1)
	cols := min(b.Size(), width)

	v.screen.Clear()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v.screen.SetContent(x, y, '.', nil, emptyStyle)
		}
	}

	b.Each(func(_ int, e board.Entity) bool {
		p := e.Pos()
		x, y := p.X-1, p.Y-1
		if x >= cols || y >= rows {
			return true
		}
		glyph, style := cell(e)
		v.screen.SetContent(x, y, glyph, nil, style)
		return true
	})

	if height > 0 {
		for i, r := range []rune(status) {
			if i >= width {
				break
			}
			v.screen.SetContent(i, height-1, r, nil, statusStyle)
		}
	}
	v.screen.Show()
}

func cell(e board.Entity) (rune, tcell.Style) {
	switch e := e.(type) {
	case *board.Insect:
		return kindGlyphs[e.Kind], colorStyle(e.Color)
	case *board.Food:
		if e.Value <= 9 {
			return rune('0' + e.Value), foodStyle
		}
		return '+', foodStyle
	}
	return '?', emptyStyle
}

func colorStyle(c board.Color) tcell.Style {
	switch c {
	case board.Red:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case board.Green:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case board.Blue:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case board.Yellow:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	return emptyStyle
}
