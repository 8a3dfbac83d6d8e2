package publish

import (
	"context"
	"testing"
	"time"

	"github.com/specialistvlad/insectgrid/internal/board"
	"github.com/specialistvlad/insectgrid/internal/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload(t *testing.T) {
	turn := simulation.Turn{
		Number: 3,
		Elimination: simulation.Elimination{
			Color:     board.Yellow,
			Kind:      board.Grasshopper,
			Direction: board.West,
			Gathered:  11,
		},
	}

	got := Payload(turn)

	assert.Equal(t, map[string]any{
		"turn":      3,
		"color":     "Yellow",
		"kind":      "Grasshopper",
		"direction": "West",
		"gathered":  11,
		"line":      "Yellow Grasshopper West 11",
	}, got)
}

func TestConnect_RejectsBadURL(t *testing.T) {
	for _, raw := range []string{"::not a url", "localhost:3000"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Connect(context.Background(), raw, "/")
			require.Error(t, err)
		})
	}
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	p, err := Connect(ctx, "http://127.0.0.1:1/socket.io/", "/")

	require.Error(t, err)
	assert.Nil(t, p)
}
