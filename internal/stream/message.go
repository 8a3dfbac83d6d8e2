package stream

import (
	"github.com/specialistvlad/insectgrid/internal/board"
	"github.com/specialistvlad/insectgrid/internal/simulation"
)

// TurnMessage is the JSON document sent to clients after every turn.
type TurnMessage struct {
	Turn      int             `json:"turn"`
	Color     string          `json:"color"`
	Kind      string          `json:"kind"`
	Direction string          `json:"direction"`
	Gathered  int             `json:"gathered"`
	Line      string          `json:"line"`
	BoardSize int             `json:"boardSize"`
	Entities  []EntityMessage `json:"entities"`
}

// EntityMessage describes one live entity after the turn.
type EntityMessage struct {
	Type     string         `json:"type"`
	Position board.Position `json:"position"`
	Color    string         `json:"color,omitempty"`
	Kind     string         `json:"kind,omitempty"`
	Value    int            `json:"value,omitempty"`
}

// NewTurnMessage snapshots a turn into its wire form.
func NewTurnMessage(turn simulation.Turn) TurnMessage {
	e := turn.Elimination
	msg := TurnMessage{
		Turn:      turn.Number,
		Color:     e.Color.String(),
		Kind:      e.Kind.String(),
		Direction: e.Direction.Label(),
		Gathered:  e.Gathered,
		Line:      e.String(),
	}
	if turn.Board == nil {
		return msg
	}
	msg.BoardSize = turn.Board.Size()
	turn.Board.Each(func(_ int, ent board.Entity) bool {
		switch ent := ent.(type) {
		case *board.Insect:
			msg.Entities = append(msg.Entities, EntityMessage{
				Type:     "insect",
				Position: ent.Position,
				Color:    ent.Color.String(),
				Kind:     ent.Kind.String(),
			})
		case *board.Food:
			msg.Entities = append(msg.Entities, EntityMessage{
				Type:     "food",
				Position: ent.Position,
				Value:    ent.Value,
			})
		}
		return true
	})
	return msg
}
