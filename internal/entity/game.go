package entity

import "github.com/google/uuid"

// Game is one round: a board and the side to move.
type Game struct {
	ID    string
	Board Board
	Turn  Turn
}

// NewGame - creates a round with a fresh board and the player to move.
func NewGame() *Game {
	return &Game{
		ID:    uuid.NewString(),
		Board: NewBoard(),
		Turn:  TurnPlayer,
	}
}

// Apply - claims the position for the side to move and hands the turn over.
func (that *Game) Apply(position int) {
	row, col := PositionToCoordinates(position)
	that.Board.Claim(row, col, that.Turn)
	that.Turn = that.Turn.Next()
}
