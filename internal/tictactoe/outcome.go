package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// Outcome - state of a round after a move.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "continue"
	}
}

// WinLines - the 8 position triples: rows, columns, diagonals.
var WinLines = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Result describes a finished round.
type Result struct {
	Outcome Outcome
	Winner  entity.Turn
	Board   entity.Board
}

// Winner - the side owning a complete line, if any.
func Winner(board entity.Board) (entity.Turn, bool) {
	for _, line := range WinLines {
		a, aOK := board.CellAt(line[0]).Owner()
		b, bOK := board.CellAt(line[1]).Owner()
		c, cOK := board.CellAt(line[2]).Owner()

		if aOK && bOK && cOK && a == b && b == c {
			return a, true
		}
	}

	return entity.TurnPlayer, false
}

// IsWon - true when any line holds three identical markers.
func IsWon(board entity.Board) bool {
	_, ok := Winner(board)
	return ok
}

// IsFull - true when no cell is left unclaimed.
func IsFull(board entity.Board) bool {
	return len(board.FreePositions()) == 0
}

// Evaluate - a win takes precedence over a full board.
func Evaluate(board entity.Board) Outcome {
	switch {
	case IsWon(board):
		return OutcomeWin
	case IsFull(board):
		return OutcomeDraw
	default:
		return OutcomeContinue
	}
}

// ResultOf - summarises a finished board.
func ResultOf(board entity.Board) Result {
	winner, _ := Winner(board)

	return Result{
		Outcome: Evaluate(board),
		Winner:  winner,
		Board:   board,
	}
}
