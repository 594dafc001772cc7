package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 3

	MinPosition = 1
	MaxPosition = BoardSize * BoardSize
)

const separator = "+---+---+---+"

// Board is the 3x3 grid, row-major.
type Board [BoardSize][BoardSize]Cell

// NewBoard - returns a board with every cell unclaimed and labelled 1..9.
func NewBoard() Board {
	var board Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			board[row][col] = unclaimedCell(CoordinatesToPosition(row, col))
		}
	}

	return board
}

// PositionToCoordinates - maps a 1-based position to its row and column.
// Positions outside 1..9 must be rejected before reaching this function.
func PositionToCoordinates(position int) (int, int) {
	if position < MinPosition || position > MaxPosition {
		panic(fmt.Errorf("%w: position %d", apperror.ErrInvalidCell, position))
	}

	return (position - 1) / BoardSize, (position - 1) % BoardSize
}

func CoordinatesToPosition(row, col int) int {
	return row*BoardSize + col + 1
}

// Claim - overwrites the cell at row, col with the given owner.
func (that *Board) Claim(row, col int, owner Turn) {
	that[row][col] = Cell{
		position: CoordinatesToPosition(row, col),
		owner:    owner,
		claimed:  true,
	}
}

func (that Board) Cell(row, col int) Cell {
	return that[row][col]
}

// CellAt - returns the cell at a 1-based position.
func (that Board) CellAt(position int) Cell {
	row, col := PositionToCoordinates(position)
	return that[row][col]
}

// FreePositions - positions of all unclaimed cells in ascending order.
func (that Board) FreePositions() []int {
	free := make([]int, 0, MaxPosition)
	for _, row := range that {
		for _, cell := range row {
			if !cell.IsClaimed() {
				free = append(free, cell.Position())
			}
		}
	}

	return free
}

// Render - draws the board surrounded by blank lines.
func (that Board) Render() string {
	var sb strings.Builder

	sb.WriteString("\n" + separator + "\n")
	for _, row := range that {
		labels := make([]string, 0, BoardSize)
		for _, cell := range row {
			labels = append(labels, cell.Label())
		}
		sb.WriteString("| " + strings.Join(labels, " | ") + " |\n")
		sb.WriteString(separator + "\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
