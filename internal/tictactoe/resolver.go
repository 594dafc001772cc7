package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MoveSource supplies candidate moves for one side. The console player and
// the bot both implement it.
type MoveSource interface {
	NextMove(ctx context.Context, board entity.Board) (int, error)
}

// ValidateMove - checks that the move is on the board and the cell is still free.
func ValidateMove(board entity.Board, move int) error {
	if move < entity.MinPosition || move > entity.MaxPosition {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, move)
	}

	if board.CellAt(move).IsClaimed() {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, move)
	}

	return nil
}

type MoveResolver struct {
	logger *slog.Logger
}

func NewMoveResolver(logger *slog.Logger) *MoveResolver {
	return &MoveResolver{
		logger: logger.With("component", "resolver"),
	}
}

// Resolve - asks the source until it offers a valid move. Invalid candidates
// are dropped and requested again; errors from the source end the loop.
func (that *MoveResolver) Resolve(ctx context.Context, source MoveSource, board entity.Board) (int, error) {
	for {
		candidate, err := source.NextMove(ctx, board)
		if err != nil {
			return 0, fmt.Errorf("failed to get move: %w", err)
		}

		err = ValidateMove(board, candidate)
		if err == nil {
			return candidate, nil
		}

		that.logger.Debug("move rejected", "move", candidate, "reason", err)
	}
}
