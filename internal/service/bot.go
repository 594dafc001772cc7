package service

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// BotService picks a random free cell. It has no strategy and no memory.
type BotService struct {
	logger *slog.Logger
	rnd    *rand.Rand
}

func NewBotService(logger *slog.Logger, seed int64) *BotService {
	return &BotService{
		logger: logger.With("component", "bot"),
		rnd:    rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

// NextMove - chooses one of the unclaimed positions.
func (that *BotService) NextMove(ctx context.Context, board entity.Board) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	availableCells := board.FreePositions()
	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	chosenCell := availableCells[that.rnd.Intn(len(availableCells))]

	that.logger.Debug("bot chose cell", "cell", chosenCell, "available", len(availableCells))

	return chosenCell, nil
}
