package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

var _ tictactoe.MoveSource = (*BotService)(nil)

func TestBotService_NextMove(t *testing.T) {
	t.Run("Always picks a free cell", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a board with only 2 and 8 left
		board := entity.NewBoard()
		for _, position := range []int{1, 3, 4, 5, 6, 7, 9} {
			row, col := entity.PositionToCoordinates(position)
			board.Claim(row, col, entity.TurnPlayer)
		}
		bot := NewBotService(st.Logger, 42)

		for i := 0; i < 50; i++ {
			// When: the bot chooses
			move, err := bot.NextMove(ctx, board)

			// Then: the move passes validation
			require.NoError(t, err)
			require.NoError(t, tictactoe.ValidateMove(board, move))
		}
	})

	t.Run("Same seed gives the same moves", func(t *testing.T) {
		ctx, st := suite.New(t)

		board := entity.NewBoard()
		first := NewBotService(st.Logger, 7)
		second := NewBotService(st.Logger, 7)

		for i := 0; i < 10; i++ {
			a, err := first.NextMove(ctx, board)
			require.NoError(t, err)
			b, err := second.NextMove(ctx, board)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		}
	})

	t.Run("Full board", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a board without free cells
		board := entity.NewBoard()
		for position := entity.MinPosition; position <= entity.MaxPosition; position++ {
			row, col := entity.PositionToCoordinates(position)
			board.Claim(row, col, entity.TurnBot)
		}

		// When: the bot is asked to move
		_, err := NewBotService(st.Logger, 1).NextMove(ctx, board)

		// Then: ErrNoAvailableMoves is returned
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		_, st := suite.New(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewBotService(st.Logger, 1).NextMove(ctx, entity.NewBoard())

		assert.ErrorIs(t, err, context.Canceled)
	})
}
