package application

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

func TestRun(t *testing.T) {
	t.Run("Plays one round from scripted input", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a human who tries 1..9 in order and then declines a replay.
		// Taken cells are rejected and the next line is read, so the round
		// ends whatever the bot plays.
		in := strings.NewReader("1\n2\n3\n4\n5\n6\n7\n8\n9\nn\n")
		out := &bytes.Buffer{}
		conf := &config.Config{Bot: config.Bot{Seed: 3}}

		// When: running the game
		err := Run(ctx, st.Logger, conf, in, out)

		// Then: the round is played to the end and the session stops normally
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), entity.NewBoard().Render()+"Your move (1-9): "))
		assert.Contains(t, out.String(), "Play again? [y/n]: ")
		assert.Contains(t, out.String(), "Rounds: 1,")
	})

	t.Run("Closed input is a normal exit", func(t *testing.T) {
		ctx, st := suite.New(t)

		err := Run(ctx, st.Logger, &config.Config{}, strings.NewReader(""), io.Discard)

		require.NoError(t, err)
	})

	t.Run("Cancelled context is a normal exit", func(t *testing.T) {
		_, st := suite.New(t)

		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, st.Logger, &config.Config{}, reader, io.Discard)

		require.NoError(t, err)
	})
}

func TestNewSeed(t *testing.T) {
	seed, err := newSeed()

	require.NoError(t, err)
	assert.NotZero(t, seed)
}
