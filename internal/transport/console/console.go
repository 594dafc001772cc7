package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	movePrompt   = "Your move (1-9): "
	replayPrompt = "Play again? [y/n]: "
)

type line struct {
	text string
	err  error
}

// Console talks to the human over a line-oriented reader and a writer. It is
// the human move source, the replay prompt and the render sink at once, so
// all of them share one buffered input.
type Console struct {
	logger *slog.Logger

	in  io.Reader
	out io.Writer

	once  sync.Once
	lines chan line
	done  chan struct{}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     in,
		out:    out,
		lines:  make(chan line),
		done:   make(chan struct{}),
	}
}

// Close - stops the input reader. Further reads return ErrInputClosed.
func (that *Console) Close() {
	select {
	case <-that.done:
	default:
		close(that.done)
	}
}

// NextMove - prompts until the human types an integer. Range and occupancy
// are checked by the caller.
func (that *Console) NextMove(ctx context.Context, _ entity.Board) (int, error) {
	log := that.logger.With("method", "NextMove")

	for {
		if err := that.write(movePrompt); err != nil {
			return 0, err
		}

		text, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		move, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			log.Debug("input is not a number", "input", text)
			continue
		}

		return move, nil
	}
}

// PlayAgain - asks whether to start a new round.
func (that *Console) PlayAgain(ctx context.Context) (bool, error) {
	for {
		if err := that.write(replayPrompt); err != nil {
			return false, err
		}

		text, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(text)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (that *Console) ShowBoard(board entity.Board) error {
	return that.write(board.Render())
}

// ShowResult - prints the final board and who won.
func (that *Console) ShowResult(result tictactoe.Result) error {
	if err := that.write(result.Board.Render()); err != nil {
		return err
	}

	return that.write(resultMessage(result) + "\n")
}

func (that *Console) ShowTally(tally entity.Tally) error {
	return that.write(fmt.Sprintf("Rounds: %d, you won %d, the bot won %d, draws %d.\n",
		tally.Rounds(), tally.PlayerWins, tally.BotWins, tally.Draws))
}

func resultMessage(result tictactoe.Result) string {
	switch {
	case result.Outcome == tictactoe.OutcomeDraw:
		return "It's a draw!"
	case result.Winner == entity.TurnPlayer:
		return "You win!"
	default:
		return "The bot wins!"
	}
}

func (that *Console) write(text string) error {
	if _, err := io.WriteString(that.out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// readLine - waits for the next line or for ctx to end.
func (that *Console) readLine(ctx context.Context) (string, error) {
	that.once.Do(func() {
		go that.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-that.done:
		return "", apperror.ErrInputClosed
	case l, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}
		if l.err != nil {
			return "", fmt.Errorf("failed to read input: %w", l.err)
		}
		return l.text, nil
	}
}

func (that *Console) scan() {
	defer close(that.lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case that.lines <- line{text: scanner.Text()}:
		case <-that.done:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		select {
		case that.lines <- line{err: err}:
		case <-that.done:
		}
	}
}
