package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// State - where the session is in the play/replay cycle.
type State int

const (
	StateInProgress State = iota
	StateRoundOver
	StateAwaitingReplayDecision
	StateTerminated
)

func (that State) String() string {
	switch that {
	case StateInProgress:
		return "in_progress"
	case StateRoundOver:
		return "round_over"
	case StateAwaitingReplayDecision:
		return "awaiting_replay_decision"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

type replayPrompter interface {
	PlayAgain(ctx context.Context) (bool, error)
}

type display interface {
	ShowBoard(board entity.Board) error
	ShowResult(result tictactoe.Result) error
	ShowTally(tally entity.Tally) error
}

// Session drives rounds between the human and the bot until the human
// declines to play again. It owns the only Game and is not safe for
// concurrent use.
type Session struct {
	logger *slog.Logger

	resolver *tictactoe.MoveResolver
	human    tictactoe.MoveSource
	bot      tictactoe.MoveSource
	replay   replayPrompter
	display  display

	game  *entity.Game
	state State
	tally entity.Tally
}

func NewSession(
	logger *slog.Logger,
	human, bot tictactoe.MoveSource,
	replay replayPrompter,
	display display,
) *Session {
	session := &Session{
		logger:   logger.With("component", "session"),
		resolver: tictactoe.NewMoveResolver(logger),
		human:    human,
		bot:      bot,
		replay:   replay,
		display:  display,
	}

	session.Reset()

	return session
}

// Run - plays until the session terminates or a collaborator fails.
func (that *Session) Run(ctx context.Context) error {
	for that.state != StateTerminated {
		if err := that.Step(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Step - performs one state transition.
func (that *Session) Step(ctx context.Context) error {
	switch that.state {
	case StateInProgress:
		return that.playTurn(ctx)
	case StateRoundOver:
		return that.finishRound()
	case StateAwaitingReplayDecision:
		return that.decideReplay(ctx)
	case StateTerminated:
		return nil
	default:
		return fmt.Errorf("unknown session state %d", that.state)
	}
}

// Reset - replaces the game with a fresh one and starts a new round.
func (that *Session) Reset() {
	that.game = entity.NewGame()
	that.state = StateInProgress

	that.logger.Info("round started", "round_id", that.game.ID)
}

func (that *Session) State() State {
	return that.state
}

// Game - a copy of the current round.
func (that *Session) Game() entity.Game {
	return *that.game
}

func (that *Session) Tally() entity.Tally {
	return that.tally
}

// playTurn - render, resolve, apply, evaluate.
func (that *Session) playTurn(ctx context.Context) error {
	log := that.logger.With("method", "playTurn", "round_id", that.game.ID)

	if err := that.display.ShowBoard(that.game.Board); err != nil {
		return fmt.Errorf("failed to show board: %w", err)
	}

	turn := that.game.Turn

	move, err := that.resolver.Resolve(ctx, that.sourceFor(turn), that.game.Board)
	if err != nil {
		return fmt.Errorf("failed to resolve %s move: %w", turn, err)
	}

	that.game.Apply(move)
	log.Debug("move applied", "turn", turn.String(), "cell", move)

	if tictactoe.Evaluate(that.game.Board) != tictactoe.OutcomeContinue {
		that.state = StateRoundOver
	}

	return nil
}

func (that *Session) sourceFor(turn entity.Turn) tictactoe.MoveSource {
	switch turn {
	case entity.TurnPlayer:
		return that.human
	case entity.TurnBot:
		return that.bot
	default:
		panic(fmt.Sprintf("unknown turn %d", turn))
	}
}

func (that *Session) finishRound() error {
	log := that.logger.With("method", "finishRound", "round_id", that.game.ID)

	result := tictactoe.ResultOf(that.game.Board)

	switch {
	case result.Outcome == tictactoe.OutcomeDraw:
		that.tally.Draws++
		log.Info("round finished", "outcome", result.Outcome.String())
	case result.Winner == entity.TurnPlayer:
		that.tally.PlayerWins++
		log.Info("round finished", "outcome", result.Outcome.String(), "winner", result.Winner.String())
	default:
		that.tally.BotWins++
		log.Info("round finished", "outcome", result.Outcome.String(), "winner", result.Winner.String())
	}

	if err := that.display.ShowResult(result); err != nil {
		return fmt.Errorf("failed to show result: %w", err)
	}

	that.state = StateAwaitingReplayDecision

	return nil
}

func (that *Session) decideReplay(ctx context.Context) error {
	again, err := that.replay.PlayAgain(ctx)
	if err != nil {
		return fmt.Errorf("failed to ask for replay: %w", err)
	}

	if again {
		that.Reset()
		return nil
	}

	that.state = StateTerminated
	that.logger.Info("session finished",
		"rounds", that.tally.Rounds(),
		"player_wins", that.tally.PlayerWins,
		"bot_wins", that.tally.BotWins,
		"draws", that.tally.Draws,
	)

	if err = that.display.ShowTally(that.tally); err != nil {
		return fmt.Errorf("failed to show tally: %w", err)
	}

	return nil
}
