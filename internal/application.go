package application

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the application on the process's terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the session to the given input and output and plays until the
// human stops. Closed input and cancellation count as a normal exit.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	seed := conf.Bot.Seed
	if seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			return fmt.Errorf("could not seed bot: %w", err)
		}
	}
	log.Debug("bot seeded", "seed", seed)

	term := console.New(logger, in, out)
	defer term.Close()

	bot := service.NewBotService(logger, seed)
	session := usecase.NewSession(logger, term, bot, term, term)

	err := session.Run(ctx)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrInputClosed), errors.Is(err, context.Canceled):
		log.Info("Session interrupted", "reason", err, "state", session.State().String())
		return nil
	default:
		return fmt.Errorf("session failed: %w", err)
	}
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
