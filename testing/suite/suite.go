package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

// verboseEnv turns test logging on when set to any value.
const verboseEnv = "TICTACTOE_TEST_LOGS"

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var out io.Writer = io.Discard
	if os.Getenv(verboseEnv) != "" {
		out = os.Stderr
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}
