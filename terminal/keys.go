package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"unicode"

	"github.com/lguibr/plethora/game"
)

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// ErrQuit is returned by ReadKeys when the player asks to leave.
var ErrQuit = errors.New("quit requested")

// ReadKeys turns bytes from r into key presses sent to emit until ctx is
// done, r is exhausted, or Esc or Ctrl-C is read. A terminal has no key-up
// events, so every event is a press; paddles stop on their own after a few
// ticks. Letters are folded to lower case.
func ReadKeys(ctx context.Context, r io.Reader, emit func(game.KeyEvent), logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	reader := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		ch, _, err := reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch ch {
		case keyCtrlC, keyEscape:
			logger.Info("quit key", "key", int(ch))
			return ErrQuit
		case unicode.ReplacementChar:
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		emit(game.KeyEvent{Key: unicode.ToLower(ch), Pressed: true})
	}
}
