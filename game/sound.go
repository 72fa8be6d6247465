package game

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . SoundPlayer

import (
	"io"
	"log/slog"
)

type SoundCue string

const (
	SoundChirp SoundCue = "chirp" // paddle hit
	SoundOops  SoundCue = "oops"  // point scored
	SoundDeath SoundCue = "death" // match lost
)

// SoundPlayer plays a cue without blocking. Failures are the player's own
// business and never reach the caller.
type SoundPlayer interface {
	Play(cue SoundCue)
}

// NopPlayer discards every cue.
type NopPlayer struct{}

func (NopPlayer) Play(SoundCue) {}

// BellPlayer rings the terminal bell for points and the match end. Chirps
// are only logged so rallies stay quiet.
type BellPlayer struct {
	out    io.Writer
	logger *slog.Logger
}

func NewBellPlayer(out io.Writer, logger *slog.Logger) *BellPlayer {
	if logger == nil {
		logger = slog.Default()
	}
	return &BellPlayer{out: out, logger: logger}
}

func (b *BellPlayer) Play(cue SoundCue) {
	b.logger.Debug("sound", "cue", cue)
	bells := 0
	switch cue {
	case SoundOops:
		bells = 1
	case SoundDeath:
		bells = 2
	}
	for range bells {
		if _, err := io.WriteString(b.out, "\a"); err != nil {
			b.logger.Warn("sound failed", "cue", cue, "error", err)
			return
		}
	}
}
