package utils

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all configurable match parameters.
type Config struct {
	// Timing
	TickPeriod      time.Duration `json:"tickPeriod" toml:"tick_period"`           // Time between simulation ticks
	CountdownPeriod time.Duration `json:"countdownPeriod" toml:"countdown_period"` // Time between countdown decrements
	RenderPeriod    time.Duration `json:"renderPeriod" toml:"render_period"`       // Time between terminal frames
	GameOverLinger  time.Duration `json:"gameOverLinger" toml:"game_over_linger"`  // How long the final banner stays up

	// Scoring
	CountdownSeconds int `json:"countdownSeconds" toml:"countdown_seconds"` // Countdown value after every point
	LosingScore      int `json:"losingScore" toml:"losing_score"`           // Points against a player that end the match

	// Arena
	ArenaRadius float64 `json:"arenaRadius" toml:"arena_radius"` // Circumradius of the polygon

	// Ball
	BallRadius float64 `json:"ballRadius" toml:"ball_radius"`
	BallSpeed  float64 `json:"ballSpeed" toml:"ball_speed"` // Arena units per tick
	BallStartX float64 `json:"ballStartX" toml:"ball_start_x"`
	BallStartY float64 `json:"ballStartY" toml:"ball_start_y"`
	RandomSeed int64   `json:"randomSeed" toml:"random_seed"` // 0 picks a time based seed

	// Paddle
	PaddleFraction    float64 `json:"paddleFraction" toml:"paddle_fraction"`       // Paddle length as a fraction of its edge
	PaddleSpeed       float64 `json:"paddleSpeed" toml:"paddle_speed"`             // Arena units per tick
	PaddleAngleFactor float64 `json:"paddleAngleFactor" toml:"paddle_angle_factor"` // Max deflection at the paddle ends is Pi / this value
	KeyHoldTicks      int     `json:"keyHoldTicks" toml:"key_hold_ticks"`          // Ticks a key press keeps moving the paddle, 0 until released

	// Collision
	ContactEpsilon float64 `json:"contactEpsilon" toml:"contact_epsilon"` // Clearance left after a paddle nudge

	// Actors
	MailboxSize int `json:"mailboxSize" toml:"mailbox_size"` // Buffered messages per actor before sends are dropped

	// Terminal
	RenderWidth  int    `json:"renderWidth" toml:"render_width"`
	RenderHeight int    `json:"renderHeight" toml:"render_height"`
	LogFile      string `json:"logFile" toml:"log_file"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	arenaRadius := 100.0

	return Config{
		// Timing
		TickPeriod:      Period,
		CountdownPeriod: time.Second,
		RenderPeriod:    50 * time.Millisecond,
		GameOverLinger:  5 * time.Second,

		// Scoring
		CountdownSeconds: CountdownDelay,
		LosingScore:      LosingScore,

		// Arena
		ArenaRadius: arenaRadius,

		// Ball
		BallRadius: arenaRadius / 40, // 2.5
		BallSpeed:  arenaRadius / 80, // 1.25, below the radius so a tick never skips a rim
		BallStartX: 0,
		BallStartY: 0,
		RandomSeed: 0,

		// Paddle
		PaddleFraction:    0.3,
		PaddleSpeed:       arenaRadius / 50, // 2
		PaddleAngleFactor: 2.8,              // Max ~64 degrees deflection (Pi / 2.8)
		KeyHoldTicks:      6,

		// Collision
		ContactEpsilon: 0.01,

		// Actors
		MailboxSize: 1024,

		// Terminal
		RenderWidth:  48,
		RenderHeight: 24,
		LogFile:      "plethora.log",
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the values can drive a match.
func (c Config) Validate() error {
	switch {
	case c.TickPeriod <= 0:
		return fmt.Errorf("%w: tick period must be positive, got %v", ErrInvalidConfig, c.TickPeriod)
	case c.CountdownPeriod <= 0:
		return fmt.Errorf("%w: countdown period must be positive, got %v", ErrInvalidConfig, c.CountdownPeriod)
	case c.CountdownSeconds < 1:
		return fmt.Errorf("%w: countdown must be at least 1, got %d", ErrInvalidConfig, c.CountdownSeconds)
	case c.LosingScore < 1:
		return fmt.Errorf("%w: losing score must be at least 1, got %d", ErrInvalidConfig, c.LosingScore)
	case !(c.ArenaRadius > 0):
		return fmt.Errorf("%w: arena radius must be positive, got %v", ErrInvalidConfig, c.ArenaRadius)
	case !(c.BallRadius > 0) || c.BallRadius >= c.ArenaRadius:
		return fmt.Errorf("%w: ball radius must be in (0, arena radius), got %v", ErrInvalidConfig, c.BallRadius)
	case !(c.BallSpeed > 0):
		return fmt.Errorf("%w: ball speed must be positive, got %v", ErrInvalidConfig, c.BallSpeed)
	case math.Hypot(c.BallStartX, c.BallStartY) >= c.ArenaRadius/2:
		return fmt.Errorf("%w: ball start (%v, %v) is too far from the center", ErrInvalidConfig, c.BallStartX, c.BallStartY)
	case !(c.PaddleFraction > 0) || c.PaddleFraction > 0.9:
		return fmt.Errorf("%w: paddle fraction must be in (0, 0.9], got %v", ErrInvalidConfig, c.PaddleFraction)
	case c.PaddleSpeed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative, got %v", ErrInvalidConfig, c.PaddleSpeed)
	case !(c.PaddleAngleFactor >= 2):
		return fmt.Errorf("%w: paddle angle factor must be at least 2, got %v", ErrInvalidConfig, c.PaddleAngleFactor)
	case c.KeyHoldTicks < 0:
		return fmt.Errorf("%w: key hold ticks must not be negative, got %d", ErrInvalidConfig, c.KeyHoldTicks)
	case c.ContactEpsilon < 0:
		return fmt.Errorf("%w: contact epsilon must not be negative, got %v", ErrInvalidConfig, c.ContactEpsilon)
	case c.MailboxSize < 1:
		return fmt.Errorf("%w: mailbox size must be at least 1, got %d", ErrInvalidConfig, c.MailboxSize)
	}
	return nil
}

// LoadConfig decodes the TOML file at path over DefaultConfig. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown keys in %s: %v", ErrInvalidConfig, path, undecoded)
	}
	return cfg, cfg.Validate()
}

// LoadEnv loads KEY=value pairs from the given dotenv files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env %s: %w", f, err)
		}
	}
	return nil
}
