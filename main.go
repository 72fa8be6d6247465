package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lguibr/plethora/bollywood"
	"github.com/lguibr/plethora/game"
	"github.com/lguibr/plethora/render"
	"github.com/lguibr/plethora/terminal"
	"github.com/lguibr/plethora/utils"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var (
	errMatchFinished = errors.New("match finished")
	errActorStopped  = errors.New("match actor stopped")
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("plethora", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "TOML config file (default $PLETHORA_CONFIG)")
	debug := flags.Bool("debug", false, "log at debug level")
	noColor := flags.Bool("no-color", false, "draw goal lines without ANSI colors")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: plethora [flags] <players> <balls>\n")
		fmt.Fprintf(stderr, "players and balls default to $PLETHORA_PLAYERS and $PLETHORA_BALLS\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if err := utils.LoadEnv(".env"); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if *configPath == "" {
		*configPath = os.Getenv("PLETHORA_CONFIG")
	}
	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	players, balls := os.Getenv("PLETHORA_PLAYERS"), os.Getenv("PLETHORA_BALLS")
	if flags.NArg() >= 2 {
		players, balls = flags.Arg(0), flags.Arg(1)
	}
	if players == "" || balls == "" {
		flags.Usage()
		return exitUsage
	}
	setup, err := game.ParseSetup(players, balls)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(stderr, "open log:", err)
		return exitError
	}
	defer logFile.Close()
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	engine := bollywood.NewEngine(logger)
	clock := game.NewActorClock(engine)
	bells := &render.BellQueue{}
	match, err := game.NewMatch(cfg, setup, game.NewBellPlayer(bells, logger), clock, logger)
	if err != nil {
		logger.Error("create match", "error", err)
		fmt.Fprintln(stderr, err)
		return exitError
	}

	board := &game.SnapshotBoard{}
	props := bollywood.NewProps(game.NewMatchActorProducer(match, clock, board, cfg.TickPeriod, logger)).WithMailboxSize(cfg.MailboxSize)
	pid := engine.Spawn(props)
	actorDone := engine.Done(pid)
	defer engine.Shutdown(time.Second)

	fd := int(stdin.Fd())
	if terminal.IsTerminal(fd) {
		state, err := terminal.MakeRaw(fd)
		if err != nil {
			fmt.Fprintln(stderr, "raw mode:", err)
			return exitError
		}
		defer terminal.Restore(fd, state)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdin reads cannot be interrupted, so the reader lives outside the group
	// and only hands keys over.
	keys := make(chan game.KeyEvent, 16)
	readErr := make(chan error, 1)
	go func() {
		readErr <- terminal.ReadKeys(ctx, stdin, func(ev game.KeyEvent) {
			select {
			case keys <- ev:
			case <-ctx.Done():
			}
		}, logger)
	}()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-keys:
				engine.Send(pid, ev, nil)
			case err := <-readErr:
				return err
			}
		}
	})
	eg.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		case <-actorDone:
			return errActorStopped
		}
	})
	eg.Go(func() error {
		return renderLoop(ctx, board, bells, render.NewRenderer(cfg.RenderWidth, cfg.RenderHeight, !*noColor), stdout, cfg)
	})

	err = eg.Wait()
	engine.Stop(pid)

	final, _ := board.Latest()
	switch {
	case err == nil, errors.Is(err, errMatchFinished), errors.Is(err, terminal.ErrQuit), errors.Is(err, context.Canceled):
		if final.Overlay.Loser != 0 {
			fmt.Fprintf(stdout, "%s\r\n", final.Overlay.Message)
		}
		logger.Info("exit", "reason", err, "ticks", final.Tick)
		return exitOK
	default:
		logger.Error("exit", "error", err)
		fmt.Fprintln(stderr, err)
		return exitError
	}
}

// renderLoop draws the latest snapshot every render period, ringing queued
// bells after each frame, and returns errMatchFinished once the final banner
// has been shown long enough.
func renderLoop(ctx context.Context, board *game.SnapshotBoard, bells *render.BellQueue, r *render.Renderer, out io.Writer, cfg utils.Config) error {
	render.Clear()
	ticker := time.NewTicker(cfg.RenderPeriod)
	defer ticker.Stop()

	var overAt time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			s, ok := board.Latest()
			if !ok {
				continue
			}
			if err := r.Draw(out, s); err != nil {
				return fmt.Errorf("draw: %w", err)
			}
			if err := bells.Flush(out); err != nil {
				return fmt.Errorf("bell: %w", err)
			}
			if s.Status != game.StatusMatchOver {
				continue
			}
			if overAt.IsZero() {
				overAt = now
			}
			if now.Sub(overAt) >= cfg.GameOverLinger {
				return errMatchFinished
			}
		}
	}
}
