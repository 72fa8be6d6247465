package game

import (
	"fmt"

	"github.com/lguibr/plethora/utils"
)

// Overlay is what a renderer draws over the arena.
type Overlay struct {
	Countdown int    `json:"countdown"` // 0 when no countdown runs
	Loser     int    `json:"loser"`     // 0 until the match is over
	Message   string `json:"message"`
}

func overlayFor(state StatusView) Overlay {
	switch state.Status() {
	case StatusCountdown:
		return Overlay{Countdown: state.Countdown(), Message: fmt.Sprint(state.Countdown())}
	case StatusMatchOver:
		return Overlay{Loser: state.Loser(), Message: fmt.Sprintf("Player %d Loses!", state.Loser())}
	}
	return Overlay{}
}

type GoalView struct {
	Player     int           `json:"player"`
	Segment    utils.Segment `json:"segment"`
	Score      int           `json:"score"`
	Eliminated bool          `json:"eliminated"`
	Color      utils.Color   `json:"color"`
}

type PaddleView struct {
	Player  int           `json:"player"`
	Segment utils.Segment `json:"segment"`
}

type BallView struct {
	Position utils.Vector `json:"position"`
	Radius   float64      `json:"radius"`
}

// Snapshot is an immutable copy of a match for renderers.
type Snapshot struct {
	MatchID   string `json:"matchId"`
	MatchName string `json:"matchName"`
	Tick      uint64 `json:"tick"`
	Status    Status `json:"status"`

	Radius   float64        `json:"radius"`
	Vertices []utils.Vector `json:"vertices"`
	Goals    []GoalView     `json:"goals"`
	Paddles  []PaddleView   `json:"paddles"`
	Balls    []BallView     `json:"balls"`
	Overlay  Overlay        `json:"overlay"`
}
