package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lguibr/plethora/utils"
)

// Setup is the number of players and balls a match is created with.
type Setup struct {
	Players int `json:"players"`
	Balls   int `json:"balls"`
}

// ParseSetup reads both counts from user input.
func ParseSetup(players, balls string) (Setup, error) {
	p, err := strconv.Atoi(strings.TrimSpace(players))
	if err != nil {
		return Setup{}, fmt.Errorf("%w: players %q is not a number", ErrInvalidConfiguration, players)
	}
	b, err := strconv.Atoi(strings.TrimSpace(balls))
	if err != nil {
		return Setup{}, fmt.Errorf("%w: balls %q is not a number", ErrInvalidConfiguration, balls)
	}
	s := Setup{Players: p, Balls: b}
	return s, s.Validate()
}

func (s Setup) Validate() error {
	if s.Players < utils.MinPlayers {
		return fmt.Errorf("%w: need at least %d players, got %d", ErrInvalidConfiguration, utils.MinPlayers, s.Players)
	}
	if s.Players > utils.MaxPlayers {
		return fmt.Errorf("%w: at most %d players, got %d", ErrInvalidConfiguration, utils.MaxPlayers, s.Players)
	}
	if s.Balls < utils.MinBalls {
		return fmt.Errorf("%w: need at least %d ball, got %d", ErrInvalidConfiguration, utils.MinBalls, s.Balls)
	}
	return nil
}
