package utils

import "time"

const (
	GameName    = "Plethora of Pong"
	GameVersion = "1.02"

	MinPlayers = 2
	MinBalls   = 1

	CountdownDelay = 5 // seconds between a point and the next serve
	LosingScore    = 3 // points against a player that eliminate them

	Period = 20 * time.Millisecond
)

// KeyPair holds the two keys that drive one paddle.
type KeyPair struct {
	Positive rune
	Negative rune
}

// PlayerKeys is the fixed key assignment, indexed by player index.
// Some keys appear twice ('h', 'i'); such a key drives every paddle it is bound to.
var PlayerKeys = [...]KeyPair{
	{'1', '2'}, {'9', '0'},
	{'z', 'x'}, {'n', 'm'},
	{'w', 'q'}, {'p', 'o'},
	{'v', 'c'}, {'l', 'k'},
	{'4', '3'}, {'8', '7'},
	{'s', 'a'}, {'h', 'i'},
	{'d', 'f'}, {'g', 'h'},
	{'5', '6'}, {'e', 'r'},
	{'u', 'i'}, {'t', 'y'},
}

// MaxPlayers is bounded by the number of key pairs.
const MaxPlayers = len(PlayerKeys)
