package game

// Messages understood by the MatchActor.

// GameTick advances the simulation by one tick.
type GameTick struct{}

// CountdownTick is sent by the countdown timer started with Generation.
type CountdownTick struct {
	Generation int
}

// KeyEvent is a key going down or up.
type KeyEvent struct {
	Key     rune
	Pressed bool
}
