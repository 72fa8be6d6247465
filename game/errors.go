package game

import "errors"

var (
	// ErrInvalidConfiguration aborts match creation: bad player/ball counts or unusable geometry.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrPairMisconfigured marks a collidable pair whose handles are unknown or of the wrong kind.
	ErrPairMisconfigured = errors.New("collidable pair misconfigured")
	// ErrPairsSealed is returned when a pair is registered after setup completed.
	ErrPairsSealed = errors.New("collidable pairs are sealed")
)
