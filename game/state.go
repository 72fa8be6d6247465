package game

type Status int

const (
	StatusCountdown Status = iota
	StatusPlaying
	StatusRoundOver // held only while a round reset runs
	StatusMatchOver
)

func (s Status) String() string {
	switch s {
	case StatusCountdown:
		return "countdown"
	case StatusPlaying:
		return "playing"
	case StatusRoundOver:
		return "round over"
	case StatusMatchOver:
		return "match over"
	default:
		return "unknown"
	}
}

// StatusView is the read-only side of MatchState.
type StatusView interface {
	Status() Status
	Countdown() int
	// Loser is the 1-based losing player, 0 until the match is over.
	Loser() int
	Playing() bool
}

// MatchState is written only by the Round.
type MatchState struct {
	status    Status
	countdown int
	loser     int
}

func (s *MatchState) Status() Status { return s.status }
func (s *MatchState) Countdown() int { return s.countdown }
func (s *MatchState) Loser() int     { return s.loser }
func (s *MatchState) Playing() bool  { return s.status == StatusPlaying }
