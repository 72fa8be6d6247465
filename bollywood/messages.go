package bollywood

// Started is the first message an actor receives.
type Started struct{}

// Stopping asks the actor to release its resources. No user message is
// delivered after it.
type Stopping struct{}

// Stopped is the last message an actor receives, just before its goroutine exits.
type Stopped struct{}

type messageEnvelope struct {
	Sender  *PID
	Message any
}

func isSystemMessage(msg any) bool {
	switch msg.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
