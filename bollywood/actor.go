package bollywood

// Actor processes the messages of its mailbox one at a time.
type Actor interface {
	Receive(ctx Context)
}

// PID is the address of a spawned actor.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}

// Producer creates a fresh actor instance.
type Producer func() Actor

// Props describes how to spawn an actor.
type Props struct {
	producer    Producer
	mailboxSize int
}

func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer, mailboxSize: defaultMailboxSize}
}

// WithMailboxSize overrides the mailbox buffer of actors spawned from p.
func (p *Props) WithMailboxSize(size int) *Props {
	if size > 0 {
		p.mailboxSize = size
	}
	return p
}

func (p *Props) Produce() Actor {
	return p.producer()
}
