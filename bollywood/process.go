package bollywood

import (
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of one actor.
type process struct {
	engine   *Engine
	pid      *PID
	props    *Props
	actor    Actor
	mailbox  chan *messageEnvelope
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
	done     chan struct{}
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (p *process) signalStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// sendMessage never blocks; a full mailbox drops the message.
func (p *process) sendMessage(message any, sender *PID) {
	if p.stopped.Load() && !isSystemMessage(message) {
		return
	}
	select {
	case p.mailbox <- &messageEnvelope{Sender: sender, Message: message}:
	default:
		p.engine.logger.Warn("mailbox full, dropping message", "pid", p.pid.ID, "type", typeName(message))
	}
}

func (p *process) run() {
	var stoppingInvoked bool

	defer func() {
		defer func() {
			p.engine.remove(p.pid)
			close(p.done)
		}()
		p.stopped.Store(true)
		if p.actor == nil {
			return
		}
		if !stoppingInvoked {
			p.invokeReceive(Stopping{}, nil)
		}
		p.invokeReceive(Stopped{}, nil)
	}()

	defer func() {
		if r := recover(); r != nil {
			p.engine.logger.Error("actor panicked", "pid", p.pid.ID, "panic", r, "stack", string(debug.Stack()))
			p.signalStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic("producer returned nil actor")
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(Stopping{}, nil)
				stoppingInvoked = true
			}
			return

		case envelope := <-p.mailbox:
			switch msg := envelope.Message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(msg, envelope.Sender)
					stoppingInvoked = true
				}
				p.signalStop()
			case Stopped:
				p.engine.logger.Warn("unexpected Stopped in mailbox", "pid", p.pid.ID)
			default:
				if p.stopped.Load() {
					continue
				}
				if !p.invokeReceive(envelope.Message, envelope.Sender) {
					// The message may be half applied; queued messages are dropped
					// and the actor goes through Stopping and Stopped.
					p.stopped.Store(true)
					p.signalStop()
				}
			}
		}
	}
}

// invokeReceive calls Receive, recovering and logging a panic. It reports
// false if Receive panicked.
func (p *process) invokeReceive(msg any, sender *PID) (ok bool) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: msg,
	}
	defer func() {
		if r := recover(); r != nil {
			p.engine.logger.Error("actor panicked in Receive",
				"pid", p.pid.ID, "message", typeName(msg), "panic", r, "stack", string(debug.Stack()))
			ok = false
		}
	}()
	p.actor.Receive(ctx)
	return true
}
