package bollywood

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Engine runs actors, one goroutine each, and routes messages between them.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
	logger     *slog.Logger
}

// NewEngine creates an engine logging to logger, or to slog.Default when nil.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		actors: make(map[string]*process),
		logger: logger.With("component", "bollywood"),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts an actor from props and sends it Started. It returns nil once
// the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		e.logger.Warn("engine is stopping, cannot spawn")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	e.Send(pid, Started{}, nil)
	e.logger.Debug("spawned", "pid", pid.ID)
	return pid
}

// Send delivers message to pid without blocking. sender may be nil.
// Messages to unknown actors are dropped.
func (e *Engine) Send(pid *PID, message any, sender *PID) {
	if pid == nil {
		return
	}
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}

	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if !ok {
		e.logger.Debug("actor not found, dropping message", "pid", pid.ID, "type", typeName(message))
		return
	}
	proc.sendMessage(message, sender)
}

// Stop asks the actor to stop. It receives Stopping, then Stopped.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if ok {
		proc.sendMessage(Stopping{}, nil)
		proc.signalStop()
	}
}

// Done returns a channel closed once the actor's goroutine has exited, or nil
// for an unknown actor.
func (e *Engine) Done(pid *PID) <-chan struct{} {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if proc, ok := e.actors[pid.ID]; ok {
		return proc.done
	}
	return nil
}

// Len is the number of running actors.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
	e.logger.Debug("removed", "pid", pid.ID)
}

// Shutdown stops every actor and waits up to timeout for them to exit.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	e.logger.Info("shutting down", "actors", len(procs))
	for _, proc := range procs {
		e.Stop(proc.pid)
	}

	deadline := time.After(timeout)
	for _, proc := range procs {
		select {
		case <-proc.done:
		case <-deadline:
			e.logger.Warn("shutdown timed out", "remaining", e.Len())
			e.mu.Lock()
			e.actors = make(map[string]*process)
			e.mu.Unlock()
			return
		}
	}
	e.logger.Info("shutdown complete")
}

func typeName(msg any) string { return fmt.Sprintf("%T", msg) }
