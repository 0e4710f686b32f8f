package core

import "sync"

// commandQueue hands work from router goroutines to the game loop. Commands
// run on the loop goroutine in the order they were pushed.
type commandQueue struct {
	mu      sync.Mutex
	pending []func()
}

func (q *commandQueue) Push(cmd func()) {
	q.mu.Lock()
	q.pending = append(q.pending, cmd)
	q.mu.Unlock()
}

// Drain runs every queued command. Commands pushed while draining run on the
// next call.
func (q *commandQueue) Drain() int {
	q.mu.Lock()
	cmds := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
	return len(cmds)
}

func (q *commandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
