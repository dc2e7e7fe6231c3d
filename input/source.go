package input

import "sync"

// Source yields intents decoded since the previous Poll. Poll never blocks.
type Source interface {
	Poll() []Intent
}

// Queue is a Source fed by Push. Push may be called from any goroutine;
// Poll is called by the loop that owns the game.
type Queue struct {
	mu      sync.Mutex
	pending []Intent
	limit   int
}

// NewQueue returns a queue holding at most limit undelivered intents.
// Older intents are dropped first when it overflows.
func NewQueue(limit int) *Queue {
	return &Queue{
		pending: make([]Intent, 0, limit),
		limit:   limit,
	}
}

func (q *Queue) Push(in Intent) {
	if in == None {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == q.limit {
		q.pending = q.pending[1:]
	}
	q.pending = append(q.pending, in)
}

func (q *Queue) Poll() []Intent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = make([]Intent, 0, q.limit)
	return out
}
