package actions

// Poll is a completion handle shared with the collaborator showing a
// polling action.
type Poll struct {
	finished bool
}

// Finish marks the action as handled.
func (p *Poll) Finish() {
	p.finished = true
}

// Finished reports whether Finish was called.
func (p *Poll) Finished() bool {
	return p.finished
}

// Queue is the ordered outbound action bus. It is not safe for concurrent
// use; the frame loop both fills and drains it.
type Queue struct {
	pending []Action
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Send appends an action.
func (q *Queue) Send(a Action) {
	q.pending = append(q.pending, a)
}

// SendPolling appends an action and returns the handle the overworld polls.
func (q *Queue) SendPolling(a Action) *Poll {
	poll := &Poll{}
	q.pending = append(q.pending, Polling{Action: a, Poll: poll})
	return poll
}

// Drain returns every pending action in send order and empties the queue.
func (q *Queue) Drain() []Action {
	drained := q.pending
	q.pending = nil
	return drained
}

// Len returns the number of pending actions.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Unwrap strips a Polling wrapper, if any.
func Unwrap(a Action) Action {
	if p, ok := a.(Polling); ok {
		return p.Action
	}
	return a
}
