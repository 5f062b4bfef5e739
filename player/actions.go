package player

import "errors"

// ErrEmptyQueue is returned when popping an empty ActionQueue. Callers must
// Peek first; hitting it is a logic error.
var ErrEmptyQueue = errors.New("player: pop from empty action queue")

type Action int

const (
	ActionJump Action = iota + 1
)

func (a Action) String() string {
	switch a {
	case ActionJump:
		return "jump"
	}
	return "unknown"
}

// ActionQueue buffers inputs that arrive before they can be executed, e.g. a
// jump pressed just before touching down.
type ActionQueue struct {
	items []Action
}

// Push appends a unless the queue already ends with a.
func (q *ActionQueue) Push(a Action) {
	if n := len(q.items); n > 0 && q.items[n-1] == a {
		return
	}
	q.items = append(q.items, a)
}

func (q *ActionQueue) Pop() (Action, error) {
	if len(q.items) == 0 {
		return 0, ErrEmptyQueue
	}
	a := q.items[0]
	q.items = q.items[1:]
	return a, nil
}

func (q *ActionQueue) Peek() (Action, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0], true
}

func (q *ActionQueue) Len() int {
	return len(q.items)
}

func (q *ActionQueue) Clear() {
	q.items = q.items[:0]
}
