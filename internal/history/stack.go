package history

// Stack is a LIFO of buffer snapshots with an optional depth limit.
type Stack struct {
	items []string
	limit int
}

// NewStack creates a stack. A limit <= 0 means unbounded; otherwise pushing
// beyond the limit evicts the oldest snapshot.
func NewStack(limit int) *Stack {
	if limit < 0 {
		limit = 0
	}
	return &Stack{limit: limit}
}

// Push adds a snapshot to the top.
func (s *Stack) Push(snapshot string) {
	s.items = append(s.items, snapshot)
	if s.limit > 0 && len(s.items) > s.limit {
		s.items = s.items[len(s.items)-s.limit:]
	}
}

// Pop removes and returns the top snapshot.
// Popping an empty stack is a caller bug and panics.
func (s *Stack) Pop() string {
	if len(s.items) == 0 {
		panic("history: pop on empty stack")
	}
	i := len(s.items) - 1
	top := s.items[i]
	s.items[i] = ""
	s.items = s.items[:i]
	return top
}

// Peek returns the top snapshot without removing it.
// Peeking an empty stack panics.
func (s *Stack) Peek() string {
	if len(s.items) == 0 {
		panic("history: peek on empty stack")
	}
	return s.items[len(s.items)-1]
}

// Clear removes all snapshots.
func (s *Stack) Clear() {
	s.items = nil
}

// Len returns the number of snapshots held.
func (s *Stack) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the stack holds no snapshots.
func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Limit returns the configured depth limit, 0 when unbounded.
func (s *Stack) Limit() int {
	return s.limit
}

// Items returns a copy of the snapshots, bottom first.
func (s *Stack) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
